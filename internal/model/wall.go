package model

// WallMessage tâm sự ẩn danh trên tường cảm xúc, chỉ lưu khi đã qua kiểm duyệt
type WallMessage struct {
	BaseModel
	Content        string `gorm:"type:text;not null" json:"content"`
	SentimentColor string `gorm:"size:16;default:'green'" json:"sentiment_color"`
	IsFiltered     bool   `gorm:"default:false" json:"is_filtered"`
}

func (WallMessage) TableName() string {
	return "wall_messages"
}

// WallComment bình luận động viên dưới một tâm sự
type WallComment struct {
	BaseModel
	MessageID uint   `gorm:"index;not null" json:"message_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
}

func (WallComment) TableName() string {
	return "wall_comments"
}
