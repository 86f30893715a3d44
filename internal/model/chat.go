package model

// CounselingChat log hội thoại tư vấn, ghi best-effort để phục vụ thống kê
type CounselingChat struct {
	BaseModel
	SessionID string `gorm:"size:36;index" json:"session_id"`
	Role      string `gorm:"size:16;not null" json:"role"`
	Content   string `gorm:"type:text;not null" json:"content"`
}

func (CounselingChat) TableName() string {
	return "counseling_chats"
}
