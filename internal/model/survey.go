package model

// SurveyQuestion ngân hàng câu hỏi khảo sát, frontend lấy ngẫu nhiên 8 câu
type SurveyQuestion struct {
	BaseModel
	Text     string `gorm:"type:text;not null" json:"text"`
	Category string `gorm:"size:50" json:"category"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

// SurveyResponse bài khảo sát Emo Buddy kèm lời khuyên AI đã sinh
type SurveyResponse struct {
	BaseModel
	StudentName     string   `gorm:"size:100;default:'Ẩn danh'" json:"student_name"`
	StudentClass    string   `gorm:"size:50" json:"student_class"`
	Gender          string   `gorm:"size:20" json:"gender"`
	Metrics         ScoreMap `gorm:"type:json" json:"metrics"`
	OpenEndedAnswer string   `gorm:"type:text" json:"open_ended_answer"`
	AIAdvice        string   `gorm:"type:text" json:"ai_advice"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

// EmoMapEntry bản ghi khảo sát EmoMap: 8 câu trả lời tự do + tâm sự + điểm rủi ro
type EmoMapEntry struct {
	BaseModel
	StudentName  string     `gorm:"size:100;default:'Ẩn danh'" json:"student_name"`
	StudentClass string     `gorm:"size:50" json:"class"`
	Gender       string     `gorm:"size:20" json:"gender"`
	Answers      StringList `gorm:"type:json" json:"answers"`
	Message      string     `gorm:"type:text" json:"message"`
	Avatar       string     `gorm:"size:16" json:"avatar"`
	AIResponse   string     `gorm:"type:text" json:"ai_response"`
	RiskScore    int        `gorm:"index;default:0" json:"risk_score"`
}

func (EmoMapEntry) TableName() string {
	return "emomap"
}
