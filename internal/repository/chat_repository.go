package repository

import (
	"emo_buddy_backend/internal/model"

	"gorm.io/gorm"
)

// ChatRepository log hội thoại tư vấn
type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) SaveTurn(turn *model.CounselingChat) error {
	return r.DB.Create(turn).Error
}

func (r *ChatRepository) SessionHistory(sessionID string, limit int) ([]model.CounselingChat, error) {
	var turns []model.CounselingChat
	err := r.DB.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Find(&turns).Error
	return turns, err
}
