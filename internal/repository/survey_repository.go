package repository

import (
	"emo_buddy_backend/internal/model"

	"gorm.io/gorm"
)

// SurveyRepository bảng survey_questions/survey_responses/emomap
type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) InsertResponse(resp *model.SurveyResponse) error {
	return r.DB.Create(resp).Error
}

func (r *SurveyRepository) InsertEmoMap(entry *model.EmoMapEntry) error {
	return r.DB.Create(entry).Error
}

func (r *SurveyRepository) Questions(limit int) ([]model.SurveyQuestion, error) {
	var questions []model.SurveyQuestion
	err := r.DB.Limit(limit).Find(&questions).Error
	return questions, err
}
