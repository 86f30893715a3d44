package service

import (
	"errors"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid dashboard password")

// DashboardStore truy vấn tổng hợp, triển khai bởi repository
type DashboardStore interface {
	Stats(highThreshold, mediumThreshold int) (*model.DashboardStats, error)
	RecentEmoMap(limit int) ([]model.EmoMapEntry, error)
	RecentSurveys(limit int) ([]model.SurveyResponse, error)
	HighRisk(threshold int) ([]model.EmoMapEntry, error)
}

// ChatLogReader đọc lại hội thoại tư vấn cho giáo viên
type ChatLogReader interface {
	SessionHistory(sessionID string, limit int) ([]model.CounselingChat, error)
}

// DashboardService đăng nhập giáo viên và số liệu theo dõi rủi ro
type DashboardService struct {
	store DashboardStore
	chats ChatLogReader
	admin config.AdminConfig
	mod   config.ModerationConfig
}

func NewDashboardService(store DashboardStore, chats ChatLogReader, admin config.AdminConfig, mod config.ModerationConfig) *DashboardService {
	return &DashboardService{store: store, chats: chats, admin: admin, mod: mod}
}

// Login so khớp mật khẩu với hash bcrypt trong cấu hình rồi phát JWT
func (s *DashboardService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return util.GenerateJWT(s.admin.JWTSecret, s.admin.TokenExpire)
}

func (s *DashboardService) Stats() (*model.DashboardStats, error) {
	return s.store.Stats(s.mod.HighThreshold, s.mod.MediumThreshold)
}

func (s *DashboardService) RecentEmoMap(limit int) ([]model.EmoMapEntry, error) {
	return s.store.RecentEmoMap(limit)
}

func (s *DashboardService) RecentSurveys(limit int) ([]model.SurveyResponse, error) {
	return s.store.RecentSurveys(limit)
}

func (s *DashboardService) HighRisk() ([]model.EmoMapEntry, error) {
	return s.store.HighRisk(s.mod.HighThreshold)
}

func (s *DashboardService) ChatHistory(sessionID string, limit int) ([]model.CounselingChat, error) {
	return s.chats.SessionHistory(sessionID, limit)
}
