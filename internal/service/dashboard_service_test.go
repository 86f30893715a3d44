package service

import (
	"errors"
	"testing"
	"time"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type stubDashboardStore struct {
	highThreshold   int
	mediumThreshold int
}

func (s *stubDashboardStore) Stats(high, medium int) (*model.DashboardStats, error) {
	s.highThreshold = high
	s.mediumThreshold = medium
	return &model.DashboardStats{}, nil
}

func (s *stubDashboardStore) RecentEmoMap(limit int) ([]model.EmoMapEntry, error)     { return nil, nil }
func (s *stubDashboardStore) RecentSurveys(limit int) ([]model.SurveyResponse, error) { return nil, nil }
func (s *stubDashboardStore) HighRisk(threshold int) ([]model.EmoMapEntry, error)     { return nil, nil }

func newTestDashboardService(t *testing.T, password string) *DashboardService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	admin := config.AdminConfig{
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		TokenExpire:  time.Hour,
	}
	mod := config.ModerationConfig{AlertThreshold: 60, HighThreshold: 70, MediumThreshold: 40}
	return NewDashboardService(&stubDashboardStore{}, nil, admin, mod)
}

func TestLoginIssuesCounselorToken(t *testing.T) {
	s := newTestDashboardService(t, "emo-rat-manh")

	token, err := s.Login("emo-rat-manh")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Role != "counselor" {
		t.Errorf("token role = %q, want counselor", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestDashboardService(t, "emo-rat-manh")

	if _, err := s.Login("sai-mat-khau"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Login error = %v, want ErrInvalidPassword", err)
	}
}

func TestStatsUsesConfiguredThresholds(t *testing.T) {
	store := &stubDashboardStore{}
	admin := config.AdminConfig{JWTSecret: "test-secret", TokenExpire: time.Hour}
	mod := config.ModerationConfig{HighThreshold: 70, MediumThreshold: 40}
	s := NewDashboardService(store, nil, admin, mod)

	if _, err := s.Stats(); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if store.highThreshold != 70 || store.mediumThreshold != 40 {
		t.Errorf("Stats forwarded thresholds (%d, %d), want (70, 40)",
			store.highThreshold, store.mediumThreshold)
	}
}
