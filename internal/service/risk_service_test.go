package service

import (
	"strings"
	"testing"

	"emo_buddy_backend/internal/config"
)

func newTestRiskService() *RiskService {
	return NewRiskService(config.ModerationConfig{
		AlertThreshold:  60,
		HighThreshold:   70,
		MediumThreshold: 40,
	})
}

func TestScore(t *testing.T) {
	s := newTestRiskService()

	tests := []struct {
		name      string
		answers   []string
		narrative string
		want      int
	}{
		{
			name: "không tín hiệu",
			want: 0,
		},
		{
			name:    "hai từ khóa tiêu cực trong một câu trả lời",
			answers: []string{"mình rất mệt và cô đơn"},
			want:    16,
		},
		{
			name:      "một từ khóa nguy hiểm, tâm sự ngắn",
			narrative: "em bị bắt nạt ở trường",
			want:      25,
		},
		{
			name:      "từ khóa nguy hiểm viết hoa vẫn khớp",
			narrative: "Em BỊ BẮT NẠT ở trường",
			want:      25,
		},
		{
			name:      "tâm sự dài trên 40 từ kèm một từ khóa nguy hiểm",
			narrative: strings.Repeat("dạo này em thấy hơi lạ ", 10) + "và em thấy không chịu nổi",
			want:      37,
		},
		{
			name:      "tâm sự trên 15 từ không từ khóa",
			narrative: "hôm nay em đi học về rồi ăn cơm xem phim và đi ngủ sớm như mọi ngày bình thường",
			want:      7,
		},
		{
			name:    "câu trả lời rỗng bị bỏ qua",
			answers: []string{"", "mệt quá", ""},
			want:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.answers, tt.narrative); got != tt.want {
				t.Errorf("Score(%v, %q) = %d, want %d", tt.answers, tt.narrative, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newTestRiskService()

	narrative := "em thấy mọi chuyện vẫn ổn"
	base := s.Score(nil, narrative)
	withDanger := s.Score(nil, narrative+" nhưng em muốn biến mất")

	if withDanger < base {
		t.Errorf("adding a danger keyword decreased the score: %d -> %d", base, withDanger)
	}
}

func TestScoreClampedAt100(t *testing.T) {
	s := newTestRiskService()

	// Cả 7 từ khóa nguy hiểm trong một tâm sự dài
	narrative := "em bị đánh, bị bắt nạt, không muốn đến trường, nghĩ đến tự tử, " +
		"muốn biến mất, không chịu nổi nữa, còn bị xâm hại " +
		strings.Repeat("và mọi thứ cứ lặp lại mãi ", 8)

	got := s.Score(nil, narrative)
	if got != 100 {
		t.Errorf("Score = %d, want clamp at 100", got)
	}
}

func TestShouldAlertBoundary(t *testing.T) {
	s := newTestRiskService()

	if s.ShouldAlert(59) {
		t.Error("ShouldAlert(59) = true, want false")
	}
	if !s.ShouldAlert(60) {
		t.Error("ShouldAlert(60) = false, want true")
	}
}

func TestBucket(t *testing.T) {
	s := newTestRiskService()

	tests := []struct {
		score int
		want  string
	}{
		{0, "low"},
		{39, "low"},
		{40, "medium"},
		{69, "medium"},
		{70, "high"},
		{100, "high"},
	}

	for _, tt := range tests {
		if got := s.Bucket(tt.score); got != tt.want {
			t.Errorf("Bucket(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
