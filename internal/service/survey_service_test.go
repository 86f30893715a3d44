package service

import (
	"strings"
	"testing"
	"time"

	"emo_buddy_backend/internal/model"
)

// chanAlerter báo qua channel vì MaybeAlert chạy ở goroutine riêng
type chanAlerter struct {
	fired chan *model.EmoMapEntry
}

func newChanAlerter() *chanAlerter {
	return &chanAlerter{fired: make(chan *model.EmoMapEntry, 1)}
}

func (a *chanAlerter) MaybeAlert(entry *model.EmoMapEntry) bool {
	a.fired <- entry
	return true
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]float64
		want   float64
	}{
		{"map rỗng", nil, 0},
		{"một mục", map[string]float64{"sleep": 4}, 4},
		{"nhiều mục", map[string]float64{"sleep": 2, "mood": 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageScore(tt.scores); got != tt.want {
				t.Errorf("AverageScore(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func TestSubmitSurvey(t *testing.T) {
	ai := &stubAI{reply: "<think>plan</think>Cậu đã làm rất tốt rồi! 🌱"}
	store := &stubSurveyStore{}
	s := NewSurveyService(ai, newTestRiskService(), store, nil)

	advice := s.SubmitSurvey(SurveyInput{
		StudentClass: "8A1",
		Gender:       "Nữ",
		Scores:       map[string]float64{"mood": 2, "sleep": 2},
		OpenText:     "em thấy hơi đuối gần đây",
	})

	if advice != "Cậu đã làm rất tốt rồi! 🌱" {
		t.Errorf("advice = %q, want cleaned AI reply", advice)
	}
	// Trung bình 2.0 < 3 -> tâm trạng tiêu cực phải xuất hiện trong prompt
	if !strings.Contains(ai.lastMessages[0].Content, "tiêu cực") {
		t.Error("prompt does not mention the negative mood for avg < 3")
	}

	if len(store.responses) != 1 {
		t.Fatalf("persisted %d responses, want 1", len(store.responses))
	}
	saved := store.responses[0]
	if saved.StudentName != "Ẩn danh" {
		t.Errorf("StudentName = %q, want default %q", saved.StudentName, "Ẩn danh")
	}
	if saved.AIAdvice != advice {
		t.Errorf("persisted advice = %q, want %q", saved.AIAdvice, advice)
	}
}

func TestSubmitSurveyPositiveMood(t *testing.T) {
	ai := &stubAI{reply: "Tuyệt vời, giữ vững tinh thần nhé!"}
	s := NewSurveyService(ai, newTestRiskService(), &stubSurveyStore{}, nil)

	s.SubmitSurvey(SurveyInput{
		Name:         "Minh",
		StudentClass: "9B2",
		Gender:       "Nam",
		Scores:       map[string]float64{"mood": 4, "sleep": 4},
	})

	if !strings.Contains(ai.lastMessages[0].Content, "tích cực") {
		t.Error("prompt does not mention the positive mood for avg >= 3")
	}
}

func TestSubmitSurveyFallbackOnAIError(t *testing.T) {
	ai := &stubAI{err: errBoom}
	store := &stubSurveyStore{}
	s := NewSurveyService(ai, newTestRiskService(), store, nil)

	advice := s.SubmitSurvey(SurveyInput{
		StudentClass: "8A1",
		Gender:       "Nữ",
		Scores:       map[string]float64{"mood": 3},
	})

	if advice != adviceFallback {
		t.Errorf("advice = %q, want fallback", advice)
	}
	// Lỗi AI vẫn phải lưu bản ghi kèm fallback
	if len(store.responses) != 1 || store.responses[0].AIAdvice != adviceFallback {
		t.Error("survey response with fallback advice was not persisted")
	}
}

func TestSubmitEmoMap(t *testing.T) {
	ai := &stubAI{reply: "Emo tin cậu sẽ vượt qua được! 💙"}
	store := &stubSurveyStore{}
	alerter := newChanAlerter()
	s := NewSurveyService(ai, newTestRiskService(), store, alerter)

	reply, score := s.SubmitEmoMap(EmoMapInput{
		Name:    "Lan",
		Class:   "7C3",
		Gender:  "Nữ",
		Q1:      "mệt quá",
		Message: "em bị bắt nạt ở trường",
		Avatar:  "cat",
	})

	if reply != "Emo tin cậu sẽ vượt qua được! 💙" {
		t.Errorf("reply = %q, want AI reply", reply)
	}
	// 8 (từ khóa tiêu cực trong Q1) + 25 (từ khóa nguy hiểm trong tâm sự)
	if score != 33 {
		t.Errorf("score = %d, want 33", score)
	}

	if len(store.entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(store.entries))
	}
	entry := store.entries[0]
	if entry.RiskScore != 33 {
		t.Errorf("persisted RiskScore = %d, want 33", entry.RiskScore)
	}
	if len(entry.Answers) != 8 {
		t.Errorf("persisted %d answers, want all 8 slots", len(entry.Answers))
	}

	select {
	case fired := <-alerter.fired:
		if fired.StudentName != "Lan" {
			t.Errorf("alerted for %q, want Lan", fired.StudentName)
		}
	case <-time.After(time.Second):
		t.Error("alerter was not invoked")
	}
}

func TestRandomQuestions(t *testing.T) {
	questions := make([]model.SurveyQuestion, 10)
	for i := range questions {
		questions[i].Text = strings.Repeat("x", i+1)
	}
	s := NewSurveyService(&stubAI{}, newTestRiskService(), &stubSurveyStore{questions: questions}, nil)

	got, err := s.RandomQuestions(8)
	if err != nil {
		t.Fatalf("RandomQuestions: %v", err)
	}
	if len(got) != 8 {
		t.Errorf("returned %d questions, want 8", len(got))
	}

	small := NewSurveyService(&stubAI{}, newTestRiskService(), &stubSurveyStore{questions: questions[:3]}, nil)
	few, err := small.RandomQuestions(8)
	if err != nil {
		t.Fatalf("RandomQuestions: %v", err)
	}
	if len(few) != 3 {
		t.Errorf("returned %d questions from a bank of 3, want 3", len(few))
	}
}
