package service

import (
	"fmt"
	"math/rand"

	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// Fallback khi AI bận: học sinh luôn nhận được một lời nhắn tử tế
const adviceFallback = "Hiện tại Emo đang bận một chút, nhưng cậu hãy nhớ luôn có mọi người bên cạnh nhé!"

// SurveyStore truy cập các bảng khảo sát, triển khai bởi repository
type SurveyStore interface {
	InsertResponse(resp *model.SurveyResponse) error
	InsertEmoMap(entry *model.EmoMapEntry) error
	Questions(limit int) ([]model.SurveyQuestion, error)
}

// Alerter cảnh báo giáo viên khi điểm rủi ro vượt ngưỡng
type Alerter interface {
	MaybeAlert(entry *model.EmoMapEntry) bool
}

// SurveyService xử lý hai luồng khảo sát: Emo Buddy (Likert) và EmoMap (tự do + chấm rủi ro)
type SurveyService struct {
	ai    CompletionClient
	risk  *RiskService
	store SurveyStore
	alert Alerter
}

func NewSurveyService(ai CompletionClient, risk *RiskService, store SurveyStore, alert Alerter) *SurveyService {
	return &SurveyService{ai: ai, risk: risk, store: store, alert: alert}
}

type SurveyInput struct {
	Name         string             `json:"name"`
	StudentClass string             `json:"student_class" binding:"required"`
	Gender       string             `json:"gender" binding:"required"`
	Scores       map[string]float64 `json:"scores" binding:"required"`
	OpenText     string             `json:"open_text"`
}

type EmoMapInput struct {
	Name    string `json:"name" binding:"required"`
	Class   string `json:"class_" binding:"required"`
	Gender  string `json:"gender" binding:"required"`
	Q1      string `json:"q1"`
	Q2      string `json:"q2"`
	Q3      string `json:"q3"`
	Q4      string `json:"q4"`
	Q5      string `json:"q5"`
	Q6      string `json:"q6"`
	Q7      string `json:"q7"`
	Q8      string `json:"q8"`
	Message string `json:"message"`
	Avatar  string `json:"avatar"`
}

// AverageScore điểm Likert trung bình, map rỗng coi là 0
func AverageScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

// SubmitSurvey sinh lời khuyên từ kết quả khảo sát và lưu best-effort
func (s *SurveyService) SubmitSurvey(in SurveyInput) string {
	name := in.Name
	if name == "" {
		name = "Ẩn danh"
	}

	avg := AverageScore(in.Scores)
	mood := "tích cực"
	if avg < 3 {
		mood = "tiêu cực"
	}

	prompt := fmt.Sprintf(`Bạn là Emo, một người bạn tâm lý học đường ân cần.
Học sinh tên %s đang cảm thấy %s (Điểm trung bình khảo sát: %.1f/5).
Chia sẻ tâm sự của bạn ấy: "%s".
Hãy đưa ra một lời khuyên ngắn gọn có thể dùng thêm các icon động viên (dưới 150 từ), chân thành, ấm áp và các hành động cụ thể có thể giúp cải thiện tâm trạng.`,
		name, mood, avg, in.OpenText)

	advice, err := s.ai.Chat([]AIChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Log.Error("survey advice AI call failed", zap.Error(err))
		advice = adviceFallback
	} else {
		advice = CleanAIResponse(advice)
	}

	resp := &model.SurveyResponse{
		StudentName:     name,
		StudentClass:    in.StudentClass,
		Gender:          in.Gender,
		Metrics:         model.ScoreMap(in.Scores),
		OpenEndedAnswer: in.OpenText,
		AIAdvice:        advice,
	}
	if err := s.store.InsertResponse(resp); err != nil {
		logger.Log.Error("failed to persist survey response", zap.Error(err))
	}

	return advice
}

// SubmitEmoMap chấm điểm rủi ro, sinh hồi đáp AI, lưu bản ghi và cảnh báo nếu cần
func (s *SurveyService) SubmitEmoMap(in EmoMapInput) (string, int) {
	answers := []string{in.Q1, in.Q2, in.Q3, in.Q4, in.Q5, in.Q6, in.Q7, in.Q8}
	score := s.risk.Score(answers, in.Message)

	prompt := fmt.Sprintf(`Bạn là Emo, một người bạn tâm lý học đường ân cần.
Học sinh tên %s (lớp %s) vừa chia sẻ tâm sự: "%s".
Hãy đưa ra một lời nhắn ngắn gọn (dưới 150 từ), chân thành, ấm áp, có thể dùng icon động viên,
kèm các hành động cụ thể giúp bạn ấy thấy nhẹ nhõm hơn.`,
		in.Name, in.Class, in.Message)

	aiResponse, err := s.ai.Chat([]AIChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Log.Error("emomap advice AI call failed", zap.Error(err))
		aiResponse = adviceFallback
	} else {
		aiResponse = CleanAIResponse(aiResponse)
	}

	entry := &model.EmoMapEntry{
		StudentName:  in.Name,
		StudentClass: in.Class,
		Gender:       in.Gender,
		Answers:      model.StringList(answers),
		Message:      in.Message,
		Avatar:       in.Avatar,
		AIResponse:   aiResponse,
		RiskScore:    score,
	}
	if err := s.store.InsertEmoMap(entry); err != nil {
		logger.Log.Error("failed to persist emomap entry", zap.Error(err))
	}

	// Gửi mail ở goroutine riêng, độ trễ SMTP không được chặn phản hồi cho học sinh
	if s.alert != nil {
		go s.alert.MaybeAlert(entry)
	}

	return aiResponse, score
}

// RandomQuestions lấy tối đa n câu hỏi ngẫu nhiên từ ngân hàng câu hỏi
func (s *SurveyService) RandomQuestions(n int) ([]model.SurveyQuestion, error) {
	questions, err := s.store.Questions(50)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions, nil
}
