package service

import (
	"strings"

	"emo_buddy_backend/internal/config"
)

// Từ khóa cảm xúc tiêu cực trong các câu trả lời khảo sát, mỗi từ khớp cộng 8 điểm
var negativeKeywords = []string{
	"buồn", "mệt", "chán", "cô đơn", "áp lực", "stress", "khóc",
	"sợ hãi", "lo lắng", "tuyệt vọng", "bế tắc",
}

// Từ khóa nguy hiểm trong phần tâm sự, mỗi từ khớp cộng 25 điểm
var dangerKeywords = []string{
	"bị đánh", "bị bắt nạt", "không muốn đến trường",
	"tự tử", "muốn biến mất", "không chịu nổi", "bị xâm hại",
}

// RiskService chấm điểm rủi ro heuristic 0-100 và phân nhóm theo ngưỡng cấu hình
type RiskService struct {
	cfg config.ModerationConfig
}

func NewRiskService(cfg config.ModerationConfig) *RiskService {
	return &RiskService{cfg: cfg}
}

// Score chấm điểm từ các câu trả lời khảo sát và phần tâm sự.
// Hàm thuần, đơn điệu theo số từ khóa khớp, kẹp trần 100.
func (s *RiskService) Score(answers []string, narrative string) int {
	score := 0

	// 1) Mỗi từ khóa tiêu cực khớp trong mỗi câu trả lời: +8
	for _, ans := range answers {
		if ans == "" {
			continue
		}
		ansLower := strings.ToLower(ans)
		for _, kw := range negativeKeywords {
			if strings.Contains(ansLower, kw) {
				score += 8
			}
		}
	}

	// 2) Mỗi từ khóa nguy hiểm khớp trong tâm sự: +25
	msg := strings.ToLower(narrative)
	for _, kw := range dangerKeywords {
		if strings.Contains(msg, kw) {
			score += 25
		}
	}

	// 3) Tâm sự càng dài càng nhiều tín hiệu: hai ngưỡng cộng dồn độc lập
	length := len(strings.Fields(msg))
	if length > 15 {
		score += 7
	}
	if length > 40 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ShouldAlert điểm đạt ngưỡng cảnh báo thì báo giáo viên tư vấn
func (s *RiskService) ShouldAlert(score int) bool {
	return score >= s.cfg.AlertThreshold
}

// Bucket phân nhóm rủi ro cho dashboard
func (s *RiskService) Bucket(score int) string {
	switch {
	case score >= s.cfg.HighThreshold:
		return "high"
	case score >= s.cfg.MediumThreshold:
		return "medium"
	default:
		return "low"
	}
}
