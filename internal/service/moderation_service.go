package service

import (
	"encoding/json"
	"fmt"

	"emo_buddy_backend/pkg/logger"
	"emo_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Verdict kết quả kiểm duyệt: an toàn hay không và màu cảm xúc
type Verdict struct {
	Safe  bool   `json:"safe"`
	Color string `json:"color"`
}

var allowedColors = map[string]bool{
	"red":    true,
	"blue":   true,
	"purple": true,
	"yellow": true,
	"green":  true,
}

const moderationPromptTemplate = `Phân tích câu nói tiếng Việt: "%s"

Nhiệm vụ 1: Kiểm duyệt an toàn (Safety Check)
- Nếu nội dung liên quan đến: Tự làm hại bản thân (self-harm), Tự tử (suicide), Bạo lực học đường, Bắt nạt, Quấy rối, Từ ngữ tục tĩu, Chửi thề -> Trả về "safe": false.
- Lưu ý: Những câu như "tôi muốn biến mất", "chán sống", "muốn đi xa mãi mãi" phải coi là KHÔNG AN TOÀN (false).

Nhiệm vụ 2: Chọn màu cảm xúc (Color Check)
- Tức giận, phẫn nộ, gay gắt -> "red"
- Buồn bã, trầm cảm, mệt mỏi, muốn khóc -> "blue"
- Lo lắng, sợ hãi, áp lực thi cử -> "purple"
- Vui vẻ, tích cực, biết ơn -> "yellow"
- Bình thường, bình tĩnh -> "green"

Chỉ trả về định dạng JSON duy nhất:
{
    "safe": true hoặc false,
    "color": "red"/"blue"/"purple"/"yellow"/"green"
}`

// ModerationService kiểm duyệt hai lớp: từ cấm chặn cứng, AI hiểu ngữ cảnh chặn mềm
type ModerationService struct {
	ai CompletionClient
}

func NewModerationService(ai CompletionClient) *ModerationService {
	return &ModerationService{ai: ai}
}

// Classify phân tích nội dung để chọn màu và kiểm duyệt.
// Lớp 1 (từ cấm) chặn thì không gọi AI. Lỗi gọi AI hoặc parse thì
// fail-open về {safe: true, color: "gray"}: thà cho qua khi dịch vụ ngoài
// sập còn hơn chặn oan nội dung bình thường.
func (s *ModerationService) Classify(content string) Verdict {
	// BƯỚC 1: kiểm tra từ khóa cứng
	if !CheckKeywords(content) {
		monitoring.ModerationVerdicts.WithLabelValues("keyword", "blocked").Inc()
		return Verdict{Safe: false, Color: "red"}
	}

	// BƯỚC 2: dùng AI để hiểu ngữ cảnh
	prompt := fmt.Sprintf(moderationPromptTemplate, content)
	raw, err := s.ai.ChatJSON([]AIChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Log.Error("moderation AI call failed, failing open", zap.Error(err))
		monitoring.ModerationVerdicts.WithLabelValues("ai", "error").Inc()
		return Verdict{Safe: true, Color: "gray"}
	}

	verdict, err := parseVerdict(raw)
	if err != nil {
		logger.Log.Error("moderation verdict parse failed, failing open",
			zap.Error(err), zap.String("raw", raw))
		monitoring.ModerationVerdicts.WithLabelValues("ai", "error").Inc()
		return Verdict{Safe: true, Color: "gray"}
	}

	if verdict.Safe {
		monitoring.ModerationVerdicts.WithLabelValues("ai", "safe").Inc()
	} else {
		monitoring.ModerationVerdicts.WithLabelValues("ai", "blocked").Inc()
	}
	return verdict
}

// parseVerdict không tin JSON từ bên ngoài: thiếu trường hay màu lạ đều coi là lỗi
func parseVerdict(raw string) (Verdict, error) {
	var parsed struct {
		Safe  *bool  `json:"safe"`
		Color string `json:"color"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Verdict{}, err
	}
	if parsed.Safe == nil {
		return Verdict{}, fmt.Errorf("missing safe field")
	}
	if !allowedColors[parsed.Color] {
		return Verdict{}, fmt.Errorf("unknown color %q", parsed.Color)
	}
	return Verdict{Safe: *parsed.Safe, Color: parsed.Color}, nil
}
