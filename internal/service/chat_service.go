package service

import (
	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// Chỉ giữ 4 lượt hội thoại gần nhất để vừa giữ ngữ cảnh vừa chặn prompt phình to
const maxHistoryTurns = 4

const chatSystemPrompt = `Bạn là Emo, một người bạn tâm lý học đường ân cần, kiên nhẫn và ấm áp.
Hãy lắng nghe học sinh, trả lời ngắn gọn (dưới 150 từ), chân thành, có thể dùng icon động viên.
Gợi ý hành động cụ thể giúp bạn ấy cải thiện tâm trạng, không phán xét, không giảng đạo lý.
Tuyệt đối không để lộ suy nghĩ nội bộ hay bất kỳ thẻ <think> nào trong câu trả lời.`

// Trả lời đóng sẵn khi tin nhắn dính từ cấm, không gọi AI cho nội dung đã chặn
const safetyRedirectReply = "Emo cảm nhận được cậu đang trải qua điều gì đó rất nặng nề. " +
	"Cậu không một mình đâu. Hãy tìm đến thầy cô tư vấn hoặc gọi 111 (tổng đài bảo vệ trẻ em) " +
	"để được hỗ trợ ngay nhé. Emo luôn ở đây nghe cậu kể. 💙"

// Fallback khi AI lỗi: chat luôn phải có hồi đáp, không bao giờ trả lỗi thô
const chatFallbackReply = "Emo đang hơi lag một chút, cậu thử nhắn lại sau nhé! " +
	"Dù thế nào thì Emo vẫn luôn ở đây lắng nghe cậu. 💙"

// ChatLogStore ghi log hội thoại, triển khai bởi repository
type ChatLogStore interface {
	SaveTurn(turn *model.CounselingChat) error
}

// ChatService sinh hồi đáp tư vấn theo hội thoại nhiều lượt
type ChatService struct {
	ai    CompletionClient
	store ChatLogStore
}

func NewChatService(ai CompletionClient, store ChatLogStore) *ChatService {
	return &ChatService{ai: ai, store: store}
}

// Reply trả lời tin nhắn tư vấn. Luôn trả về một câu trả lời dùng được:
// từ cấm -> điều hướng an toàn, AI lỗi -> fallback ấm áp.
func (s *ChatService) Reply(sessionID, message string, history []AIChatMessage) string {
	if !CheckKeywords(message) {
		s.logTurns(sessionID, message, safetyRedirectReply)
		return safetyRedirectReply
	}

	messages := []AIChatMessage{{Role: "system", Content: chatSystemPrompt}}

	// Cắt lịch sử về 4 lượt gần nhất trước khi gửi đi
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	messages = append(messages, history...)

	messages = append(messages, AIChatMessage{Role: "user", Content: message})

	reply, err := s.ai.Chat(messages)
	if err != nil {
		logger.Log.Error("counseling chat AI call failed", zap.Error(err))
		s.logTurns(sessionID, message, chatFallbackReply)
		return chatFallbackReply
	}

	reply = CleanAIResponse(reply)
	s.logTurns(sessionID, message, reply)
	return reply
}

// logTurns ghi log best-effort, lỗi DB không được ảnh hưởng tới câu trả lời
func (s *ChatService) logTurns(sessionID, message, reply string) {
	if s.store == nil {
		return
	}
	go func() {
		turns := []*model.CounselingChat{
			{SessionID: sessionID, Role: "user", Content: message},
			{SessionID: sessionID, Role: "assistant", Content: reply},
		}
		for _, t := range turns {
			if err := s.store.SaveTurn(t); err != nil {
				logger.Log.Warn("failed to persist chat turn",
					zap.String("session_id", sessionID), zap.Error(err))
				return
			}
		}
	}()
}
