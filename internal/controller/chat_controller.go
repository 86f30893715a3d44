package controller

import (
	"net/http"

	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

type ChatInput struct {
	Message   string                  `json:"message" binding:"required"`
	History   []service.AIChatMessage `json:"history"`
	SessionID string                  `json:"session_id"`
}

// ChatCounseling trả lời một lượt chat tư vấn
// @Summary Chat tư vấn với Emo
// @Description Luôn trả về một câu trả lời: từ cấm -> điều hướng an toàn, AI lỗi -> fallback
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatInput true "Tin nhắn và lịch sử hội thoại"
// @Success 200 {object} map[string]string
// @Router /chat-counseling [post]
func (c *ChatController) ChatCounseling(ctx *gin.Context) {
	var input ChatInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = model.GenerateUUID()
	}

	reply := c.chatService.Reply(sessionID, input.Message, input.History)
	ctx.JSON(http.StatusOK, gin.H{
		"reply":      reply,
		"session_id": sessionID,
	})
}
