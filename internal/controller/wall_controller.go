package controller

import (
	"net/http"
	"strconv"

	"emo_buddy_backend/internal/service"
	"emo_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WallController struct {
	wallService *service.WallService
}

func NewWallController(wallService *service.WallService) *WallController {
	return &WallController{wallService: wallService}
}

type MessageInput struct {
	Content string `json:"content" binding:"required"`
}

type CommentInput struct {
	MessageID uint   `json:"message_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// PostMessage đăng tâm sự lên tường cảm xúc
// @Summary Đăng tâm sự ẩn danh
// @Description Kiểm duyệt hai lớp (từ cấm + AI), chỉ lưu khi an toàn
// @Tags Wall
// @Accept json
// @Produce json
// @Param request body MessageInput true "Nội dung tâm sự"
// @Success 200 {object} map[string]interface{}
// @Router /post-message [post]
func (c *WallController) PostMessage(ctx *gin.Context) {
	var input MessageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := c.wallService.PostMessage(input.Content)
	if err != nil {
		// Thành công phải đồng nghĩa tin đã được lưu, nên lỗi DB là lỗi server
		util.LogInternalError(ctx, err)
		return
	}

	if !verdict.Safe {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "blocked",
			"safe":    false,
			"message": "Tin nhắn đã bị chặn do nội dung không phù hợp.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"safe":   true,
		"color":  verdict.Color,
	})
}

// GetMessages danh sách 50 tâm sự mới nhất
// @Summary Lấy tường cảm xúc
// @Tags Wall
// @Produce json
// @Success 200 {array} model.WallMessage
// @Router /get-messages [get]
func (c *WallController) GetMessages(ctx *gin.Context) {
	messages, err := c.wallService.GetMessages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// PostComment bình luận động viên dưới một tâm sự
// @Summary Đăng bình luận
// @Tags Wall
// @Accept json
// @Produce json
// @Param request body CommentInput true "Bình luận"
// @Success 200 {object} map[string]interface{}
// @Router /post-comment [post]
func (c *WallController) PostComment(ctx *gin.Context) {
	var input CommentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.wallService.PostComment(input.MessageID, input.Content)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	switch result {
	case service.CommentBlocked:
		ctx.JSON(http.StatusOK, gin.H{"status": "blocked"})
	case service.CommentMessageMissing:
		ctx.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	default:
		ctx.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

// GetComments danh sách bình luận của một tâm sự
// @Summary Lấy bình luận
// @Tags Wall
// @Produce json
// @Param id path int true "ID tâm sự"
// @Success 200 {array} model.WallComment
// @Router /get-comments/{id} [get]
func (c *WallController) GetComments(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid message id")
		return
	}

	comments, err := c.wallService.GetComments(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}
