package controller

import (
	"errors"
	"strconv"

	"emo_buddy_backend/internal/service"
	"emo_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login đăng nhập dashboard giáo viên tư vấn
// @Summary Đăng nhập dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body LoginInput true "Mật khẩu"
// @Success 200 {object} util.Response
// @Router /dashboard/login [post]
func (c *DashboardController) Login(ctx *gin.Context) {
	var input LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.dashboardService.Login(input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			util.Unauthorized(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Stats số liệu tổng hợp
// @Summary Thống kê dashboard
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Responses các bản ghi EmoMap gần nhất
// @Summary Bản ghi EmoMap
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dashboard/responses [get]
func (c *DashboardController) Responses(ctx *gin.Context) {
	limit := parseLimit(ctx, 100)
	entries, err := c.dashboardService.RecentEmoMap(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Surveys các bài khảo sát Emo Buddy gần nhất
// @Summary Bài khảo sát
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dashboard/surveys [get]
func (c *DashboardController) Surveys(ctx *gin.Context) {
	limit := parseLimit(ctx, 100)
	responses, err := c.dashboardService.RecentSurveys(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, responses)
}

// HighRisk các bản ghi vượt ngưỡng rủi ro cao
// @Summary Danh sách rủi ro cao
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dashboard/high-risk [get]
func (c *DashboardController) HighRisk(ctx *gin.Context) {
	entries, err := c.dashboardService.HighRisk()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// ChatHistory xem lại một phiên chat tư vấn
// @Summary Lịch sử chat theo phiên
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "ID phiên chat"
// @Success 200 {object} util.Response
// @Router /dashboard/chats/{sessionId} [get]
func (c *DashboardController) ChatHistory(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	limit := parseLimit(ctx, 200)

	turns, err := c.dashboardService.ChatHistory(sessionID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, turns)
}

func parseLimit(ctx *gin.Context, def int) int {
	raw := ctx.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 500 {
		return def
	}
	return limit
}
