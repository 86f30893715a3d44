package controller

import (
	"net/http"

	"emo_buddy_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	surveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// GetRandomQuestions lấy ngẫu nhiên tối đa 8 câu hỏi khảo sát
// @Summary Câu hỏi khảo sát ngẫu nhiên
// @Tags Survey
// @Produce json
// @Success 200 {array} model.SurveyQuestion
// @Router /get-random-questions [get]
func (c *SurveyController) GetRandomQuestions(ctx *gin.Context) {
	questions, err := c.surveyService.RandomQuestions(8)
	if err != nil {
		// Giữ hành vi cũ: lỗi ngân hàng câu hỏi trả mảng rỗng, frontend tự xoay xở
		ctx.JSON(http.StatusOK, []interface{}{})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitSurvey nhận khảo sát Likert và trả lời khuyên từ Emo
// @Summary Nộp khảo sát Emo Buddy
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body service.SurveyInput true "Bài khảo sát"
// @Success 200 {object} map[string]string
// @Router /submit-survey [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	var input service.SurveyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advice := c.surveyService.SubmitSurvey(input)
	ctx.JSON(http.StatusOK, gin.H{"advice": advice})
}

// SubmitEmoMap nhận khảo sát EmoMap, chấm điểm rủi ro và trả hồi đáp AI
// @Summary Nộp khảo sát EmoMap
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body service.EmoMapInput true "Bài khảo sát EmoMap"
// @Success 200 {object} map[string]interface{}
// @Router /submit [post]
func (c *SurveyController) SubmitEmoMap(ctx *gin.Context) {
	var input service.EmoMapInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aiResponse, riskScore := c.surveyService.SubmitEmoMap(input)
	ctx.JSON(http.StatusOK, gin.H{
		"ai_response": aiResponse,
		"risk_score":  riskScore,
	})
}
