package app

import (
	"emo_buddy_backend/docs"
	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/middleware"
	"emo_buddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. Route công khai cho học sinh (ẩn danh, không cần đăng nhập)
	a.registerStudentRoutes(router, c)

	// 2. Dashboard giáo viên tư vấn (cần token)
	a.registerDashboardRoutes(router, c, cfg)
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)

	// Tường cảm xúc
	router.POST("/post-message", c.wall.PostMessage)
	router.GET("/get-messages", c.wall.GetMessages)
	router.POST("/post-comment", c.wall.PostComment)
	router.GET("/get-comments/:id", c.wall.GetComments)

	// Khảo sát
	router.GET("/get-random-questions", c.survey.GetRandomQuestions)
	router.POST("/submit-survey", c.survey.SubmitSurvey)
	router.POST("/submit", c.survey.SubmitEmoMap)

	// Chat tư vấn
	router.POST("/chat-counseling", c.chat.ChatCounseling)
}

func (a *App) registerDashboardRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	dashboard := router.Group("/dashboard")
	dashboard.POST("/login", c.dashboard.Login)

	authorized := dashboard.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/stats", c.dashboard.Stats)
		authorized.GET("/responses", c.dashboard.Responses)
		authorized.GET("/surveys", c.dashboard.Surveys)
		authorized.GET("/high-risk", c.dashboard.HighRisk)
		authorized.GET("/chats/:sessionId", c.dashboard.ChatHistory)
	}
}
