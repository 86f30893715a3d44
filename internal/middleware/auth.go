package middleware

import (
	"strings"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware bảo vệ nhóm route dashboard, chỉ giáo viên có token hợp lệ
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.Admin.JWTSecret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("counselor", claims)
		c.Next()
	}
}
