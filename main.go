// @title Emo Buddy API
// @version 1.0
// @description Backend tư vấn tâm lý học đường: tường cảm xúc, khảo sát và chat với Emo.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"emo_buddy_backend/internal/app"
	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
