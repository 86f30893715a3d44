package database

import (
	"fmt"
	"log"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.WallMessage{},
		&model.WallComment{},
		&model.SurveyQuestion{},
		&model.SurveyResponse{},
		&model.EmoMapEntry{},
		&model.CounselingChat{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Ngân hàng câu hỏi mặc định khi bảng còn trống
	var count int64
	db.Model(&model.SurveyQuestion{}).Count(&count)
	if count == 0 {
		defaultQuestions := []model.SurveyQuestion{
			{Text: "Tuần vừa rồi cậu ngủ có ngon giấc không?", Category: "sleep"},
			{Text: "Cậu có cảm thấy vui khi đến trường không?", Category: "school"},
			{Text: "Cậu có người để tâm sự khi buồn không?", Category: "social"},
			{Text: "Áp lực học tập của cậu dạo này thế nào?", Category: "pressure"},
			{Text: "Cậu có hay cảm thấy mệt mỏi không rõ lý do không?", Category: "mood"},
			{Text: "Cậu thấy mình hòa đồng với các bạn trong lớp chứ?", Category: "social"},
			{Text: "Cậu có hài lòng với bản thân mình không?", Category: "self"},
			{Text: "Dạo này cậu có hay lo lắng về tương lai không?", Category: "anxiety"},
			{Text: "Cậu có cảm thấy được gia đình lắng nghe không?", Category: "family"},
			{Text: "Cậu có thời gian làm điều mình thích mỗi ngày không?", Category: "self"},
		}
		for _, q := range defaultQuestions {
			db.Create(&q)
		}
	}

	return db, nil
}
