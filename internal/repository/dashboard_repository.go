package repository

import (
	"context"
	"encoding/json"
	"time"

	"emo_buddy_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 60 * time.Second
)

// DashboardRepository các truy vấn tổng hợp cho dashboard, stats cache 60s
type DashboardRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewDashboardRepository(db *gorm.DB, rdb *redis.Client) *DashboardRepository {
	return &DashboardRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func (r *DashboardRepository) Stats(highThreshold, mediumThreshold int) (*model.DashboardStats, error) {
	if r.Redis != nil {
		cached, err := r.Redis.Get(r.ctx, dashboardStatsCacheKey).Result()
		if err == nil {
			var stats model.DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats := &model.DashboardStats{
		RiskBuckets: map[string]int64{},
		ColorCounts: map[string]int64{},
	}

	if err := r.DB.Model(&model.EmoMapEntry{}).Count(&stats.TotalEmoMap).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.SurveyResponse{}).Count(&stats.TotalSurveys).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.WallMessage{}).Count(&stats.TotalWallPosts).Error; err != nil {
		return nil, err
	}

	if stats.TotalEmoMap > 0 {
		var avg float64
		if err := r.DB.Model(&model.EmoMapEntry{}).
			Select("AVG(risk_score)").Scan(&avg).Error; err != nil {
			return nil, err
		}
		stats.AverageRiskScore = avg
	}

	var high, medium int64
	if err := r.DB.Model(&model.EmoMapEntry{}).
		Where("risk_score >= ?", highThreshold).Count(&high).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.EmoMapEntry{}).
		Where("risk_score >= ? AND risk_score < ?", mediumThreshold, highThreshold).
		Count(&medium).Error; err != nil {
		return nil, err
	}
	stats.RiskBuckets["high"] = high
	stats.RiskBuckets["medium"] = medium
	stats.RiskBuckets["low"] = stats.TotalEmoMap - high - medium

	// Phân bố màu cảm xúc trên tường
	rows, err := r.DB.Model(&model.WallMessage{}).
		Select("sentiment_color, COUNT(*) as cnt").
		Group("sentiment_color").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var color string
		var cnt int64
		if err := rows.Scan(&color, &cnt); err != nil {
			return nil, err
		}
		stats.ColorCounts[color] = cnt
	}

	if r.Redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			r.Redis.Set(r.ctx, dashboardStatsCacheKey, data, dashboardStatsCacheTTL)
		}
	}
	return stats, nil
}

func (r *DashboardRepository) RecentEmoMap(limit int) ([]model.EmoMapEntry, error) {
	var entries []model.EmoMapEntry
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *DashboardRepository) RecentSurveys(limit int) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&responses).Error
	return responses, err
}

func (r *DashboardRepository) HighRisk(threshold int) ([]model.EmoMapEntry, error) {
	var entries []model.EmoMapEntry
	err := r.DB.Where("risk_score >= ?", threshold).
		Order("risk_score DESC").
		Find(&entries).Error
	return entries, err
}
