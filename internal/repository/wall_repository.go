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
	wallFeedCacheKey = "wall:feed"
	wallFeedCacheTTL = 30 * time.Second
)

// WallRepository bảng wall_messages/wall_comments, feed nóng cache qua Redis
type WallRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewWallRepository(db *gorm.DB, rdb *redis.Client) *WallRepository {
	return &WallRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func (r *WallRepository) InsertMessage(msg *model.WallMessage) error {
	err := r.DB.Create(msg).Error
	if err == nil && r.Redis != nil {
		r.Redis.Del(r.ctx, wallFeedCacheKey)
	}
	return err
}

// LatestMessages đọc cache trước, trượt về DB khi cache miss hoặc Redis lỗi
func (r *WallRepository) LatestMessages(limit int) ([]model.WallMessage, error) {
	if r.Redis != nil {
		cached, err := r.Redis.Get(r.ctx, wallFeedCacheKey).Result()
		if err == nil {
			var msgs []model.WallMessage
			if json.Unmarshal([]byte(cached), &msgs) == nil {
				return msgs, nil
			}
		}
	}

	var msgs []model.WallMessage
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if data, err := json.Marshal(msgs); err == nil {
			r.Redis.Set(r.ctx, wallFeedCacheKey, data, wallFeedCacheTTL)
		}
	}
	return msgs, nil
}

func (r *WallRepository) MessageExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.WallMessage{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *WallRepository) InsertComment(comment *model.WallComment) error {
	return r.DB.Create(comment).Error
}

func (r *WallRepository) CommentsOf(messageID uint) ([]model.WallComment, error) {
	var comments []model.WallComment
	err := r.DB.Where("message_id = ?", messageID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
