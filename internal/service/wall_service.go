package service

import (
	"emo_buddy_backend/internal/model"
)

// WallStore truy cập bảng tường cảm xúc, triển khai bởi repository
type WallStore interface {
	InsertMessage(msg *model.WallMessage) error
	LatestMessages(limit int) ([]model.WallMessage, error)
	MessageExists(id uint) (bool, error)
	InsertComment(comment *model.WallComment) error
	CommentsOf(messageID uint) ([]model.WallComment, error)
}

// Số tin hiển thị trên tường, khớp với frontend
const wallFeedLimit = 50

// WallService luồng đăng/đọc tâm sự trên tường cảm xúc
type WallService struct {
	moderation *ModerationService
	store      WallStore
}

func NewWallService(moderation *ModerationService, store WallStore) *WallService {
	return &WallService{moderation: moderation, store: store}
}

// PostMessage kiểm duyệt rồi mới lưu. Tin không an toàn không bao giờ vào DB.
// Lỗi insert trả về cho caller: phản hồi thành công phải đồng nghĩa tin đã được lưu.
func (s *WallService) PostMessage(content string) (Verdict, error) {
	verdict := s.moderation.Classify(content)
	if !verdict.Safe {
		return verdict, nil
	}

	msg := &model.WallMessage{
		Content:        content,
		SentimentColor: verdict.Color,
		IsFiltered:     false,
	}
	if err := s.store.InsertMessage(msg); err != nil {
		return verdict, err
	}
	return verdict, nil
}

func (s *WallService) GetMessages() ([]model.WallMessage, error) {
	return s.store.LatestMessages(wallFeedLimit)
}

type CommentResult int

const (
	CommentAccepted CommentResult = iota
	CommentBlocked
	CommentMessageMissing
)

// PostComment chỉ qua lớp từ cấm: phản hồi bình luận không mang màu cảm xúc
// nên không cần gọi AI
func (s *WallService) PostComment(messageID uint, content string) (CommentResult, error) {
	if !CheckKeywords(content) {
		return CommentBlocked, nil
	}

	exists, err := s.store.MessageExists(messageID)
	if err != nil {
		return CommentAccepted, err
	}
	if !exists {
		return CommentMessageMissing, nil
	}

	comment := &model.WallComment{MessageID: messageID, Content: content}
	if err := s.store.InsertComment(comment); err != nil {
		return CommentAccepted, err
	}
	return CommentAccepted, nil
}

func (s *WallService) GetComments(messageID uint) ([]model.WallComment, error) {
	return s.store.CommentsOf(messageID)
}
