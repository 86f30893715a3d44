package service

import (
	"testing"

	"emo_buddy_backend/internal/model"
)

type stubWallStore struct {
	messages  []*model.WallMessage
	comments  []*model.WallComment
	exists    bool
	insertErr error
}

func (s *stubWallStore) InsertMessage(msg *model.WallMessage) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *stubWallStore) LatestMessages(limit int) ([]model.WallMessage, error) {
	out := make([]model.WallMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubWallStore) MessageExists(id uint) (bool, error) { return s.exists, nil }

func (s *stubWallStore) InsertComment(comment *model.WallComment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.comments = append(s.comments, comment)
	return nil
}

func (s *stubWallStore) CommentsOf(messageID uint) ([]model.WallComment, error) {
	out := make([]model.WallComment, 0, len(s.comments))
	for _, c := range s.comments {
		if c.MessageID == messageID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func TestPostMessageUnsafeNotPersisted(t *testing.T) {
	store := &stubWallStore{}
	s := NewWallService(NewModerationService(&stubAI{}), store)

	verdict, err := s.PostMessage("tao muốn giết người")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if verdict.Safe {
		t.Error("verdict.Safe = true, want false")
	}
	if len(store.messages) != 0 {
		t.Errorf("persisted %d messages, want 0 for an unsafe message", len(store.messages))
	}
}

func TestPostMessageSafeCarriesColor(t *testing.T) {
	ai := &stubAI{jsonReply: `{"safe": true, "color": "blue"}`}
	store := &stubWallStore{}
	s := NewWallService(NewModerationService(ai), store)

	verdict, err := s.PostMessage("hôm nay mình thấy hơi trống trải")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if !verdict.Safe || verdict.Color != "blue" {
		t.Errorf("verdict = %+v, want {true blue}", verdict)
	}
	if len(store.messages) != 1 {
		t.Fatalf("persisted %d messages, want 1", len(store.messages))
	}
	if store.messages[0].SentimentColor != "blue" {
		t.Errorf("SentimentColor = %q, want blue", store.messages[0].SentimentColor)
	}
}

func TestPostMessageInsertErrorPropagates(t *testing.T) {
	ai := &stubAI{jsonReply: `{"safe": true, "color": "green"}`}
	s := NewWallService(NewModerationService(ai), &stubWallStore{insertErr: errBoom})

	if _, err := s.PostMessage("chúc mọi người thi tốt nha"); err == nil {
		t.Error("PostMessage swallowed the insert error")
	}
}

func TestPostComment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		exists  bool
		want    CommentResult
	}{
		{"bình luận hợp lệ", "cố lên nha cậu ơi", true, CommentAccepted},
		{"bình luận có từ cấm", "mày chết đi", true, CommentBlocked},
		{"tin gốc không tồn tại", "đồng cảm với cậu", false, CommentMessageMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubWallStore{exists: tt.exists}
			s := NewWallService(NewModerationService(&stubAI{}), store)

			got, err := s.PostComment(1, tt.content)
			if err != nil {
				t.Fatalf("PostComment: %v", err)
			}
			if got != tt.want {
				t.Errorf("PostComment = %v, want %v", got, tt.want)
			}

			wantStored := 0
			if tt.want == CommentAccepted {
				wantStored = 1
			}
			if len(store.comments) != wantStored {
				t.Errorf("persisted %d comments, want %d", len(store.comments), wantStored)
			}
		})
	}
}
