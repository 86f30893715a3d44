package service

import (
	"errors"
	"os"
	"sync"
	"testing"

	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// stubAI đếm số lần gọi và ghi lại messages đã gửi đi
type stubAI struct {
	mu           sync.Mutex
	chatCalls    int
	jsonCalls    int
	reply        string
	jsonReply    string
	err          error
	lastMessages []AIChatMessage
}

func (s *stubAI) Chat(messages []AIChatMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatCalls++
	s.lastMessages = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubAI) ChatJSON(messages []AIChatMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jsonCalls++
	s.lastMessages = messages
	if s.err != nil {
		return "", s.err
	}
	return s.jsonReply, nil
}

func (s *stubAI) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatCalls + s.jsonCalls
}

type stubSurveyStore struct {
	responses []*model.SurveyResponse
	entries   []*model.EmoMapEntry
	questions []model.SurveyQuestion
	insertErr error
}

func (s *stubSurveyStore) InsertResponse(resp *model.SurveyResponse) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.responses = append(s.responses, resp)
	return nil
}

func (s *stubSurveyStore) InsertEmoMap(entry *model.EmoMapEntry) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubSurveyStore) Questions(limit int) ([]model.SurveyQuestion, error) {
	return s.questions, nil
}

type stubMailSender struct {
	mu       sync.Mutex
	sent     []string
	sendErr  error
	lastBody string
}

func (s *stubMailSender) Send(subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, subject)
	s.lastBody = body
	return nil
}

var errBoom = errors.New("boom")
