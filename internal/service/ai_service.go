package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"emo_buddy_backend/internal/config"
)

// CompletionClient giao diện gọi model sinh văn bản, tách ra để test bằng stub
type CompletionClient interface {
	Chat(messages []AIChatMessage) (string, error)
	ChatJSON(messages []AIChatMessage) (string, error)
}

// AIService client gọi endpoint /chat/completions tương thích OpenAI (Groq)
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []AIChatMessage `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat gọi model một lượt, không retry: tầng trên tự lo fallback khi lỗi
func (s *AIService) Chat(messages []AIChatMessage) (string, error) {
	return s.complete(chatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	})
}

// ChatJSON ép model trả về JSON thuần (structured output) với temperature thấp
func (s *AIService) ChatJSON(messages []AIChatMessage) (string, error) {
	return s.complete(chatCompletionRequest{
		Model:          s.config.Model,
		Messages:       messages,
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
}

func (s *AIService) complete(reqBody chatCompletionRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
