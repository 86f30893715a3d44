package service

import "testing"

func TestCheckKeywords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"nội dung bình thường", "hôm nay mình thấy vui lắm", true},
		{"chứa từ cấm nguyên văn", "tôi muốn tự tử", false},
		{"từ cấm viết hoa", "FUCK cái trường này", false},
		{"từ cấm là chuỗi con", "đừng nói chuyện chết chóc nữa", false},
		{"từ cấm giữa câu", "bạn ấy dọa nhảy lầu hôm qua", false},
		{"chuỗi rỗng", "", true},
		{"gần giống nhưng không chứa", "mình chỉ hơi buồn thôi", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckKeywords(tt.content); got != tt.want {
				t.Errorf("CheckKeywords(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestCleanAIResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"không có thẻ", "Cậu cứ nghỉ ngơi nhé!", "Cậu cứ nghỉ ngơi nhé!"},
		{"thẻ đầu chuỗi", "<think>reasoning</think>Cậu ổn không?", "Cậu ổn không?"},
		{"thẻ nhiều dòng", "<think>line1\nline2</think>\nEmo ở đây nè.", "Emo ở đây nè."},
		{"nhiều thẻ", "<think>a</think>Chào cậu<think>b</think>!", "Chào cậu!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAIResponse(tt.in); got != tt.want {
				t.Errorf("CleanAIResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
