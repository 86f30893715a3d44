package service

import "testing"

func TestClassifyKeywordBlockSkipsAI(t *testing.T) {
	ai := &stubAI{}
	s := NewModerationService(ai)

	verdict := s.Classify("tôi muốn tự tử")

	if verdict.Safe {
		t.Error("verdict.Safe = true, want false for forbidden keyword")
	}
	if verdict.Color != "red" {
		t.Errorf("verdict.Color = %q, want red", verdict.Color)
	}
	if ai.totalCalls() != 0 {
		t.Errorf("AI was called %d times, want 0 when keyword stage blocks", ai.totalCalls())
	}
}

func TestClassifyFailsOpenOnAIError(t *testing.T) {
	ai := &stubAI{err: errBoom}
	s := NewModerationService(ai)

	verdict := s.Classify("hôm nay trời đẹp quá")

	if !verdict.Safe {
		t.Error("verdict.Safe = false, want fail-open true on AI error")
	}
	if verdict.Color != "gray" {
		t.Errorf("verdict.Color = %q, want gray", verdict.Color)
	}
	if ai.jsonCalls != 1 {
		t.Errorf("ChatJSON called %d times, want 1", ai.jsonCalls)
	}
}

func TestClassifyFailsOpenOnBadJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"không phải JSON", "xin lỗi, tôi không chắc"},
		{"thiếu trường safe", `{"color": "blue"}`},
		{"màu không hợp lệ", `{"safe": true, "color": "rainbow"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &stubAI{jsonReply: tt.raw}
			s := NewModerationService(ai)

			verdict := s.Classify("hôm nay mình thấy hơi lạ")
			if !verdict.Safe || verdict.Color != "gray" {
				t.Errorf("Classify = %+v, want fail-open {true gray}", verdict)
			}
		})
	}
}

func TestClassifyParsesVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Verdict
	}{
		{"an toàn màu vàng", `{"safe": true, "color": "yellow"}`, Verdict{Safe: true, Color: "yellow"}},
		{"không an toàn màu đỏ", `{"safe": false, "color": "red"}`, Verdict{Safe: false, Color: "red"}},
		{"buồn màu xanh dương", `{"safe": true, "color": "blue"}`, Verdict{Safe: true, Color: "blue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &stubAI{jsonReply: tt.raw}
			s := NewModerationService(ai)

			got := s.Classify("mai thi rồi mà chưa ôn gì cả")
			if got != tt.want {
				t.Errorf("Classify = %+v, want %+v", got, tt.want)
			}
		})
	}
}
