package service

import (
	"regexp"
	"strings"
)

// Danh sách từ cấm hợp nhất cho toàn hệ thống (tường, bình luận, chat, khảo sát).
// So khớp theo chuỗi con sau khi hạ chữ thường, cố ý rộng để không lọt từ biến thể.
var forbiddenKeywords = []string{
	"tự tử", "tự sát", "chết", "muốn chết", "chết đi", "giết người", "chém", "đâm chết",
	"nhảy lầu", "uống thuốc sâu", "rạch tay", "hiếp dâm", "ấu dâm",
	"ma túy", "cần sa", "đập đá", "fuck", "đm", "đkm", "vcl", "buồi", "lồn", "óc chó",
}

// CheckKeywords trả về true nếu nội dung KHÔNG chứa từ cấm nào.
// Hàm thuần, không có chế độ lỗi.
func CheckKeywords(content string) bool {
	contentLower := strings.ToLower(content)
	for _, word := range forbiddenKeywords {
		if strings.Contains(contentLower, word) {
			return false
		}
	}
	return true
}

var thinkTagPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CleanAIResponse cắt bỏ khối suy nghĩ <think> mà model đôi khi để lộ.
// Bước bắt buộc trước khi trả lời cho học sinh, không phải dọn dẹp tùy chọn.
func CleanAIResponse(text string) string {
	return strings.TrimSpace(thinkTagPattern.ReplaceAllString(text, ""))
}
