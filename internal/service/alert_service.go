package service

import (
	"fmt"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/model"
	"emo_buddy_backend/pkg/logger"
	"emo_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// MailSender giao diện gửi mail, triển khai bởi pkg/mailer
type MailSender interface {
	Send(subject, body string) error
}

// AlertService gửi mail cảnh báo khi điểm rủi ro chạm ngưỡng
type AlertService struct {
	mail      MailSender
	threshold int
}

func NewAlertService(mail MailSender, cfg config.ModerationConfig) *AlertService {
	return &AlertService{mail: mail, threshold: cfg.AlertThreshold}
}

// MaybeAlert gửi cảnh báo nếu và chỉ nếu điểm >= ngưỡng. Trả về true khi đã
// kích hoạt. Lỗi gửi mail chỉ ghi log, không bao giờ làm hỏng request gốc.
func (s *AlertService) MaybeAlert(entry *model.EmoMapEntry) bool {
	if entry.RiskScore < s.threshold {
		return false
	}

	subject := fmt.Sprintf("[EmoMap] Cảnh báo cảm xúc nguy cơ cao — %s (%d)",
		entry.StudentName, entry.RiskScore)

	body := fmt.Sprintf(`⚠️ CẢNH BÁO RỦI RO CAO HỌC ĐƯỜNG

Học sinh: %s
Lớp: %s
Giới tính: %s
Điểm rủi ro: %d

Nội dung tâm sự:
"%s"

Vui lòng can thiệp sớm theo hướng dẫn chuyên môn.`,
		entry.StudentName, entry.StudentClass, entry.Gender, entry.RiskScore, entry.Message)

	if err := s.mail.Send(subject, body); err != nil {
		logger.Log.Error("failed to send risk alert mail",
			zap.String("student", entry.StudentName),
			zap.Int("risk_score", entry.RiskScore),
			zap.Error(err))
		return true
	}

	monitoring.AlertsSent.Inc()
	logger.Log.Info("risk alert mail sent",
		zap.String("student", entry.StudentName),
		zap.Int("risk_score", entry.RiskScore))
	return true
}
