package service

import (
	"strings"
	"testing"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/model"
)

func newTestAlertService(mail MailSender) *AlertService {
	return NewAlertService(mail, config.ModerationConfig{AlertThreshold: 60})
}

func TestMaybeAlertBelowThreshold(t *testing.T) {
	mail := &stubMailSender{}
	s := newTestAlertService(mail)

	fired := s.MaybeAlert(&model.EmoMapEntry{StudentName: "Lan", RiskScore: 59})

	if fired {
		t.Error("MaybeAlert fired at 59, threshold is 60")
	}
	if len(mail.sent) != 0 {
		t.Errorf("sent %d mails, want 0", len(mail.sent))
	}
}

func TestMaybeAlertAtThreshold(t *testing.T) {
	mail := &stubMailSender{}
	s := newTestAlertService(mail)

	entry := &model.EmoMapEntry{
		StudentName:  "Lan",
		StudentClass: "7C3",
		Gender:       "Nữ",
		Message:      "em không muốn đến trường nữa",
		RiskScore:    60,
	}
	if !s.MaybeAlert(entry) {
		t.Fatal("MaybeAlert did not fire at the threshold")
	}

	if len(mail.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0], "Lan") || !strings.Contains(mail.sent[0], "60") {
		t.Errorf("subject %q is missing the student name or score", mail.sent[0])
	}
	for _, want := range []string{"7C3", "em không muốn đến trường nữa", "Điểm rủi ro: 60"} {
		if !strings.Contains(mail.lastBody, want) {
			t.Errorf("mail body is missing %q", want)
		}
	}
}

func TestMaybeAlertSwallowsSendError(t *testing.T) {
	mail := &stubMailSender{sendErr: errBoom}
	s := newTestAlertService(mail)

	// Lỗi SMTP không được đổi kết quả: cảnh báo vẫn tính là đã kích hoạt
	if !s.MaybeAlert(&model.EmoMapEntry{StudentName: "Lan", RiskScore: 90}) {
		t.Error("MaybeAlert = false on send error, want true")
	}
}
