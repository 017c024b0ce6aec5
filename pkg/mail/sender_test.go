package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mail.v2"
)

type mockDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *mockDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSendMail(t *testing.T) {
	t.Run("sends an email with both body parts and an attachment", func(t *testing.T) {
		mock := &mockDialer{}
		s := &sender{
			email:  "monitor@example.com",
			dialer: mock,
		}

		to := []string{"ops@example.com"}
		subject := "Fleet Health Report For 2025-01-01"
		htmlBody := "<h3>Fleet Health Report</h3>"
		textBody := "--- FLEET HEALTH REPORT ---"
		attachmentContent := "server,uptime\nftp-0,99.9"
		attachments := []Attachment{
			{
				Name:    "report.csv",
				Content: strings.NewReader(attachmentContent),
			},
		}
		err := s.SendMail(to, subject, htmlBody, textBody, attachments)
		assert.NoError(t, err)
		assert.NotNil(t, mock.SentMessage)
		assert.Equal(t, s.email, mock.SentMessage.GetHeader("From")[0])
		assert.Equal(t, to[0], mock.SentMessage.GetHeader("To")[0])
		assert.Equal(t, subject, mock.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		mock.SentMessage.WriteTo(&body)
		assert.Contains(t, body.String(), "Content-Type: text/plain")
		assert.Contains(t, body.String(), "--- FLEET HEALTH REPORT ---")
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h3>Fleet Health Report</h3>")
		assert.Contains(t, body.String(), "Content-Disposition: attachment; filename=\"report.csv\"")
	})

	t.Run("sends an html only email when no text body is given", func(t *testing.T) {
		mock := &mockDialer{}
		s := &sender{
			email:  "monitor@example.com",
			dialer: mock,
		}
		err := s.SendMail([]string{"ops@example.com"}, "Subject", "<p>html</p>", "", nil)
		assert.NoError(t, err)

		var body bytes.Buffer
		mock.SentMessage.WriteTo(&body)
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.NotContains(t, body.String(), "Content-Type: text/plain")
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		mock := &mockDialer{ShouldError: true}
		s := &sender{
			email:  "monitor@example.com",
			dialer: mock,
		}
		err := s.SendMail([]string{"ops@example.com"}, "Subject", "Body", "", nil)
		assert.Error(t, err)
	})
}
