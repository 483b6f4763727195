package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends templated notification emails over plain SMTP. When
// credentials are not configured, sends are skipped with a warning so a dev
// setup without a mailbox still works end to end.
type Mailer struct {
	host   string
	port   string
	user   string
	pass   string
	from   string
	appURL string
	logger *log.Logger
}

func NewMailer(host, port, user, pass, from, appURL string, logger *log.Logger) *Mailer {
	if appURL == "" {
		appURL = "http://localhost:3000"
	}
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from, appURL: appURL, logger: logger}
}

func (m *Mailer) Send(to, subject, html string) error {
	if m.user == "" || m.pass == "" {
		m.logger.Printf("smtp credentials not configured, skipping email to %s", to)
		return nil
	}
	from := m.from
	if from == "" {
		from = m.user
	}
	msg := strings.Join([]string{
		fmt.Sprintf("From: Vmatch <%s>", from),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		html,
	}, "\r\n")
	a := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, a, from, []string{to}, []byte(msg))
}

func (m *Mailer) NewMatchBody(name string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; text-align: center;">
  <h2 style="color: #f97316;">It's a Match! 🎉</h2>
  <p style="font-size: 16px; color: #333;">
    You and <strong>%s</strong> liked each other on Vmatch.
  </p>
  <div style="margin: 30px 0;">
    <a href="%s/dms"
       style="background-color: #f97316; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 16px;">
      Start Chatting
    </a>
  </div>
</div>`, name, m.appURL)
}

func (m *Mailer) NewLikeBody(name string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; text-align: center;">
  <h2 style="color: #f97316;">Someone likes you! 🔥</h2>
  <p style="font-size: 16px; color: #333;">
    Good news! <strong>%s</strong> just liked your profile on Vmatch.
  </p>
  <div style="margin: 30px 0;">
    <a href="%s/likes"
       style="background-color: #f97316; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 16px;">
      View Your Likes
    </a>
  </div>
  <p style="font-size: 14px; color: #888;">
    Don't keep them waiting! Log in to see who it is.
  </p>
</div>`, name, m.appURL)
}
