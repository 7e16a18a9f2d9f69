package mail

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/avirani/leadscore/internal/infra/queue"
)

const leadAlertTemplate = `<html>
<body>
	<h2>🔥 High scoring lead captured</h2>
	<p>A lead just came in tagged <b>{{.ScoreTag}}</b>. Reach out while it is hot.</p>
	<ul>
		<li><b>Email:</b> {{.Email}}</li>
		<li><b>Phone:</b> {{.Phone}}</li>
		<li><b>Initial score:</b> {{.InitialScore}}</li>
		<li><b>Reranked score:</b> {{.RerankedScore}}</li>
		<li><b>Captured at:</b> {{.CapturedAt}}</li>
	</ul>
	<p>Lead ID: {{.LeadID}}</p>
</body>
</html>`

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *EmailSender) SendLeadAlert(to string, payload queue.LeadCapturedPayload) error {
	data := LeadAlertData{
		LeadID:        payload.LeadID,
		Email:         payload.Email,
		Phone:         payload.Phone,
		InitialScore:  formatScore(payload.InitialScore),
		RerankedScore: formatScore(payload.RerankedScore),
		ScoreTag:      payload.ScoreTag,
		CapturedAt:    payload.CapturedAt.Format("2006-01-02 15:04:05"),
	}

	t, err := template.New("lead_alert").Parse(leadAlertTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse alert template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@leadscore.local")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🔥 New %s lead: %s", payload.ScoreTag, payload.Email))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}

func formatScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
