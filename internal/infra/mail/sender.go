package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var alertTemplate = template.Must(template.New("hotlead").Parse(`
<h2>🔥 Hot lead: {{.Name}}</h2>
<p>A new hot lead just finished the qualification chat.</p>
<ul>
  <li><b>Name:</b> {{.Name}}</li>
  <li><b>Email:</b> {{.Email}}</li>
  <li><b>Company:</b> {{.Company}}</li>
  <li><b>Need:</b> {{.Need}}</li>
  <li><b>Budget:</b> {{.Budget}}</li>
  <li><b>Score:</b> {{.Score}}/100</li>
</ul>
<p>Reach out while it's warm.</p>
`))

type alertData struct {
	Name    string
	Email   string
	Company string
	Need    string
	Budget  string
	Score   int
}

// SendHotLeadAlert mails the sales team about a freshly scored hot lead.
func (s *EmailSender) SendHotLeadAlert(to string, lead *entity.Lead) error {
	return s.send(to, alertData{
		Name:    lead.Name,
		Email:   lead.Email,
		Company: lead.Company,
		Need:    lead.Need,
		Budget:  lead.Budget,
		Score:   lead.Score,
	})
}

// SendHotLeadAlertPayload is the queue-worker entry point; same email, fed
// from the lead.saved event instead of the entity.
func (s *EmailSender) SendHotLeadAlertPayload(to string, payload queue.LeadSavedPayload) error {
	return s.send(to, alertData{
		Name:    payload.Name,
		Email:   payload.Email,
		Company: payload.Company,
		Need:    payload.Need,
		Budget:  payload.Budget,
		Score:   payload.Score,
	})
}

func (s *EmailSender) send(to string, data alertData) error {
	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	name := data.Name
	if name == "" {
		name = data.Email
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🔥 Hot lead: %s (score %d)", name, data.Score))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
