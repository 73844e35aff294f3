package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"robocomp/config"
	"robocomp/registration"
)

// Mailer sends registration confirmation mail over SMTP.
type Mailer struct {
	smtp config.SMTPConfig
}

func NewMailer(smtp config.SMTPConfig) *Mailer {
	return &Mailer{smtp: smtp}
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Team Registration Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Team Registration Confirmation</h2>
    </div>

    <div class="content">
        <p>Thank you for registering team <strong>{{.TeamName}}</strong>.</p>
        <p>We received the following details:</p>

        <h3>Team leader</h3>
        <ul>
            <li><strong>Name:</strong> {{.Captain.Name}} {{.Captain.Surname}}</li>
            <li><strong>Shirt size:</strong> {{.Captain.ShirtSize}}</li>
            <li><strong>Email:</strong> {{.Captain.Email}}</li>
            <li><strong>Phone:</strong> {{.Captain.Phone}}</li>
            <li><strong>Address:</strong> {{.Captain.Street}}, {{.Captain.PostalCode}} {{.Captain.City}}, {{.Captain.Country}}</li>
        </ul>

        <h3>Team members</h3>
        <ul>
            {{range .Participants}}<li>{{.Name}} {{.Surname}}, shirt: {{.ShirtSize}}</li>
            {{else}}<li>No additional members</li>
            {{end}}
        </ul>

        <h3>Robots</h3>
        <ul>
            {{range .Robots}}<li>{{.Name}}, category: {{.Category}}</li>
            {{end}}
        </ul>

        <p>Further organizational information will follow to this address.</p>
    </div>

    <div class="footer">
        <p>© {{.Year}} Robocomp Organizing Team</p>
    </div>
</body>
</html>`))

type confirmationData struct {
	registration.Submission
	Year int
}

// SendConfirmation renders and sends the confirmation mail for a committed
// registration.
func (m *Mailer) SendConfirmation(to string, sub registration.Submission) error {
	var body bytes.Buffer
	data := confirmationData{Submission: sub, Year: time.Now().Year()}
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("error rendering confirmation template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.smtp.FromName, m.smtp.From))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Team registration confirmation – %s", sub.TeamName))
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.Username, m.smtp.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending confirmation to %s: %w", to, err)
	}
	return nil
}
