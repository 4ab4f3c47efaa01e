package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"mime"
	"strings"
	"text/template"
	"time"
)

// Message is one outbound email. Exactly one of HTML and Text is normally set.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

var recruitmentTemplate = htmltemplate.Must(htmltemplate.New("recruitment").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Hello {{if .Name}}{{.Name}}{{else}}there{{end}}!</h2>
  <p>Thank you for sharing your resume with us. After reviewing your profile, we're impressed with your background and would love to discuss potential opportunities at <strong>{{.Company}}</strong>.</p>
  <p>We have several positions that might be a great fit for your skills and experience. Would you be available for a brief 20-30 minute call this week to explore these opportunities?</p>
  <p>Please reply with your availability, and we'll schedule a convenient time to connect.</p>
  <p>Looking forward to hearing from you!</p>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
    <p><strong>Best regards,</strong><br/>
    Recruitment Team<br/>
    <strong>{{.Company}}</strong></p>
  </div>
</div>
`))

var invitationTemplate = template.Must(template.New("invitation").Parse(`Hello {{.Name}},

We received your application on {{.Date}}. Our recruiter will contact you shortly.

Thanks,
{{.Company}}
`))

// RecruitmentMessage is the HTML note sent to a single scanned candidate.
func RecruitmentMessage(from, to, name, company string) (Message, error) {
	var body bytes.Buffer
	err := recruitmentTemplate.Execute(&body, struct{ Name, Company string }{name, company})
	if err != nil {
		return Message{}, fmt.Errorf("render recruitment email: %w", err)
	}
	return Message{
		From:    from,
		To:      to,
		Subject: "Exciting Opportunity at " + company,
		HTML:    body.String(),
	}, nil
}

// InvitationMessage is the plain-text note sent for one intake-sheet row.
func InvitationMessage(from string, row Row, company string) (Message, error) {
	var body bytes.Buffer
	err := invitationTemplate.Execute(&body, struct{ Name, Date, Company string }{row.Name, row.Date, company})
	if err != nil {
		return Message{}, fmt.Errorf("render invitation email: %w", err)
	}
	return Message{
		From:    from,
		To:      strings.TrimSpace(row.Email),
		Subject: "Interview Invitation - " + company,
		Text:    body.String(),
	}, nil
}

// Raw renders m as an RFC 5322 message.
func (m Message) Raw(now time.Time) []byte {
	contentType := "text/plain"
	body := m.Text
	if m.HTML != "" {
		contentType = "text/html"
		body = m.HTML
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=\"UTF-8\"\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))
	return b.Bytes()
}
