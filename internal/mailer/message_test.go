package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecruitmentMessage(t *testing.T) {
	msg, err := RecruitmentMessage("hr@acme.io", "jane@x.com", "Jane <Doe>", "Acme")
	require.NoError(t, err)

	assert.Equal(t, "Exciting Opportunity at Acme", msg.Subject)
	assert.Equal(t, "jane@x.com", msg.To)
	assert.Contains(t, msg.HTML, "Hello Jane &lt;Doe&gt;!")
	assert.Contains(t, msg.HTML, "<strong>Acme</strong>")
	assert.Empty(t, msg.Text)

	anon, err := RecruitmentMessage("hr@acme.io", "x@y.com", "", "Acme")
	require.NoError(t, err)
	assert.Contains(t, anon.HTML, "Hello there!")
}

func TestInvitationMessage(t *testing.T) {
	msg, err := InvitationMessage("hr@acme.io", Row{Name: "Ravi", Email: " ravi@x.in ", Date: "2026-10-19"}, "Acme")
	require.NoError(t, err)

	assert.Equal(t, "ravi@x.in", msg.To)
	assert.Equal(t, "Interview Invitation - Acme", msg.Subject)
	assert.Contains(t, msg.Text, "Hello Ravi,")
	assert.Contains(t, msg.Text, "on 2026-10-19.")
}

func TestMessageRaw(t *testing.T) {
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	raw := string(Message{From: "a@b.io", To: "c@d.io", Subject: "Hi", Text: "line1\nline2"}.Raw(at))

	head, body, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)
	assert.Contains(t, head, "From: a@b.io\r\n")
	assert.Contains(t, head, "To: c@d.io\r\n")
	assert.Contains(t, head, "Subject: Hi\r\n")
	assert.Contains(t, head, "Date: Mon, 19 Oct 2026 10:00:00 +0000")
	assert.Contains(t, head, `Content-Type: text/plain; charset="UTF-8"`)
	assert.Equal(t, "line1\r\nline2", body)

	html := string(Message{HTML: "<p>x</p>"}.Raw(at))
	assert.Contains(t, html, `Content-Type: text/html; charset="UTF-8"`)
}
