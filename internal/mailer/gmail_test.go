package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func newTestGmail(t *testing.T, handler http.HandlerFunc) *GmailSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	service, err := gmail.NewService(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return NewGmailSender(service)
}

func TestGmailSenderSend(t *testing.T) {
	var got gmail.Message
	sender := newTestGmail(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/users/me/messages/send"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	})

	id, err := sender.Send(context.Background(), Message{From: "a@b.io", To: "c@d.io", Subject: "Hi", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)

	raw, err := base64.URLEncoding.DecodeString(got.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "To: c@d.io\r\n")
}

func TestGmailSenderSendError(t *testing.T) {
	sender := newTestGmail(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	_, err := sender.Send(context.Background(), Message{To: "c@d.io"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send to c@d.io")
}

type recordingSender struct {
	sent   []Message
	failAt int
}

func (s *recordingSender) Send(_ context.Context, m Message) (string, error) {
	if s.failAt > 0 && len(s.sent)+1 == s.failAt {
		return "", errors.New("smtp down")
	}
	s.sent = append(s.sent, m)
	return "id", nil
}

func (s *recordingSender) Verify(context.Context) error { return nil }

func TestSendAll(t *testing.T) {
	rows := []Row{
		{Name: "A", Email: "x@y.com", Date: "2026-10-19"},
		{Name: "B", Email: "X@Y.com"},
		{Name: "C", Email: ""},
		{Name: "D", Email: "Unknown"},
		{Name: "E", Email: "e@y.com"},
	}

	s := &recordingSender{}
	n, err := SendAll(context.Background(), s, "hr@acme.io", "Acme", rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "x@y.com", s.sent[0].To)
	assert.Equal(t, "e@y.com", s.sent[1].To)

	failing := &recordingSender{failAt: 2}
	n, err = SendAll(context.Background(), failing, "hr@acme.io", "Acme", rows, nil)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

type memProgress map[string]bool

func (p memProgress) Done(email string) bool { return p[email] }

func (p memProgress) Record(email string) error {
	p[email] = true
	return nil
}

func TestSendAllResumesAfterFailure(t *testing.T) {
	rows := []Row{
		{Name: "A", Email: " X@y.com"},
		{Name: "B", Email: "b@y.com"},
		{Name: "C", Email: "c@y.com"},
	}
	progress := memProgress{}

	failing := &recordingSender{failAt: 2}
	n, err := SendAll(context.Background(), failing, "hr@acme.io", "Acme", rows, progress)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, memProgress{"x@y.com": true}, progress)

	retry := &recordingSender{}
	n, err = SendAll(context.Background(), retry, "hr@acme.io", "Acme", rows, progress)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, retry.sent, 2)
	assert.Equal(t, "b@y.com", retry.sent[0].To)
	assert.Equal(t, "c@y.com", retry.sent[1].To)
}
