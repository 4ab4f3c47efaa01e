package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender delivers messages and can check that it is configured.
type Sender interface {
	Send(ctx context.Context, m Message) (string, error)
	Verify(ctx context.Context) error
}

// NewGmailService builds a Gmail client from a service-account key that
// impersonates user through domain-wide delegation.
func NewGmailService(ctx context.Context, credentialsFile, user string) (*gmail.Service, error) {
	if user == "" {
		return nil, fmt.Errorf("gmail user cannot be empty")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, gmail.GmailSendScope, gmail.GmailMetadataScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	config.Subject = user

	service, err := gmail.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return service, nil
}

// GmailSender sends mail as the authenticated Gmail user.
type GmailSender struct {
	service *gmail.Service
	now     func() time.Time
}

func NewGmailSender(service *gmail.Service) *GmailSender {
	return &GmailSender{service: service, now: time.Now}
}

// Send delivers m and returns the Gmail message id.
func (s *GmailSender) Send(ctx context.Context, m Message) (string, error) {
	raw := base64.URLEncoding.EncodeToString(m.Raw(s.now()))

	sent, err := s.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("send to %s: %w", m.To, err)
	}

	log.Printf("[Mailer] Sent %q to %s (id %s)", m.Subject, m.To, sent.Id)
	return sent.Id, nil
}

// Verify checks the credentials by reading the sender's profile.
func (s *GmailSender) Verify(ctx context.Context) error {
	profile, err := s.service.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail profile: %w", err)
	}
	log.Printf("[Mailer] Sending as %s", profile.EmailAddress)
	return nil
}

// Progress remembers which addresses a bulk send has already reached, so a
// retry after a partial failure skips them. Addresses are lowercased and
// trimmed.
type Progress interface {
	Done(email string) bool
	Record(email string) error
}

// SendAll sends one message per row, skipping rows without a usable address
// and rows progress already has. It stops at the first failure and reports how
// many were sent in this call. progress may be nil.
func SendAll(ctx context.Context, sender Sender, from, company string, rows []Row, progress Progress) (int, error) {
	sent := 0
	for _, row := range DedupeByEmail(rows) {
		key := strings.ToLower(strings.TrimSpace(row.Email))
		if progress != nil && progress.Done(key) {
			continue
		}

		msg, err := InvitationMessage(from, row, company)
		if err != nil {
			return sent, err
		}
		if _, err := sender.Send(ctx, msg); err != nil {
			return sent, err
		}
		sent++

		if progress != nil {
			if err := progress.Record(key); err != nil {
				return sent, fmt.Errorf("record progress for %s: %w", key, err)
			}
		}
	}
	return sent, nil
}
