package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"recruiter-assistant/internal/mailer"
	"recruiter-assistant/internal/storage"
)

var (
	// ErrAlreadyEmailed is returned when a candidate has already been contacted.
	ErrAlreadyEmailed = errors.New("email already sent to this candidate")
	errMissingEmail   = errors.New("candidate email is missing")
)

// sendable reports why c cannot receive the recruitment email, if it cannot.
func sendable(c *storage.Candidate) error {
	if c.Email == "" {
		return errMissingEmail
	}
	if c.Status == storage.StatusEmailed {
		return ErrAlreadyEmailed
	}
	return nil
}

type sendEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// SendEmailHandler sends the recruitment email to one candidate
// @Summary Email candidate
// @Description Send the recruitment email and mark the candidate as emailed
// @Tags email
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} sendEmailResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/email/send/{id} [post]
func (a *API) SendEmailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if a.mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "Email is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	c, err := a.db.GetCandidate(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		log.Printf("[Mailer] Failed to load candidate %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to load candidate")
		return
	}
	switch err := sendable(c); {
	case errors.Is(err, errMissingEmail):
		writeError(w, http.StatusBadRequest, "Candidate email is missing")
		return
	case errors.Is(err, ErrAlreadyEmailed):
		writeError(w, http.StatusBadRequest, "Email already sent to this candidate")
		return
	}

	log.Printf("[Mailer] Sending email to: %s", c.Email)
	msg, err := mailer.RecruitmentMessage(a.fromEmail, c.Email, c.Name, a.companyName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to send email: %v", err))
		return
	}
	messageID, err := a.mailer.Send(r.Context(), msg)
	if err != nil {
		log.Printf("[Mailer] Email sending error: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to send email: %v", err))
		return
	}

	if err := a.db.MarkEmailed(r.Context(), id, a.now()); err != nil {
		log.Printf("[Mailer] Sent to %s but failed to record it: %v", c.Email, err)
		writeError(w, http.StatusInternalServerError, "Email sent but candidate status was not updated")
		return
	}

	writeJSON(w, http.StatusOK, sendEmailResponse{
		Success:   true,
		MessageID: messageID,
		Message:   fmt.Sprintf("Email sent successfully to %s", c.Email),
	})
}

// TestEmailHandler checks the mail transport
// @Summary Verify email configuration
// @Tags email
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /api/email/test [get]
func (a *API) TestEmailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if a.mailer == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Email configuration failed", Details: "no mail transport configured"})
		return
	}

	if err := a.mailer.Verify(r.Context()); err != nil {
		log.Printf("[Mailer] Email test failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Email configuration failed", Details: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Email configuration is valid"})
}
