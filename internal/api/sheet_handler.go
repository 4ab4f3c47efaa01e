package api

import (
	"log"
	"net/http"
	"strings"

	"recruiter-assistant/internal/mailer"
	"recruiter-assistant/internal/storage"
)

// dateLayout names daily sheets and keys the history file.
const dateLayout = "2006-01-02"

type uploadResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
}

type sendEmailsRequest struct {
	Date string `json:"date"`
}

type sendEmailsResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

// UploadHandler appends one candidate to today's intake sheet
// @Summary Add candidate to daily sheet
// @Description Creates the Candidates_<date> spreadsheet on first use and appends the row
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body intakeRow true "Candidate contact"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if a.sheets == nil || a.history == nil {
		writeError(w, http.StatusServiceUnavailable, "Google Sheets is not configured")
		return
	}

	var row intakeRow
	if err := decodeJSON(r, &row); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateIntake(&row); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	today := a.now().UTC().Format(dateLayout)
	entry, created, err := a.history.FindOrCreate(today, func() (string, error) {
		return a.sheets.CreateDailySheet(r.Context(), today)
	})
	if err != nil {
		log.Printf("[Sheets] Failed to create sheet for %s: %v", today, err)
		writeError(w, http.StatusInternalServerError, "Resume upload failed")
		return
	}
	if created {
		log.Printf("[Sheets] Created sheet %s for %s", entry.SheetID, today)
	}

	if err := a.sheets.AppendRow(r.Context(), entry.SheetID, []any{row.Name, row.Email, row.Phone, today}); err != nil {
		log.Printf("[Sheets] Failed to append row: %v", err)
		writeError(w, http.StatusInternalServerError, "Resume upload failed")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Success: true, Name: row.Name, Email: row.Email, Phone: row.Phone, Date: today})
}

// HistoryHandler lists the daily sheets
// @Summary Sheet history
// @Tags sheets
// @Produce json
// @Success 200 {array} storage.SheetEntry
// @Router /history [get]
func (a *API) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if a.history == nil {
		writeJSON(w, http.StatusOK, []storage.SheetEntry{})
		return
	}

	writeJSON(w, http.StatusOK, a.history.List())
}

// SendEmailsHandler emails every candidate on one day's sheet
// @Summary Send interview invitations
// @Description Reads the sheet for the date, drops blank and repeated addresses and sends one invitation per remaining row
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body sendEmailsRequest true "Sheet date (YYYY-MM-DD)"
// @Success 200 {object} sendEmailsResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /send-emails [post]
func (a *API) SendEmailsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if a.sheets == nil || a.history == nil || a.mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "Sheets or email is not configured")
		return
	}

	var req sendEmailsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date := strings.TrimSpace(req.Date)

	// One bulk send at a time so a sheet is never mailed twice.
	a.sendMu.Lock()
	defer a.sendMu.Unlock()

	entry, ok := a.history.Find(date)
	if !ok {
		writeError(w, http.StatusNotFound, "No sheet found for date")
		return
	}
	if entry.Sent {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Emails already sent"})
		return
	}

	values, err := a.sheets.ReadRows(r.Context(), entry.SheetID)
	if err != nil {
		log.Printf("[Sheets] Failed to read sheet %s: %v", entry.SheetID, err)
		writeError(w, http.StatusInternalServerError, "Failed to send emails")
		return
	}

	sent, err := mailer.SendAll(r.Context(), a.mailer, a.fromEmail, a.companyName, mailer.RowsFromSheet(values), a.history.Progress(date))
	if err != nil {
		log.Printf("[Mailer] Bulk send for %s stopped after %d: %v", date, sent, err)
		writeError(w, http.StatusInternalServerError, "Failed to send emails")
		return
	}

	if err := a.history.MarkSent(date); err != nil {
		log.Printf("[Sheets] Failed to mark %s sent: %v", date, err)
		writeError(w, http.StatusInternalServerError, "Failed to send emails")
		return
	}

	log.Printf("[Mailer] Sent %d invitations for %s", sent, date)
	writeJSON(w, http.StatusOK, sendEmailsResponse{Success: true, Sent: sent})
}
