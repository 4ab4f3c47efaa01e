package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"recruiter-assistant/internal/config"
	"recruiter-assistant/internal/mailer"
	"recruiter-assistant/internal/scan"
	"recruiter-assistant/internal/storage"
)

// CandidateStore is the candidate persistence used by the handlers.
type CandidateStore interface {
	ListCandidates(ctx context.Context, f storage.ListFilter) ([]storage.Candidate, int, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*storage.Candidate, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, u storage.CandidateUpdate) (*storage.Candidate, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) error
	MarkEmailed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// IntakeSheets is the daily spreadsheet backend.
type IntakeSheets interface {
	CreateDailySheet(ctx context.Context, date string) (string, error)
	AppendRow(ctx context.Context, spreadsheetID string, row []any) error
	ReadRows(ctx context.Context, spreadsheetID string) ([][]any, error)
}

// Options wires the optional collaborators. Nil integrations make their
// endpoints answer 503.
type Options struct {
	Scan        *scan.Service
	Sheets      IntakeSheets
	History     *storage.HistoryStore
	Mailer      mailer.Sender
	FromEmail   string
	CompanyName string
	ScanLimit   config.RateLimit
	EmailLimit  config.RateLimit
	Now         func() time.Time
}

type API struct {
	db          CandidateStore
	scan        *scan.Service
	sheets      IntakeSheets
	history     *storage.HistoryStore
	mailer      mailer.Sender
	fromEmail   string
	companyName string
	scanLimit   *ipLimiter
	emailLimit  *ipLimiter
	now         func() time.Time

	sendMu sync.Mutex
}

func NewAPI(db CandidateStore, opts Options) *API {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CompanyName == "" {
		opts.CompanyName = "Our Company"
	}
	if opts.ScanLimit.Requests == 0 {
		opts.ScanLimit = config.RateLimit{Requests: 15, Window: 15 * time.Minute}
	}
	if opts.EmailLimit.Requests == 0 {
		opts.EmailLimit = config.RateLimit{Requests: 50, Window: time.Hour}
	}

	return &API{
		db:          db,
		scan:        opts.Scan,
		sheets:      opts.Sheets,
		history:     opts.History,
		mailer:      opts.Mailer,
		fromEmail:   opts.FromEmail,
		companyName: opts.CompanyName,
		scanLimit:   newIPLimiter(opts.ScanLimit),
		emailLimit:  newIPLimiter(opts.EmailLimit),
		now:         opts.Now,
	}
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
