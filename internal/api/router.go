package api

import (
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Candidates
	mux.HandleFunc("/api/candidates", a.ListCandidatesHandler)
	mux.HandleFunc("/api/candidates/scan", a.scanLimit.Wrap(a.ScanHandler, "Too many scan requests, please try again later"))
	mux.HandleFunc("/api/candidates/{id}", a.CandidateHandler)

	// Outbound email
	mux.HandleFunc("/api/email/send/{id}", a.emailLimit.Wrap(a.SendEmailHandler, "Too many emails sent, please try again later"))
	mux.HandleFunc("/api/email/test", a.TestEmailHandler)

	// Daily intake sheets
	mux.HandleFunc("/api/upload", a.UploadHandler)
	mux.HandleFunc("/history", a.HistoryHandler)
	mux.HandleFunc("/send-emails", a.SendEmailsHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return requestLogger(c.Handler(mux))
}
