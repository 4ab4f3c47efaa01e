package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"recruiter-assistant/internal/gsuite"
	"recruiter-assistant/internal/storage"
)

type candidateListResponse struct {
	Candidates []storage.Candidate `json:"candidates"`
	Total      int                 `json:"total"`
}

type scanRequest struct {
	DriveLink string `json:"driveLink"`
}

type scanResponse struct {
	Count      int                 `json:"count"`
	Message    string              `json:"message"`
	Candidates []storage.Candidate `json:"candidates"`
}

// ListCandidatesHandler lists stored candidates
// @Summary List candidates
// @Description Newest first, optionally filtered by status and a name/email search
// @Tags candidates
// @Produce json
// @Param status query string false "Status filter (new, emailed, invalid, responded, all)"
// @Param search query string false "Case-insensitive name or email match"
// @Param limit query int false "Page size" default(100)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} candidateListResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	limit, err := queryInt(q.Get("limit"), 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	skip, err := queryInt(q.Get("skip"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid skip")
		return
	}

	filter := storage.ListFilter{
		Status: q.Get("status"),
		Search: strings.TrimSpace(q.Get("search")),
		Limit:  limit,
		Skip:   skip,
	}
	if filter.Status != "" && filter.Status != "all" && !storage.Status(filter.Status).Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	candidates, total, err := a.db.ListCandidates(r.Context(), filter)
	if err != nil {
		log.Printf("[API] Error fetching candidates: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidates")
		return
	}

	writeJSON(w, http.StatusOK, candidateListResponse{Candidates: candidates, Total: total})
}

// ScanHandler scans a Google Drive folder of resumes
// @Summary Scan resume folder
// @Description Download every supported resume in the folder, extract contact fields and reconcile them with stored candidates
// @Tags candidates
// @Accept json
// @Produce json
// @Param request body scanRequest true "Drive folder link"
// @Success 200 {object} scanResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/candidates/scan [post]
func (a *API) ScanHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if a.scan == nil {
		writeError(w, http.StatusServiceUnavailable, "Resume scanning is not configured")
		return
	}

	var req scanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	link := strings.TrimSpace(req.DriveLink)
	if link == "" {
		writeError(w, http.StatusBadRequest, "Google Drive link is required")
		return
	}

	log.Println("[Scan] Starting resume scan...")
	res, err := a.scan.Run(r.Context(), link)
	if err != nil {
		log.Printf("[Scan] Scan error: %v", err)
		if errors.Is(err, gsuite.ErrInvalidLink) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Scan failed: %v", err))
		return
	}

	if len(res.Extracted) == 0 {
		writeJSON(w, http.StatusOK, scanResponse{Count: 0, Message: "No resume files found", Candidates: []storage.Candidate{}})
		return
	}

	writeJSON(w, http.StatusOK, scanResponse{
		Count:      len(res.Extracted),
		Message:    fmt.Sprintf("Successfully processed %d resume files", len(res.Extracted)),
		Candidates: res.Candidates,
	})
}

// CandidateHandler updates or deletes one candidate
// @Summary Update or delete candidate
// @Description PATCH applies operator edits (name, email, phone, status, notes); DELETE removes the record
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body storage.CandidateUpdate false "Fields to change (PATCH only)"
// @Success 200 {object} storage.Candidate
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/candidates/{id} [patch]
// @Router /api/candidates/{id} [delete]
func (a *API) CandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		a.updateCandidate(w, r, id)
	case http.MethodDelete:
		a.deleteCandidate(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

func (a *API) updateCandidate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var u storage.CandidateUpdate
	if err := decodeJSON(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateUpdate(&u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := a.db.UpdateCandidate(r.Context(), id, u)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		log.Printf("[API] Update error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (a *API) deleteCandidate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	err := a.db.DeleteCandidate(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		log.Printf("[API] Delete error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Candidate deleted successfully"})
}

func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
