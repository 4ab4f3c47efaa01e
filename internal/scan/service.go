// Package scan runs a resume scan end to end: fetch the folder, extract every
// document and reconcile the result into the candidate store.
package scan

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"recruiter-assistant/internal/cv"
	"recruiter-assistant/internal/reconcile"
	"recruiter-assistant/internal/storage"
)

// FolderSource copies a remote resume folder into a local directory.
type FolderSource interface {
	Download(ctx context.Context, link string) (string, error)
}

// Store is the persistence the scan needs.
type Store interface {
	AllCandidates(ctx context.Context) ([]storage.Candidate, error)
	ReconcileScan(ctx context.Context, plan func(current []storage.Candidate) storage.Changeset) (storage.Changeset, error)
}

// Result summarises one scan.
type Result struct {
	Extracted  []cv.ExtractedCandidate `json:"extracted"`
	Changes    storage.Changeset       `json:"changes"`
	Candidates []storage.Candidate     `json:"candidates"`
	Duration   time.Duration           `json:"duration"`
}

type Service struct {
	folder     FolderSource
	scanner    *cv.Scanner
	store      Store
	reconciler *reconcile.Reconciler
}

func NewService(folder FolderSource, scanner *cv.Scanner, store Store) *Service {
	return &Service{
		folder:     folder,
		scanner:    scanner,
		store:      store,
		reconciler: reconcile.New(),
	}
}

// Run downloads the linked folder, scans it and applies the reconciliation.
func (s *Service) Run(ctx context.Context, link string) (*Result, error) {
	if s.folder == nil {
		return nil, fmt.Errorf("download: no folder source configured")
	}

	dir, err := s.folder.Download(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("[Scan] Failed to remove %s: %v", dir, err)
		}
	}()

	return s.RunDir(ctx, dir)
}

// RunDir scans a local directory and applies the reconciliation.
func (s *Service) RunDir(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	batch, err := s.scanner.ScanDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	changes, err := s.store.ReconcileScan(ctx, func(current []storage.Candidate) storage.Changeset {
		return s.reconciler.Reconcile(batch, current)
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	all, err := s.store.AllCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload candidates: %w", err)
	}

	res := &Result{Extracted: batch, Changes: changes, Candidates: all, Duration: time.Since(start)}
	log.Printf("[Scan] %d documents: %d inserted, %d updated, %d deleted (took %v)",
		len(batch), len(changes.Insert), len(changes.Update), len(changes.Delete), res.Duration)
	return res, nil
}

// Preview scans dir and computes the changeset without writing anything.
func (s *Service) Preview(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	batch, err := s.scanner.ScanDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	current, err := s.store.AllCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	changes := s.reconciler.Reconcile(batch, current)
	return &Result{
		Extracted:  batch,
		Changes:    changes,
		Candidates: reconcile.Apply(current, changes),
		Duration:   time.Since(start),
	}, nil
}
