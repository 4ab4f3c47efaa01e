package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// SheetEntry records the spreadsheet created for one day of intake and
// whether its bulk email has gone out. Emailed lists the addresses already
// reached by an unfinished bulk send.
type SheetEntry struct {
	Date    string   `json:"date"`
	SheetID string   `json:"sheetId"`
	Sent    bool     `json:"sent"`
	Emailed []string `json:"emailed,omitempty"`
}

// HistoryStore keeps the day-to-spreadsheet history in a JSON file.
type HistoryStore struct {
	mu      sync.RWMutex
	path    string
	entries []SheetEntry
}

func NewHistoryStore(path string) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	store := &HistoryStore{path: path}
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *HistoryStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []SheetEntry{}

	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&s.entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode history file: %w", err)
	}
	if s.entries == nil {
		s.entries = []SheetEntry{}
	}
	return nil
}

// List returns a copy of every entry in creation order.
func (s *HistoryStore) List() []SheetEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SheetEntry, len(s.entries))
	for i, e := range s.entries {
		e.Emailed = slices.Clone(e.Emailed)
		out[i] = e
	}
	return out
}

// Find returns the entry for date, if any.
func (s *HistoryStore) Find(date string) (SheetEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.Date == date {
			return e, true
		}
	}
	return SheetEntry{}, false
}

// FindOrCreate returns the entry for date. When none exists, create is called
// to obtain a sheet id and the new entry is persisted. The lock is held
// throughout so one day never gets two sheets.
func (s *HistoryStore) FindOrCreate(date string, create func() (string, error)) (SheetEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Date == date {
			return e, false, nil
		}
	}

	sheetID, err := create()
	if err != nil {
		return SheetEntry{}, false, err
	}

	entry := SheetEntry{Date: date, SheetID: sheetID}
	s.entries = append(s.entries, entry)
	if err := s.saveLocked(); err != nil {
		return SheetEntry{}, false, err
	}
	return entry, true, nil
}

// MarkSent flags the entry for date as emailed.
func (s *HistoryStore) MarkSent(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Date == date {
			s.entries[i].Sent = true
			return s.saveLocked()
		}
	}
	return fmt.Errorf("no sheet recorded for %s", date)
}

// SheetProgress tracks the addresses one day's bulk send has reached.
type SheetProgress struct {
	store *HistoryStore
	date  string
}

// Progress returns the send tracker for date.
func (s *HistoryStore) Progress(date string) *SheetProgress {
	return &SheetProgress{store: s, date: date}
}

// Done reports whether email was already sent for this day.
func (p *SheetProgress) Done(email string) bool {
	entry, ok := p.store.Find(p.date)
	return ok && slices.Contains(entry.Emailed, email)
}

// Record persists email as sent for this day.
func (p *SheetProgress) Record(email string) error {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Date == p.date {
			if !slices.Contains(s.entries[i].Emailed, email) {
				s.entries[i].Emailed = append(s.entries[i].Emailed, email)
			}
			return s.saveLocked()
		}
	}
	return fmt.Errorf("no sheet recorded for %s", p.date)
}

func (s *HistoryStore) saveLocked() error {
	tmp := s.path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create history temp file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.entries); err != nil {
		file.Close()
		return fmt.Errorf("encode history: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
