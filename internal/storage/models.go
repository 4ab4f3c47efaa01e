package storage

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks where a candidate is in the outreach flow.
type Status string

const (
	StatusNew       Status = "new"
	StatusEmailed   Status = "emailed"
	StatusInvalid   Status = "invalid"
	StatusResponded Status = "responded"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusEmailed, StatusInvalid, StatusResponded:
		return true
	}
	return false
}

// Candidate is the durable record for one resume document. SourceID is unique;
// the record lives exactly as long as its document is present in the scanned
// folder.
type Candidate struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	SourceID    string     `json:"source_id"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes"`
	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Changeset is the outcome of reconciling a scan against stored candidates.
type Changeset struct {
	Delete []Candidate `json:"delete"`
	Insert []Candidate `json:"insert"`
	Update []Candidate `json:"update"`
}

// ListFilter narrows a candidate listing.
type ListFilter struct {
	Status string // "" or "all" for every status
	Search string // case-insensitive match on name or email
	Limit  int
	Skip   int
}

// CandidateUpdate carries operator edits. Nil fields are left untouched.
type CandidateUpdate struct {
	Name   *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Email  *string `json:"email,omitempty" validate:"omitnil,resume_email"`
	Phone  *string `json:"phone,omitempty" validate:"omitnil,min=1,max=20"`
	Status *Status `json:"status,omitempty" validate:"omitnil,oneof=new emailed invalid responded"`
	Notes  *string `json:"notes,omitempty" validate:"omitnil,max=500"`
}

// Empty reports whether the update sets no field.
func (u CandidateUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Status == nil && u.Notes == nil
}
