// Package reconcile merges one scan's extracted candidates into the stored
// candidate set.
package reconcile

import (
	"time"

	"github.com/google/uuid"

	"recruiter-assistant/internal/cv"
	"recruiter-assistant/internal/storage"
)

// Reconciler computes changesets. It holds no state between calls.
type Reconciler struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func New() *Reconciler {
	return &Reconciler{now: time.Now, newID: uuid.New}
}

// Reconcile diffs batch against persisted:
//   - stored records whose source is missing from batch are deleted,
//   - unseen sources are inserted with status new,
//   - known sources get name, email and phone from the batch while status,
//     notes and email-sent time are kept.
//
// Every record in batch must carry a non-empty SourceID, unique within batch.
// The outcome for one source never depends on another.
func (r *Reconciler) Reconcile(batch []cv.ExtractedCandidate, persisted []storage.Candidate) storage.Changeset {
	now := r.now()

	bySource := make(map[string]storage.Candidate, len(persisted))
	for _, p := range persisted {
		bySource[p.SourceID] = p
	}

	seen := make(map[string]struct{}, len(batch))
	changes := storage.Changeset{
		Delete: []storage.Candidate{},
		Insert: []storage.Candidate{},
		Update: []storage.Candidate{},
	}

	for _, e := range batch {
		seen[e.SourceID] = struct{}{}

		existing, ok := bySource[e.SourceID]
		if !ok {
			changes.Insert = append(changes.Insert, storage.Candidate{
				ID:        r.newID(),
				Name:      e.Name,
				Email:     cv.NormalizeEmail(e.Email),
				Phone:     e.Phone,
				SourceID:  e.SourceID,
				Status:    storage.StatusNew,
				CreatedAt: now,
				UpdatedAt: now,
			})
			continue
		}

		existing.Name = e.Name
		existing.Email = cv.NormalizeEmail(e.Email)
		existing.Phone = e.Phone
		existing.UpdatedAt = now
		changes.Update = append(changes.Update, existing)
	}

	for _, p := range persisted {
		if _, ok := seen[p.SourceID]; !ok {
			changes.Delete = append(changes.Delete, p)
		}
	}

	return changes
}

// Apply returns the candidate set that results from applying changes to
// persisted. Stores use it to preview a scan without writing.
func Apply(persisted []storage.Candidate, changes storage.Changeset) []storage.Candidate {
	drop := make(map[string]struct{}, len(changes.Delete))
	for _, c := range changes.Delete {
		drop[c.SourceID] = struct{}{}
	}
	updated := make(map[string]storage.Candidate, len(changes.Update))
	for _, c := range changes.Update {
		updated[c.SourceID] = c
	}

	out := make([]storage.Candidate, 0, len(persisted)+len(changes.Insert))
	for _, p := range persisted {
		if _, ok := drop[p.SourceID]; ok {
			continue
		}
		if u, ok := updated[p.SourceID]; ok {
			p = u
		}
		out = append(out, p)
	}
	return append(out, changes.Insert...)
}
