package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // PostgreSQL driver
)

// ErrNotFound is returned when a candidate id does not exist.
var ErrNotFound = errors.New("candidate not found")

// scanLockKey serialises reconciliation runs across every API instance.
const scanLockKey = 0x7265637275697465

const defaultListLimit = 100

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL DEFAULT '',
    phone         TEXT NOT NULL DEFAULT '',
    source_id     TEXT NOT NULL UNIQUE,
    status        TEXT NOT NULL DEFAULT 'new'
                  CHECK (status IN ('new', 'emailed', 'invalid', 'responded')),
    notes         TEXT NOT NULL DEFAULT '',
    email_sent_at TIMESTAMPTZ,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS candidates_email_idx ON candidates (email);
CREATE INDEX IF NOT EXISTS candidates_status_idx ON candidates (status);
`

const candidateColumns = `id, name, email, phone, source_id, status, notes, email_sent_at, created_at, updated_at`

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// Migrate creates the candidates table and its indexes if missing.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate candidates: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*Candidate, error) {
	c := &Candidate{}
	var status string
	var sentAt sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.SourceID, &status, &c.Notes, &sentAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = Status(status)
	if sentAt.Valid {
		t := sentAt.Time
		c.EmailSentAt = &t
	}
	return c, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryCandidates(ctx context.Context, q queryer, query string, args ...any) ([]Candidate, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *c)
	}
	return res, rows.Err()
}

// ListCandidates returns one page of candidates, newest first, and the total
// number matching the filter.
func (db *DB) ListCandidates(ctx context.Context, f ListFilter) ([]Candidate, int, error) {
	var where []string
	var args []any
	i := 1

	if f.Status != "" && f.Status != "all" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, f.Status)
		i++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf(`(name ILIKE $%d ESCAPE '\' OR email ILIKE $%d ESCAPE '\')`, i, i))
		args = append(args, "%"+escapeLike(f.Search)+"%")
		i++
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := db.connection.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count candidates: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	skip := f.Skip
	if skip < 0 {
		skip = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM candidates%s ORDER BY created_at DESC, source_id LIMIT $%d OFFSET $%d`,
		candidateColumns, clause, i, i+1)
	args = append(args, limit, skip)

	res, err := queryCandidates(ctx, db.connection, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list candidates: %w", err)
	}
	return res, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// AllCandidates returns every stored candidate, newest first.
func (db *DB) AllCandidates(ctx context.Context) ([]Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC, source_id`
	return queryCandidates(ctx, db.connection, query)
}

func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(db.connection.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// UpdateCandidate applies the non-nil fields of u and returns the new record.
func (db *DB) UpdateCandidate(ctx context.Context, id uuid.UUID, u CandidateUpdate) (*Candidate, error) {
	var sets []string
	var args []any
	i := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.Email != nil {
		set("email", *u.Email)
	}
	if u.Phone != nil {
		set("phone", *u.Phone)
	}
	if u.Status != nil {
		set("status", string(*u.Status))
	}
	if u.Notes != nil {
		set("notes", *u.Notes)
	}
	if len(sets) == 0 {
		return db.GetCandidate(ctx, id)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), i, candidateColumns)
	args = append(args, id)

	c, err := scanCandidate(db.connection.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkEmailed moves a candidate to the emailed status and records when.
func (db *DB) MarkEmailed(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET status = $1, email_sent_at = $2, updated_at = NOW() WHERE id = $3`,
		string(StatusEmailed), at, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReconcileScan loads the full candidate set, asks plan for a changeset and
// applies it, all in one transaction. A transaction-scoped advisory lock keeps
// two scans from interleaving.
func (db *DB) ReconcileScan(ctx context.Context, plan func(current []Candidate) Changeset) (Changeset, error) {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return Changeset{}, fmt.Errorf("begin reconcile: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(scanLockKey)); err != nil {
		return Changeset{}, fmt.Errorf("acquire scan lock: %w", err)
	}

	current, err := queryCandidates(ctx, tx, `SELECT `+candidateColumns+` FROM candidates`)
	if err != nil {
		return Changeset{}, fmt.Errorf("load candidates: %w", err)
	}

	changes := plan(current)
	if err := applyChangeset(ctx, tx, changes); err != nil {
		return Changeset{}, err
	}

	if err := tx.Commit(); err != nil {
		return Changeset{}, fmt.Errorf("commit reconcile: %w", err)
	}
	return changes, nil
}

func applyChangeset(ctx context.Context, tx *sql.Tx, changes Changeset) error {
	if len(changes.Delete) > 0 {
		ids := make([]string, 0, len(changes.Delete))
		for _, c := range changes.Delete {
			ids = append(ids, c.ID.String())
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE id = ANY($1::uuid[])`, pq.Array(ids)); err != nil {
			return fmt.Errorf("delete stale candidates: %w", err)
		}
	}

	for _, c := range changes.Insert {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO candidates (id, name, email, phone, source_id, status, notes, email_sent_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (source_id) DO UPDATE
			  SET name = EXCLUDED.name,
			      email = EXCLUDED.email,
			      phone = EXCLUDED.phone,
			      updated_at = EXCLUDED.updated_at`,
			c.ID, c.Name, c.Email, c.Phone, c.SourceID, string(c.Status), c.Notes, c.EmailSentAt, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert candidate %s: %w", c.SourceID, err)
		}
	}

	for _, c := range changes.Update {
		_, err := tx.ExecContext(ctx,
			`UPDATE candidates SET name = $1, email = $2, phone = $3, updated_at = $4 WHERE source_id = $5`,
			c.Name, c.Email, c.Phone, c.UpdatedAt, c.SourceID,
		)
		if err != nil {
			return fmt.Errorf("update candidate %s: %w", c.SourceID, err)
		}
	}
	return nil
}
