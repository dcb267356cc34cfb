package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	ListByToken(ctx context.Context, token string) ([]*model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// COALESCE on token covers legacy rows imported before the fallback policy.
const contactSelectCols = `id, name, email, subject, message, read, submission_token, COALESCE(token, ''), token_expiry, created_at`

func scanContact(scan func(...any) error) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read,
		&m.SubmissionToken, &m.Token, &m.TokenExpiry, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts a new contacts row and populates msg.ID and msg.CreatedAt from
// the RETURNING clause. A unique violation on submission_token (or token) is
// reported as ErrDuplicate.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, subject, message, read, submission_token, token, token_expiry)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.Read,
		msg.SubmissionToken, msg.Token, msg.TokenExpiry,
	).Scan(&msg.ID, &msg.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// List returns all contact messages, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

// ListByToken returns all contact messages whose stored token exactly equals
// the given value, newest first.
func (r *PgContactRepository) ListByToken(ctx context.Context, token string) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contacts WHERE token = $1 ORDER BY created_at DESC`,
		token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func collectContacts(rows pgx.Rows) ([]*model.ContactMessage, error) {
	var messages []*model.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead sets the read flag on the given message. Marking an already-read
// message is a no-op success; an unknown id returns ErrNotFound.
func (r *PgContactRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE contacts SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the given message. An unknown id returns ErrNotFound, so a
// repeated delete of the same id fails after the first succeeds.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns total / with-token / without-token counts in one round trip.
func (r *PgContactRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	var s model.ContactStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE token IS NOT NULL),
		        COUNT(*) FILTER (WHERE token IS NULL)
		 FROM contacts`,
	).Scan(&s.TotalContacts, &s.ContactsWithToken, &s.ContactsWithoutToken)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
