// Package history records tutoring exchanges so past questions and the
// path that answered them can be reviewed later.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Exchange is one recorded question and answer.
type Exchange struct {
	ID        int64     `db:"id" json:"id"`
	Input     string    `db:"input" json:"input"`
	Target    string    `db:"target" json:"target,omitempty"`
	Response  string    `db:"response" json:"response"`
	Source    string    `db:"source" json:"source"`
	Error     string    `db:"error" json:"error,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Repository defines operations for managing recorded exchanges.
type Repository interface {
	Record(ctx context.Context, exchange *Exchange) error
	Recent(ctx context.Context, limit int) ([]Exchange, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Record inserts one exchange and backfills its ID and creation time.
func (r *DBRepository) Record(ctx context.Context, exchange *Exchange) error {
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.NamedExecContext(ctx, `
		INSERT INTO exchanges (input, target, response, source, error, created_at)
		VALUES (:input, :target, :response, :source, :error, :created_at)`,
		exchange,
	)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(exchange) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	exchange.ID = id
	return nil
}

// Recent returns the newest exchanges, at most limit of them.
func (r *DBRepository) Recent(ctx context.Context, limit int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 20
	}

	var exchanges []Exchange
	if err := r.db.SelectContext(ctx, &exchanges,
		"SELECT * FROM exchanges ORDER BY created_at DESC, id DESC LIMIT ?", limit,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(exchanges) > %w", err)
	}
	return exchanges, nil
}
