package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/db"
	"github.com/alexanderramin/tianji/internal/domain"
)

// SQLiteReadingRepo implements ReadingRepo using a SQLite database.
type SQLiteReadingRepo struct {
	db db.DBTX
}

// NewSQLiteReadingRepo creates a new SQLiteReadingRepo.
func NewSQLiteReadingRepo(conn db.DBTX) *SQLiteReadingRepo {
	return &SQLiteReadingRepo{db: conn}
}

const readingColumns = `id, profile_id, kind, topic, question, content, model, created_at`

func (r *SQLiteReadingRepo) Create(ctx context.Context, reading *domain.Reading) error {
	query := `INSERT INTO readings (id, profile_id, kind, topic, question, content, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		reading.ID,
		reading.ProfileID,
		string(reading.Kind),
		reading.Topic,
		reading.Question,
		reading.Content,
		reading.Model,
		reading.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}
	return nil
}

func (r *SQLiteReadingRepo) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var reading domain.Reading
	var kindStr, createdAtStr string
	err := row.Scan(
		&reading.ID, &reading.ProfileID, &kindStr,
		&reading.Topic, &reading.Question, &reading.Content, &reading.Model,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reading: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reading: %w", err)
	}
	reading.Kind = domain.ReadingKind(kindStr)
	reading.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing reading created_at: %w", err)
	}
	return &reading, nil
}

func (r *SQLiteReadingRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE profile_id = ? ORDER BY created_at DESC`
	args := []any{profileID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing readings: %w", err)
	}
	defer rows.Close()

	var readings []*domain.Reading
	for rows.Next() {
		var reading domain.Reading
		var kindStr, createdAtStr string
		err := rows.Scan(
			&reading.ID, &reading.ProfileID, &kindStr,
			&reading.Topic, &reading.Question, &reading.Content, &reading.Model,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		reading.Kind = domain.ReadingKind(kindStr)
		reading.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing reading created_at: %w", err)
		}
		readings = append(readings, &reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}
	return readings, nil
}

func (r *SQLiteReadingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting reading: %w", err)
	}
	return nil
}
