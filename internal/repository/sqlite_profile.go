package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/db"
	"github.com/alexanderramin/tianji/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo. Pass a *sql.Tx
// from a unit of work to compose profile writes transactionally.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, gender, birth_year, birth_month, birth_day, birth_hour,
	city, is_lunar, session_data, last_divination, created_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, gender, birth_year, birth_month, birth_day, birth_hour, city, is_lunar, session_data, last_divination, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Gender),
		p.BirthYear,
		p.BirthMonth,
		p.BirthDay,
		p.BirthHour,
		p.City,
		boolToInt(p.IsLunar),
		p.SessionData,
		nullableStr(p.LastDivination),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProfile(row)
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := r.scanProfileFromRows(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Exists(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE id = ?`, id)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("checking profile existence: %w", err)
	}
	return true, nil
}

func (r *SQLiteProfileRepo) UpdateSessionData(ctx context.Context, id, data string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE profiles SET session_data = ? WHERE id = ?`, data, id)
	if err != nil {
		return fmt.Errorf("updating session data: %w", err)
	}
	return requireRow(res, "profile")
}

func (r *SQLiteProfileRepo) LastDivination(ctx context.Context, id string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT last_divination FROM profiles WHERE id = ?`, id)
	var day sql.NullString
	if err := row.Scan(&day); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("profile: %w", ErrNotFound)
		}
		return "", fmt.Errorf("reading last divination: %w", err)
	}
	return day.String, nil
}

func (r *SQLiteProfileRepo) SetLastDivination(ctx context.Context, id, day string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE profiles SET last_divination = ? WHERE id = ?`, day, id)
	if err != nil {
		return fmt.Errorf("setting last divination: %w", err)
	}
	return requireRow(res, "profile")
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// scanProfile scans a single profile row from a *sql.Row.
func (r *SQLiteProfileRepo) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	var genderStr, createdAtStr string
	var isLunar int
	var lastDivination sql.NullString

	err := row.Scan(
		&p.ID, &genderStr,
		&p.BirthYear, &p.BirthMonth, &p.BirthDay, &p.BirthHour,
		&p.City, &isLunar, &p.SessionData, &lastDivination,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Gender = domain.Gender(genderStr)
	p.IsLunar = intToBool(isLunar)
	p.LastDivination = lastDivination.String
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing profile created_at: %w", err)
	}
	return &p, nil
}

// scanProfileFromRows scans a profile from *sql.Rows (for List queries).
func (r *SQLiteProfileRepo) scanProfileFromRows(rows *sql.Rows) (*domain.Profile, error) {
	var p domain.Profile
	var genderStr, createdAtStr string
	var isLunar int
	var lastDivination sql.NullString

	err := rows.Scan(
		&p.ID, &genderStr,
		&p.BirthYear, &p.BirthMonth, &p.BirthDay, &p.BirthHour,
		&p.City, &isLunar, &p.SessionData, &lastDivination,
		&createdAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Gender = domain.Gender(genderStr)
	p.IsLunar = intToBool(isLunar)
	p.LastDivination = lastDivination.String
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing profile created_at: %w", err)
	}
	return &p, nil
}
