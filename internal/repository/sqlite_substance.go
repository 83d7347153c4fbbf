package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/clausius/internal/domain"
)

const substanceColumns = `id, name, triple_t, triple_p, critical_t, critical_p,
	enthalpy_melt, enthalpy_sub, enthalpy_vap, volume_melt,
	antoine_triple_a, antoine_triple_b, antoine_triple_c,
	antoine_critical_a, antoine_critical_b, antoine_critical_c,
	created_at, updated_at`

// SQLiteSubstanceRepo implements SubstanceRepo using a SQLite database.
type SQLiteSubstanceRepo struct {
	db *sql.DB
}

// NewSQLiteSubstanceRepo creates a new SQLiteSubstanceRepo.
func NewSQLiteSubstanceRepo(db *sql.DB) *SQLiteSubstanceRepo {
	return &SQLiteSubstanceRepo{db: db}
}

func (r *SQLiteSubstanceRepo) Create(ctx context.Context, s *domain.Substance) error {
	query := `INSERT INTO substances (` + substanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.TripleT,
		s.TripleP,
		s.CriticalT,
		s.CriticalP,
		s.EnthalpyMelt,
		s.EnthalpySub,
		s.EnthalpyVap,
		s.VolumeMelt,
		s.AntoineTriple.A,
		s.AntoineTriple.B,
		s.AntoineTriple.C,
		s.AntoineCritical.A,
		s.AntoineCritical.B,
		s.AntoineCritical.C,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting substance: %w", err)
	}
	return nil
}

func (r *SQLiteSubstanceRepo) GetByID(ctx context.Context, id string) (*domain.Substance, error) {
	query := `SELECT ` + substanceColumns + ` FROM substances WHERE id = ?`
	return r.scanSubstance(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSubstanceRepo) GetByName(ctx context.Context, name string) (*domain.Substance, error) {
	query := `SELECT ` + substanceColumns + ` FROM substances WHERE name = ? COLLATE NOCASE`
	return r.scanSubstance(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteSubstanceRepo) List(ctx context.Context) ([]*domain.Substance, error) {
	query := `SELECT ` + substanceColumns + ` FROM substances ORDER BY name COLLATE NOCASE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing substances: %w", err)
	}
	defer rows.Close()

	var substances []*domain.Substance
	for rows.Next() {
		s, err := r.scanSubstanceFromRows(rows)
		if err != nil {
			return nil, err
		}
		substances = append(substances, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating substances: %w", err)
	}
	return substances, nil
}

func (r *SQLiteSubstanceRepo) Update(ctx context.Context, s *domain.Substance) error {
	query := `UPDATE substances SET name = ?, triple_t = ?, triple_p = ?,
		critical_t = ?, critical_p = ?,
		enthalpy_melt = ?, enthalpy_sub = ?, enthalpy_vap = ?, volume_melt = ?,
		antoine_triple_a = ?, antoine_triple_b = ?, antoine_triple_c = ?,
		antoine_critical_a = ?, antoine_critical_b = ?, antoine_critical_c = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.TripleT,
		s.TripleP,
		s.CriticalT,
		s.CriticalP,
		s.EnthalpyMelt,
		s.EnthalpySub,
		s.EnthalpyVap,
		s.VolumeMelt,
		s.AntoineTriple.A,
		s.AntoineTriple.B,
		s.AntoineTriple.C,
		s.AntoineCritical.A,
		s.AntoineCritical.B,
		s.AntoineCritical.C,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating substance: %w", err)
	}
	return nil
}

func (r *SQLiteSubstanceRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM substances WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting substance: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSubstanceRepo) scanSubstance(row *sql.Row) (*domain.Substance, error) {
	s, err := scanSubstanceFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("substance not found")
		}
		return nil, fmt.Errorf("scanning substance: %w", err)
	}
	return s, nil
}

func (r *SQLiteSubstanceRepo) scanSubstanceFromRows(rows *sql.Rows) (*domain.Substance, error) {
	s, err := scanSubstanceFields(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning substance row: %w", err)
	}
	return s, nil
}

func scanSubstanceFields(sc scanner) (*domain.Substance, error) {
	var s domain.Substance
	var createdAtStr, updatedAtStr string

	err := sc.Scan(
		&s.ID, &s.Name,
		&s.TripleT, &s.TripleP, &s.CriticalT, &s.CriticalP,
		&s.EnthalpyMelt, &s.EnthalpySub, &s.EnthalpyVap, &s.VolumeMelt,
		&s.AntoineTriple.A, &s.AntoineTriple.B, &s.AntoineTriple.C,
		&s.AntoineCritical.A, &s.AntoineCritical.B, &s.AntoineCritical.C,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &s, nil
}
