package verhouding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, v *Verhouding) error {
	query := `
		INSERT INTO lidmaat_verhoudings (id, lidmaat_id, verwante_id, verhouding_tipe, verhouding_beskrywing, gemeente_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		v.ID, v.LidmaatID, v.VerwanteID, string(v.Tipe), v.Beskrywing, v.GemeenteID, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verhouding: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Verhouding, error) {
	query := `
		SELECT id, lidmaat_id, verwante_id, verhouding_tipe, verhouding_beskrywing, gemeente_id, created_at
		FROM lidmaat_verhoudings
		WHERE id = $1
	`
	var (
		v    Verhouding
		besk sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.LidmaatID, &v.VerwanteID, &v.Tipe, &besk, &v.GemeenteID, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query verhouding: %w", err)
	}
	v.Beskrywing = besk.String
	return &v, nil
}

func (s *PostgresStore) ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]*Verhouding, error) {
	query := `
		SELECT id, lidmaat_id, verwante_id, verhouding_tipe, verhouding_beskrywing, gemeente_id, created_at
		FROM lidmaat_verhoudings
		WHERE lidmaat_id = $1 OR verwante_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, lidmaatID)
	if err != nil {
		return nil, fmt.Errorf("query verhoudings: %w", err)
	}
	defer rows.Close()

	var out []*Verhouding
	for rows.Next() {
		var (
			v    Verhouding
			besk sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.LidmaatID, &v.VerwanteID, &v.Tipe, &besk, &v.GemeenteID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan verhouding: %w", err)
		}
		v.Beskrywing = besk.String
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verhoudings: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lidmaat_verhoudings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete verhouding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteForLidmaat(ctx context.Context, lidmaatID uuid.UUID) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM lidmaat_verhoudings WHERE lidmaat_id = $1 OR verwante_id = $1`, lidmaatID)
	if err != nil {
		return 0, fmt.Errorf("delete verhoudings vir lidmaat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
