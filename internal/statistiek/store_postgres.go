package statistiek

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, in Inskrywing) error {
	query := `
		INSERT INTO gemeente_statistiek_logs (id, gemeente_id, datum, tipe, rede, lidmaat_id, beskrywing)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var lidmaatID *uuid.UUID
	if in.LidmaatID != uuid.Nil {
		lidmaatID = &in.LidmaatID
	}
	_, err := s.db.ExecContext(ctx, query,
		in.ID, in.GemeenteID, in.Datum, string(in.Tipe), in.Rede, lidmaatID, in.Beskrywing,
	)
	if err != nil {
		return fmt.Errorf("insert statistiek inskrywing: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByGemeente(ctx context.Context, gemeenteID uuid.UUID) ([]Inskrywing, error) {
	query := `
		SELECT id, gemeente_id, datum, tipe, rede, lidmaat_id, beskrywing
		FROM gemeente_statistiek_logs
		WHERE gemeente_id = $1
		ORDER BY datum DESC
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("query statistiek inskrywings: %w", err)
	}
	defer rows.Close()

	var out []Inskrywing
	for rows.Next() {
		var (
			in        Inskrywing
			lidmaatID *uuid.UUID
			besk      sql.NullString
		)
		if err := rows.Scan(&in.ID, &in.GemeenteID, &in.Datum, &in.Tipe, &in.Rede, &lidmaatID, &besk); err != nil {
			return nil, fmt.Errorf("scan statistiek inskrywing: %w", err)
		}
		if lidmaatID != nil {
			in.LidmaatID = *lidmaatID
		}
		in.Beskrywing = besk.String
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statistiek inskrywings: %w", err)
	}
	return out, nil
}
