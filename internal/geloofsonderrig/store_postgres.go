package geloofsonderrig

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

func (s *PostgresStore) Append(ctx context.Context, b *Betaling) error {
	query := `
		INSERT INTO geloofsonderrig_betalings (id, gemeente_id, leerder_id, jaar, bedrag_sent, betaal_datum, verwysing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.GemeenteID, b.LeerderID, b.Jaar, b.BedragSent, b.BetaalDatum, b.Verwysing, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert betaling: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, gemeenteID uuid.UUID, jaar int) ([]*Betaling, error) {
	query := `
		SELECT id, gemeente_id, leerder_id, jaar, bedrag_sent, betaal_datum, verwysing, created_at
		FROM geloofsonderrig_betalings
		WHERE gemeente_id = $1 AND ($2 = 0 OR jaar = $2)
		ORDER BY betaal_datum DESC
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID, jaar)
	if err != nil {
		return nil, fmt.Errorf("query betalings: %w", err)
	}
	defer rows.Close()

	var out []*Betaling
	for rows.Next() {
		var (
			b         Betaling
			verwysing sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.GemeenteID, &b.LeerderID, &b.Jaar, &b.BedragSent, &b.BetaalDatum, &verwysing, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan betaling: %w", err)
		}
		b.Verwysing = verwysing.String
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate betalings: %w", err)
	}
	return out, nil
}
