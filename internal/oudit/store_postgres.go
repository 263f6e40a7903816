package oudit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStore persists audit entries in the lidmaat_oudit_logs table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	query := `
		INSERT INTO lidmaat_oudit_logs (
			id, lidmaat_id, gemeente_id, aksie_tipe, beskrywing,
			ou_waarde, nuwe_waarde, gewysig_deur_id, gewysig_deur_naam, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.LidmaatID,
		entry.GemeenteID,
		string(entry.AksieTipe),
		entry.Beskrywing,
		nullString(entry.OuWaarde),
		nullString(entry.NuweWaarde),
		nullUUID(entry.GewysigDeurID),
		nullString(entry.GewysigDeurNaam),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert oudit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]Entry, error) {
	query := `
		SELECT id, lidmaat_id, gemeente_id, aksie_tipe, beskrywing,
		       ou_waarde, nuwe_waarde, gewysig_deur_id, gewysig_deur_naam, created_at
		FROM lidmaat_oudit_logs
		WHERE lidmaat_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, lidmaatID)
	if err != nil {
		return nil, fmt.Errorf("query oudit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry         Entry
			ouWaarde      sql.NullString
			nuweWaarde    sql.NullString
			gewysigDeurID *uuid.UUID
			gewysigNaam   sql.NullString
		)
		err := rows.Scan(
			&entry.ID,
			&entry.LidmaatID,
			&entry.GemeenteID,
			&entry.AksieTipe,
			&entry.Beskrywing,
			&ouWaarde,
			&nuweWaarde,
			&gewysigDeurID,
			&gewysigNaam,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan oudit entry: %w", err)
		}
		entry.OuWaarde = ouWaarde.String
		entry.NuweWaarde = nuweWaarde.String
		if gewysigDeurID != nil {
			entry.GewysigDeurID = *gewysigDeurID
		}
		entry.GewysigDeurNaam = gewysigNaam.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate oudit entries: %w", err)
	}
	return entries, nil
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func nullUUID(value uuid.UUID) *uuid.UUID {
	if value == uuid.Nil {
		return nil
	}
	return &value
}
