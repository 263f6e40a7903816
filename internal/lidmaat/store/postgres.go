package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/pkg/sentinel"
)

// PostgresStore persists members in the gebruikers table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const lidmaatColumns = `
	id, naam, van, epos, selfoon, rol, wyk_id, besoekpunt_id, gemeente_id,
	adres, geboortedatum, aktief, is_oorlede, notas, wagwoord_hash,
	created_at, updated_at
`

func (s *PostgresStore) Create(ctx context.Context, l *models.Lidmaat) error {
	query := `
		INSERT INTO gebruikers (` + lidmaatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := s.db.ExecContext(ctx, query,
		l.ID, l.Naam, l.Van, nullString(l.Epos), nullString(l.Selfoon), string(l.Rol),
		l.WykID, l.BesoekpuntID, l.GemeenteID,
		nullString(l.Adres), nullString(l.Geboortedatum), l.Aktief, l.IsOorlede,
		nullString(l.Notas), nullString(l.WagwoordHash), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lidmaat: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error) {
	query := `SELECT ` + lidmaatColumns + ` FROM gebruikers WHERE id = $1`
	l, err := scanLidmaat(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query lidmaat: %w", err)
	}
	return l, nil
}

func (s *PostgresStore) ListByGemeente(ctx context.Context, gemeenteID uuid.UUID) ([]*models.Lidmaat, error) {
	query := `
		SELECT ` + lidmaatColumns + `
		FROM gebruikers
		WHERE gemeente_id = $1
		ORDER BY lower(van), lower(naam)
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("query lidmate: %w", err)
	}
	defer rows.Close()

	var out []*models.Lidmaat
	for rows.Next() {
		l, err := scanLidmaat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lidmaat: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lidmate: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, l *models.Lidmaat) error {
	query := `
		UPDATE gebruikers
		SET naam = $2, van = $3, epos = $4, selfoon = $5, rol = $6,
		    wyk_id = $7, besoekpunt_id = $8, adres = $9, geboortedatum = $10,
		    aktief = $11, is_oorlede = $12, notas = $13, wagwoord_hash = $14,
		    updated_at = $15
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		l.ID, l.Naam, l.Van, nullString(l.Epos), nullString(l.Selfoon), string(l.Rol),
		l.WykID, l.BesoekpuntID, nullString(l.Adres), nullString(l.Geboortedatum),
		l.Aktief, l.IsOorlede, nullString(l.Notas), nullString(l.WagwoordHash), l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lidmaat: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gebruikers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lidmaat: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) SetWyk(ctx context.Context, id, wykID uuid.UUID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET wyk_id = $2, updated_at = $3 WHERE id = $1`,
		id, wykID, now,
	)
	if err != nil {
		return fmt.Errorf("set wyk: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) SetBesoekpunt(ctx context.Context, id, besoekpuntID, wykID uuid.UUID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET besoekpunt_id = $2, wyk_id = $3, updated_at = $4 WHERE id = $1`,
		id, besoekpuntID, wykID, now,
	)
	if err != nil {
		return fmt.Errorf("set besoekpunt: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) ClearBesoekpunt(ctx context.Context, id uuid.UUID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET besoekpunt_id = NULL, updated_at = $2 WHERE id = $1`,
		id, now,
	)
	if err != nil {
		return fmt.Errorf("clear besoekpunt: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) ClearToewysing(ctx context.Context, id uuid.UUID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET wyk_id = NULL, besoekpunt_id = NULL, updated_at = $2 WHERE id = $1`,
		id, now,
	)
	if err != nil {
		return fmt.Errorf("clear toewysing: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) ClearWykVerwysings(ctx context.Context, wykID uuid.UUID) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET wyk_id = NULL, besoekpunt_id = NULL, updated_at = now() WHERE wyk_id = $1`,
		wykID,
	)
	if err != nil {
		return 0, fmt.Errorf("clear wyk verwysings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

func (s *PostgresStore) ClearBesoekpuntVerwysings(ctx context.Context, besoekpuntID uuid.UUID) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gebruikers SET besoekpunt_id = NULL, updated_at = now() WHERE besoekpunt_id = $1`,
		besoekpuntID,
	)
	if err != nil {
		return 0, fmt.Errorf("clear besoekpunt verwysings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLidmaat(row rowScanner) (*models.Lidmaat, error) {
	var (
		l                         models.Lidmaat
		epos, selfoon, adres, geb sql.NullString
		notas, wagwoord           sql.NullString
		rol                       string
	)
	err := row.Scan(
		&l.ID, &l.Naam, &l.Van, &epos, &selfoon, &rol, &l.WykID, &l.BesoekpuntID,
		&l.GemeenteID, &adres, &geb, &l.Aktief, &l.IsOorlede, &notas, &wagwoord,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Epos = epos.String
	l.Selfoon = selfoon.String
	l.Rol = models.Rol(rol)
	l.Adres = adres.String
	l.Geboortedatum = geb.String
	l.Notas = notas.String
	l.WagwoordHash = wagwoord.String
	return &l, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
