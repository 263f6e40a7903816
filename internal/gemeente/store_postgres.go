package gemeente

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

func (s *PostgresStore) Create(ctx context.Context, g *Gemeente) error {
	query := `
		INSERT INTO gemeentes (id, naam, adres, telefoon, epos, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		g.ID, g.Naam, g.Adres, g.Telefoon, g.Epos, string(g.Status), g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gemeente: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Gemeente, error) {
	query := `
		SELECT id, naam, adres, telefoon, epos, status, created_at, updated_at
		FROM gemeentes
		WHERE id = $1
	`
	g, err := scanGemeente(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query gemeente: %w", err)
	}
	return g, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Gemeente, error) {
	query := `
		SELECT id, naam, adres, telefoon, epos, status, created_at, updated_at
		FROM gemeentes
		ORDER BY lower(naam)
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query gemeentes: %w", err)
	}
	defer rows.Close()

	var out []*Gemeente
	for rows.Next() {
		g, err := scanGemeente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gemeente: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gemeentes: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, g *Gemeente) error {
	query := `
		UPDATE gemeentes
		SET naam = $2, adres = $3, telefoon = $4, epos = $5, status = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		g.ID, g.Naam, g.Adres, g.Telefoon, g.Epos, string(g.Status), g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update gemeente: %w", err)
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

func (s *PostgresStore) SaveBank(ctx context.Context, b *Bankbesonderhede) error {
	query := `
		INSERT INTO gemeente_bankbesonderhede (gemeente_id, bank_naam, rekening_naam, rekening_nommer, tak_kode, verwysing, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (gemeente_id) DO UPDATE
		SET bank_naam = EXCLUDED.bank_naam,
		    rekening_naam = EXCLUDED.rekening_naam,
		    rekening_nommer = EXCLUDED.rekening_nommer,
		    tak_kode = EXCLUDED.tak_kode,
		    verwysing = EXCLUDED.verwysing,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		b.GemeenteID, b.BankNaam, b.RekeningNaam, b.RekeningNommer, b.TakKode, b.Verwysing, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bankbesonderhede: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBank(ctx context.Context, gemeenteID uuid.UUID) (*Bankbesonderhede, error) {
	query := `
		SELECT gemeente_id, bank_naam, rekening_naam, rekening_nommer, tak_kode, verwysing, updated_at
		FROM gemeente_bankbesonderhede
		WHERE gemeente_id = $1
	`
	var (
		b         Bankbesonderhede
		verwysing sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, gemeenteID).Scan(
		&b.GemeenteID, &b.BankNaam, &b.RekeningNaam, &b.RekeningNommer, &b.TakKode, &verwysing, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query bankbesonderhede: %w", err)
	}
	b.Verwysing = verwysing.String
	return &b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGemeente(row rowScanner) (*Gemeente, error) {
	var (
		g                     Gemeente
		adres, telefoon, epos sql.NullString
		status                string
	)
	err := row.Scan(&g.ID, &g.Naam, &adres, &telefoon, &epos, &status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.Adres = adres.String
	g.Telefoon = telefoon.String
	g.Epos = epos.String
	g.Status = Status(status)
	return &g, nil
}
