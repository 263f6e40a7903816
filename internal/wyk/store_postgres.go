package wyk

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

func (s *PostgresStore) CreateWyk(ctx context.Context, w *Wyk) error {
	query := `
		INSERT INTO wyke (id, naam, beskrywing, leier_id, gemeente_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		w.ID, w.Naam, w.Beskrywing, w.LeierID, w.GemeenteID, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wyk: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindWyk(ctx context.Context, id uuid.UUID) (*Wyk, error) {
	query := `
		SELECT id, naam, beskrywing, leier_id, gemeente_id, created_at, updated_at
		FROM wyke
		WHERE id = $1
	`
	var (
		w    Wyk
		besk sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.Naam, &besk, &w.LeierID, &w.GemeenteID, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query wyk: %w", err)
	}
	w.Beskrywing = besk.String
	return &w, nil
}

func (s *PostgresStore) ListWyke(ctx context.Context, gemeenteID uuid.UUID) ([]*Wyk, error) {
	query := `
		SELECT id, naam, beskrywing, leier_id, gemeente_id, created_at, updated_at
		FROM wyke
		WHERE gemeente_id = $1
		ORDER BY lower(naam)
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("query wyke: %w", err)
	}
	defer rows.Close()

	var out []*Wyk
	for rows.Next() {
		var (
			w    Wyk
			besk sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.Naam, &besk, &w.LeierID, &w.GemeenteID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wyk: %w", err)
		}
		w.Beskrywing = besk.String
		out = append(out, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wyke: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateWyk(ctx context.Context, w *Wyk) error {
	query := `
		UPDATE wyke
		SET naam = $2, beskrywing = $3, leier_id = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query, w.ID, w.Naam, w.Beskrywing, w.LeierID, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update wyk: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteWyk(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete wyk: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM besoekpunte WHERE wyk_id = $1`, id); err != nil {
		return fmt.Errorf("delete besoekpunte vir wyk: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM wyke WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wyk: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete wyk: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateBesoekpunt(ctx context.Context, b *Besoekpunt) error {
	query := `
		INSERT INTO besoekpunte (id, naam, beskrywing, adres, wyk_id, gemeente_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.Naam, b.Beskrywing, b.Adres, b.WykID, b.GemeenteID, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert besoekpunt: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBesoekpunt(ctx context.Context, id uuid.UUID) (*Besoekpunt, error) {
	query := `
		SELECT id, naam, beskrywing, adres, wyk_id, gemeente_id, created_at, updated_at
		FROM besoekpunte
		WHERE id = $1
	`
	var (
		b           Besoekpunt
		besk, adres sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Naam, &besk, &adres, &b.WykID, &b.GemeenteID, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query besoekpunt: %w", err)
	}
	b.Beskrywing = besk.String
	b.Adres = adres.String
	return &b, nil
}

func (s *PostgresStore) ListBesoekpunte(ctx context.Context, gemeenteID uuid.UUID) ([]*Besoekpunt, error) {
	return s.listBesoekpunte(ctx, `gemeente_id`, gemeenteID)
}

func (s *PostgresStore) ListBesoekpunteVirWyk(ctx context.Context, wykID uuid.UUID) ([]*Besoekpunt, error) {
	return s.listBesoekpunte(ctx, `wyk_id`, wykID)
}

func (s *PostgresStore) listBesoekpunte(ctx context.Context, column string, id uuid.UUID) ([]*Besoekpunt, error) {
	query := fmt.Sprintf(`
		SELECT id, naam, beskrywing, adres, wyk_id, gemeente_id, created_at, updated_at
		FROM besoekpunte
		WHERE %s = $1
		ORDER BY lower(naam)
	`, column)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query besoekpunte: %w", err)
	}
	defer rows.Close()

	var out []*Besoekpunt
	for rows.Next() {
		var (
			b           Besoekpunt
			besk, adres sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Naam, &besk, &adres, &b.WykID, &b.GemeenteID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan besoekpunt: %w", err)
		}
		b.Beskrywing = besk.String
		b.Adres = adres.String
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate besoekpunte: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateBesoekpunt(ctx context.Context, b *Besoekpunt) error {
	query := `
		UPDATE besoekpunte
		SET naam = $2, beskrywing = $3, adres = $4, wyk_id = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query, b.ID, b.Naam, b.Beskrywing, b.Adres, b.WykID, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update besoekpunt: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteBesoekpunt(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM besoekpunte WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete besoekpunt: %w", err)
	}
	return requireRow(res)
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
