package sakrament

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

func (s *PostgresStore) CreateKind(ctx context.Context, k *Kind) error {
	query := `
		INSERT INTO jy_is_myne_children (id, gemeente_id, ouer_id, naam, geboortedatum, doop_datum, fase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		k.ID, k.GemeenteID, k.OuerID, k.Naam, k.Geboortedatum, k.DoopDatum, string(k.Fase), k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kind: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindKind(ctx context.Context, id uuid.UUID) (*Kind, error) {
	query := `
		SELECT id, gemeente_id, ouer_id, naam, geboortedatum, doop_datum, fase, created_at, updated_at
		FROM jy_is_myne_children
		WHERE id = $1
	`
	k, err := scanKind(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query kind: %w", err)
	}
	return k, nil
}

func (s *PostgresStore) ListKinders(ctx context.Context, gemeenteID uuid.UUID) ([]*Kind, error) {
	query := `
		SELECT id, gemeente_id, ouer_id, naam, geboortedatum, doop_datum, fase, created_at, updated_at
		FROM jy_is_myne_children
		WHERE gemeente_id = $1
		ORDER BY lower(naam)
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("query kinders: %w", err)
	}
	defer rows.Close()

	var out []*Kind
	for rows.Next() {
		k, err := scanKind(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kind: %w", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kinders: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateKind(ctx context.Context, k *Kind) error {
	query := `
		UPDATE jy_is_myne_children
		SET ouer_id = $2, naam = $3, geboortedatum = $4, doop_datum = $5, fase = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		k.ID, k.OuerID, k.Naam, k.Geboortedatum, k.DoopDatum, string(k.Fase), k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kind: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteKind(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete kind: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jy_is_myne_journal WHERE child_id = $1`, id); err != nil {
		return fmt.Errorf("delete joernaal vir kind: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM jy_is_myne_children WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kind: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete kind: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddJoernaal(ctx context.Context, j *JoernaalInskrywing) error {
	query := `
		INSERT INTO jy_is_myne_journal (id, child_id, gemeente_id, titel, inhoud, foto_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		j.ID, j.KindID, j.GemeenteID, j.Titel, j.Inhoud, j.FotoURL, j.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert joernaal inskrywing: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListJoernaal(ctx context.Context, kindID uuid.UUID) ([]*JoernaalInskrywing, error) {
	query := `
		SELECT id, child_id, gemeente_id, titel, inhoud, foto_url, created_at
		FROM jy_is_myne_journal
		WHERE child_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, kindID)
	if err != nil {
		return nil, fmt.Errorf("query joernaal: %w", err)
	}
	defer rows.Close()

	var out []*JoernaalInskrywing
	for rows.Next() {
		var (
			j    JoernaalInskrywing
			foto sql.NullString
		)
		if err := rows.Scan(&j.ID, &j.KindID, &j.GemeenteID, &j.Titel, &j.Inhoud, &foto, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan joernaal inskrywing: %w", err)
		}
		j.FotoURL = foto.String
		out = append(out, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate joernaal: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) DeleteJoernaal(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jy_is_myne_journal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete joernaal inskrywing: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKind(row rowScanner) (*Kind, error) {
	var (
		k         Kind
		geb, doop sql.NullString
		fase      string
	)
	err := row.Scan(&k.ID, &k.GemeenteID, &k.OuerID, &k.Naam, &geb, &doop, &fase, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	k.Geboortedatum = geb.String
	k.DoopDatum = doop.String
	k.Fase = Fase(fase)
	return &k, nil
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
