package kennisgewing

import (
	"context"
	"database/sql"
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

func (s *PostgresStore) Append(ctx context.Context, k *Kennisgewing) error {
	query := `
		INSERT INTO notifications (id, gemeente_id, title, body, type, priority, target_audience, target_wyk_id, sent_by, sent_by_naam, eligible_subscriptions, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	var sentBy *uuid.UUID
	if k.SentBy != uuid.Nil {
		sentBy = &k.SentBy
	}
	_, err := s.db.ExecContext(ctx, query,
		k.ID, k.GemeenteID, k.Title, k.Body, k.Tipe, k.Priority,
		string(k.TargetAudience), k.TargetWykID, sentBy, k.SentByNaam,
		k.EligibleSubscriptions, k.SentAt,
	)
	if err != nil {
		return fmt.Errorf("insert kennisgewing: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, gemeenteID uuid.UUID, limit int) ([]*Kennisgewing, error) {
	query := `
		SELECT id, gemeente_id, title, body, type, priority, target_audience, target_wyk_id, sent_by, sent_by_naam, eligible_subscriptions, sent_at
		FROM notifications
		WHERE gemeente_id = $1
		ORDER BY sent_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, gemeenteID, limit)
	if err != nil {
		return nil, fmt.Errorf("query kennisgewings: %w", err)
	}
	defer rows.Close()

	var out []*Kennisgewing
	for rows.Next() {
		var (
			k      Kennisgewing
			sentBy *uuid.UUID
			naam   sql.NullString
		)
		if err := rows.Scan(&k.ID, &k.GemeenteID, &k.Title, &k.Body, &k.Tipe, &k.Priority, &k.TargetAudience, &k.TargetWykID, &sentBy, &naam, &k.EligibleSubscriptions, &k.SentAt); err != nil {
			return nil, fmt.Errorf("scan kennisgewing: %w", err)
		}
		if sentBy != nil {
			k.SentBy = *sentBy
		}
		k.SentByNaam = naam.String
		out = append(out, &k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kennisgewings: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kennisgewing: %w", err)
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
