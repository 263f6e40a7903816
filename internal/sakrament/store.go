package sakrament

import (
	"context"

	"github.com/google/uuid"
)

// Store persists children and their journal entries together; a journal
// entry never outlives its child.
type Store interface {
	CreateKind(ctx context.Context, k *Kind) error
	FindKind(ctx context.Context, id uuid.UUID) (*Kind, error)
	ListKinders(ctx context.Context, gemeenteID uuid.UUID) ([]*Kind, error)
	UpdateKind(ctx context.Context, k *Kind) error
	// DeleteKind removes the child and all its journal entries.
	DeleteKind(ctx context.Context, id uuid.UUID) error

	AddJoernaal(ctx context.Context, j *JoernaalInskrywing) error
	ListJoernaal(ctx context.Context, kindID uuid.UUID) ([]*JoernaalInskrywing, error)
	DeleteJoernaal(ctx context.Context, id uuid.UUID) error
}
