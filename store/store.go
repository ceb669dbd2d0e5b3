// Package store defines the repositories backing the user directory and
// the transaction ledger, with an in-memory and a MongoDB
// implementation. Handlers receive repositories by injection; there are
// no package-level collections.
package store

import (
	"context"
	"errors"

	"unitrade/models"
)

// Sentinel errors shared by all implementations.
var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TransactionRepository is an append-only ledger. Records are immutable
// once created and a Create is visible to every subsequent ListByUser.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// ListByUser returns the user's transactions sorted by date,
	// most recent first. An unknown user yields an empty list.
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}
