// Package users declares the user store contract and its PostgreSQL and
// in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the persistence contract for user records.
//
// Lookups return common.ErrorNotFound when no record matches. Writes that
// would break login or external id uniqueness return common.ErrorAlreadyExists.
// Implementations do not lock across calls: read-then-write sequences issued
// by callers race, and the last write wins.
type Repository interface {
	// Create stores a new user, assigning ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByExternalID(ctx context.Context, externalID int64) (*models.User, error)

	// SetExternalID overwrites the external id of login; nil unlinks.
	SetExternalID(ctx context.Context, login string, externalID *int64) (*models.User, error)

	// Update overwrites the name and password digest of login.
	Update(ctx context.Context, login, name, passwordHash string) (*models.User, error)
}
