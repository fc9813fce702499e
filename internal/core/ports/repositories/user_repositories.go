package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// UserRepository wraps persisted user records.
type UserRepository interface {
	// SaveUser inserts a new user. A duplicate email surfaces as
	// apperrors.ErrDuplicate, driven by the store's unique constraint.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound when no user matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns apperrors.ErrNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails looks up an OAuth-created user.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)

	// UpdateUser persists mutable profile fields. Returns
	// apperrors.ErrNotFound if the user is gone, apperrors.ErrDuplicate if
	// the new email collides with another user.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes the user and all their ledger entries in one
	// transaction. Returns apperrors.ErrNotFound if the user is gone.
	DeleteUser(ctx context.Context, userID string) error
}
