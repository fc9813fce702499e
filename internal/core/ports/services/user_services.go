package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user data. The access guard
// depends on this to re-resolve token subjects to live records.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// SignUpUser creates a new local user with a hashed password.
	SignUpUser(ctx context.Context, req dto.SignUpRequest) (*domain.User, error)

	// UpdateUser applies a profile patch; password fields are rehashed.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser removes the account and all of its ledger entries.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// CreateOAuthUser finds or creates a user from a validated OAuth identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
