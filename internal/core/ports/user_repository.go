package ports

import (
	"context"

	"github.com/clinicore/user-system/internal/core/domain"
)

// UserRepository defines the credential-store interface. It owns password
// hashes; callers strip them before anything leaves the service layer.
type UserRepository interface {
	// FindActiveByEmail returns the user with the given email whose
	// soft-delete flag is unset, or domain.ErrUserNotFound.
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateAdminWithUser inserts the user and its admin extension as a
	// single atomic unit. On a uniqueness violation it returns
	// *domain.DuplicateKeyError and persists nothing.
	CreateAdminWithUser(ctx context.Context, user *domain.User, role domain.AdminRole) (*domain.User, *domain.Admin, error)
}
