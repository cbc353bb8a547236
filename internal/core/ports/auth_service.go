package ports

import (
	"context"

	"github.com/clinicore/user-system/internal/core/domain"
)

// AuthService verifies credentials and mints session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
