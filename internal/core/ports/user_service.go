package ports

import (
	"context"

	"github.com/clinicore/user-system/internal/core/domain"
)

// CreateAdminInput carries the shape-validated payload for admin
// provisioning. BirthDate is a date-only string (2006-01-02); the service
// normalizes it to a timestamp before persistence.
type CreateAdminInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Gender    domain.Gender
	Address   string
	BirthDate string
	Role      domain.Role
	AdminRole domain.AdminRole
}

// UserService exposes user listing and admin provisioning.
type UserService interface {
	ListUsers() string
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.User, *domain.Admin, error)
}
