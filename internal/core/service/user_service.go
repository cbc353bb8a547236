package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
)

// birthDateLayout is the accepted date-only input shape.
const birthDateLayout = "2006-01-02"

// UserService implements user listing and admin provisioning.
type UserService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, audit ports.AuditSink, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, audit: audit, log: log}
}

// ListUsers is a placeholder; only its role gating carries behavior.
func (s *UserService) ListUsers() string {
	return "this is users"
}

// CreateAdmin hashes the password, normalizes the birth date to a UTC
// timestamp, and writes the user and admin rows as one atomic unit. On a
// duplicate email nothing is persisted and the duplicated field is reported.
func (s *UserService) CreateAdmin(ctx context.Context, input ports.CreateAdminInput) (*domain.User, *domain.Admin, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	birthDate, err := time.ParseInLocation(birthDateLayout, input.BirthDate, time.UTC)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: birth_date must be %s", domain.ErrBadRequest, birthDateLayout)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Gender:       input.Gender,
		Address:      input.Address,
		BirthDate:    birthDate,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	createdUser, createdAdmin, err := s.repo.CreateAdminWithUser(ctx, user, input.AdminRole)
	if err != nil {
		return nil, nil, err
	}

	if s.audit != nil {
		s.audit.Enqueue(domain.AuditEvent{
			Kind:      domain.AuditAdminCreated,
			Email:     createdUser.Email,
			UserID:    createdUser.ID,
			Timestamp: now,
		})
	}
	s.log.Info().Str("user_id", createdUser.ID).Str("admin_role", string(createdAdmin.AdminRole)).Msg("admin provisioned")

	view := createdUser.PublicView()
	return &view, createdAdmin, nil
}
