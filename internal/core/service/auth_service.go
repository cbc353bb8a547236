package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
)

// AuthService implements the login flow: credential lookup, password
// verification, token minting.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, log: log}
}

// Login authenticates the email/password pair and returns the user (hash
// stripped) with a signed session token.
//
// A lookup miss and a password mismatch are distinct internally — they emit
// different audit events — but both return ErrInvalidCredentials, so the
// response cannot be used to probe which emails have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrBadRequest)
	}

	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("login lookup miss")
			s.record(domain.AuditLoginUnknownEmail, email, "")
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("email", email).Msg("login password mismatch")
		s.record(domain.AuditLoginBadPassword, email, user.ID)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.record(domain.AuditLoginSucceeded, email, user.ID)
	view := user.PublicView()
	return &view, token, nil
}

func (s *AuthService) record(kind domain.AuditKind, email, userID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Kind:      kind,
		Email:     email,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
}
