package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clinicore/user-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "64f1c0ffee0000000000abcd",
		Email: "a@x.com",
		Role:  domain.RoleDoctor,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "64f1c0ffee0000000000abcd" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleDoctor {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected issued-at and expiry claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenService_DefaultLifetime(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != 15*24*time.Hour {
		t.Fatalf("expected 15-day default lifetime, got %v", svc.ttl)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Move the verifier's clock past expiry.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip the first character of the signature segment; the leading bits of
	// the signature are always significant under base64url.
	parts := strings.SplitN(token, ".", 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", strings.Repeat("x", 64)} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("input %q: expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}
