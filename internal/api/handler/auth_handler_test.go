package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/user-system/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (*domain.User, string, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "user-1", Email: email, Role: domain.RoleDoctor}, "signed-token", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" {
		t.Fatalf("unexpected status: %v", resp["status"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["access_token"] != "signed-token" {
		t.Fatalf("unexpected token: %v", data["access_token"])
	}
	user, ok := data["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@x.com" || user["role"] != "DOCTOR" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"wrong12"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			t.Fatalf("service should not be called for invalid payloads")
			return nil, "", nil
		},
	})

	for _, body := range []string{
		`{"email":"not-an-email","password":"secret1"}`,
		`{"email":"a@x.com"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Login(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 error, got %v", body, err)
		}
	}
}
