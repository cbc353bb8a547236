package handler

import (
	"github.com/clinicore/user-system/internal/core/domain"
)

// successResponse is the envelope returned on all 2xx responses.
type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// createAdminRequest carries the full user fields plus the admin role. The
// validate tags are the shape rules; semantic invariants (email uniqueness,
// credential correctness) stay with the core services.
type createAdminRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=255"`
	Role      string `json:"role"       validate:"required,oneof=ADMIN DOCTOR STAFF PATIENT"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6,max=255"`
	Phone     string `json:"phone"      validate:"required,min=7,max=14"`
	Gender    string `json:"gender"     validate:"required,oneof=MALE FEMALE OTHER"`
	Address   string `json:"address"    validate:"required,min=5,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	AdminRole string `json:"admin_role" validate:"required,oneof=SUPER_ADMIN MANAGER DEV"`
}

// --- Response payloads ---

type loginData struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type createAdminData struct {
	User  *domain.User  `json:"user"`
	Admin *domain.Admin `json:"admin"`
}
