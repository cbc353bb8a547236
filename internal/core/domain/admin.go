package domain

import "time"

// AdminRole enumerates the administrative roles an admin record can carry.
type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "SUPER_ADMIN"
	AdminRoleManager    AdminRole = "MANAGER"
	AdminRoleDev        AdminRole = "DEV"
)

// Admin is a role-extension record, one-to-one with a User. An Admin row
// must never exist without its owning User row; both are written in the
// same transaction by the provisioning flow.
type Admin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AdminRole AdminRole `json:"admin_role"`
	CreatedAt time.Time `json:"created_at"`
}
