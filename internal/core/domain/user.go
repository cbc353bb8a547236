package domain

import "time"

// Gender enumerates the accepted gender values on a user record.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Role enumerates the base roles an actor can hold in the system.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RoleStaff   Role = "STAFF"
	RolePatient Role = "PATIENT"
)

// User models an identity record. The password hash never leaves the
// credential-store boundary in API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Gender       Gender    `json:"gender"`
	Address      string    `json:"address"`
	BirthDate    time.Time `json:"birth_date"`
	Role         Role      `json:"role"`
	IsDeleted    bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicView returns a copy of the user safe to serialize in responses.
// The hash field is already tagged json:"-"; clearing the value as well keeps
// it out of any marshalling path that ignores struct tags.
func (u User) PublicView() User {
	u.PasswordHash = ""
	return u
}
