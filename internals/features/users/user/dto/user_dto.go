// internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"bookswap_backend/internals/features/users/user/model"
)

// ======================================================
// REQUEST
// ======================================================

// RegisterRequest carries the sign-up form. yearOfStudy arrives as a
// string from the client form and is coerced by the service.
type RegisterRequest struct {
	Name           string `json:"name"`
	Department     string `json:"department"`
	RegisterNumber string `json:"registerNumber"`
	YearOfStudy    string `json:"yearOfStudy"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
	r.RegisterNumber = strings.TrimSpace(r.RegisterNumber)
	r.YearOfStudy = strings.TrimSpace(r.YearOfStudy)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// HasAllFields reports whether every required sign-up field is present.
func (r *RegisterRequest) HasAllFields() bool {
	return r.Name != "" &&
		r.Department != "" &&
		r.RegisterNumber != "" &&
		r.YearOfStudy != "" &&
		r.Email != "" &&
		r.Password != ""
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ======================================================
// RESPONSE
// ======================================================

// UserSummary is the public shape returned next to a token.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func ToUserSummary(u *model.UserModel) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
