package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"bookswap_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Department     string    `gorm:"size:100;not null" json:"department" validate:"required"`
	RegisterNumber string    `gorm:"size:50;uniqueIndex;not null" json:"registerNumber" validate:"required"`
	YearOfStudy    int       `gorm:"not null" json:"yearOfStudy" validate:"required,gte=1,lte=6"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.DefaultUserRole
	}
}

// Validate checks the record against the field rules above.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns validator output into readable messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
			case "email":
				errorMessages[fieldErr.Field()] = "Invalid email format."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be under " + fieldErr.Param() + " characters."
			case "gte":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + "."
			case "lte":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at most " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Invalid format."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
