package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() UserModel {
	return UserModel{
		Name:           "Anita Kumar",
		Department:     "CSE",
		RegisterNumber: "21CS042",
		YearOfStudy:    3,
		Email:          "anita@college.edu",
		PasswordHash:   "not-a-real-hash",
	}
}

func TestUserModel_Validate(t *testing.T) {
	t.Run("valid user passes and gets default role", func(t *testing.T) {
		u := validUser()
		require.NoError(t, u.Validate())
		assert.Equal(t, "user", u.Role)
	})

	t.Run("missing email fails", func(t *testing.T) {
		u := validUser()
		u.Email = ""
		err := u.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email")
	})

	t.Run("malformed email fails", func(t *testing.T) {
		u := validUser()
		u.Email = "not-an-email"
		require.Error(t, u.Validate())
	})

	t.Run("year of study out of range fails", func(t *testing.T) {
		u := validUser()
		u.YearOfStudy = 9
		require.Error(t, u.Validate())
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		u := validUser()
		u.Role = "admin"
		require.NoError(t, u.Validate())
		assert.Equal(t, "admin", u.Role)
	})
}
