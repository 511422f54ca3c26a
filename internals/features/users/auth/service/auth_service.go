package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookswap_backend/internals/configs"
	authHelper "bookswap_backend/internals/features/users/auth/helper"
	userDTO "bookswap_backend/internals/features/users/user/dto"
	userModel "bookswap_backend/internals/features/users/user/model"
	helpers "bookswap_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func generateToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func isDuplicateErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ==========================
   REGISTER
========================== */

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()

	if !input.HasAllFields() {
		return helpers.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	yearOfStudy, err := authHelper.ParseYearOfStudy(input.YearOfStudy)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user := userModel.UserModel{
		Name:           input.Name,
		Department:     input.Department,
		RegisterNumber: input.RegisterNumber,
		YearOfStudy:    yearOfStudy,
		Email:          input.Email,
		PasswordHash:   input.Password, // placeholder so Validate sees it set
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Uniqueness pre-checks, same order as the old backend.
	var existing userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Email exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonServerError(c, "register email check", err)
	}
	if err := db.Where("register_number = ?", input.RegisterNumber).First(&existing).Error; err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Register number exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonServerError(c, "register number check", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.PasswordHash = string(passwordHash)

	if err := db.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email exists")
		}
		return helpers.JsonServerError(c, "register create user", err)
	}

	token, err := generateToken(&user)
	if err != nil {
		return helpers.JsonServerError(c, "register sign token", err)
	}

	return helpers.JsonOK(c, fiber.Map{
		"token": token,
		"user":  userDTO.ToUserSummary(&user),
	})
}

/* ==========================
   LOGIN
========================== */

// POST /api/auth/login
// Both failure modes answer the same way so callers cannot probe which
// emails are registered.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input userDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helpers.JsonServerError(c, "login lookup", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := generateToken(&user)
	if err != nil {
		return helpers.JsonServerError(c, "login sign token", err)
	}

	return helpers.JsonOK(c, fiber.Map{
		"token": token,
		"user":  userDTO.ToUserSummary(&user),
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout
// Stateless bearer tokens: nothing to invalidate server-side, the client
// discards its stored token.
func Logout(c *fiber.Ctx) error {
	return helpers.JsonOK(c, fiber.Map{
		"message": "Logged out successfully",
	})
}

/* ==========================
   ME
========================== */

// GET /api/auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.JsonServerError(c, "me lookup", err)
	}

	// PasswordHash is json:"-", the full record is safe to return as-is.
	return c.Status(fiber.StatusOK).JSON(user)
}
