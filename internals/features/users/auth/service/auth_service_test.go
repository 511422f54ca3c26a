package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookswap_backend/internals/configs"
	userModel "bookswap_backend/internals/features/users/user/model"
)

const testSecret = "test-secret-key-for-auth"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/api/auth/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Post("/api/auth/logout", func(c *fiber.Ctx) error { return Logout(c) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerPayload() map[string]string {
	return map[string]string{
		"name":           "Anita Kumar",
		"department":     "CSE",
		"registerNumber": "21CS042",
		"yearOfStudy":    "3",
		"email":          "anita@college.edu",
		"password":       "password123",
	}
}

func TestGenerateToken_Roundtrip(t *testing.T) {
	configs.JWTSecret = testSecret

	user := userModel.UserModel{ID: uuid.New(), Email: "anita@college.edu"}
	signed, err := generateToken(&user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, user.Email, claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "token should carry an exp claim")
	assert.InDelta(t, time.Now().Add(accessTTLDefault).Unix(), int64(exp), 60)
}

func TestRegister(t *testing.T) {
	configs.JWTSecret = testSecret

	t.Run("missing field answers 400", func(t *testing.T) {
		db, _ := newMockDB(t)
		app := newAuthApp(db)

		payload := registerPayload()
		payload["email"] = ""
		resp := postJSON(t, app, "/api/auth/register", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-numeric year of study answers 400", func(t *testing.T) {
		db, _ := newMockDB(t)
		app := newAuthApp(db)

		payload := registerPayload()
		payload["yearOfStudy"] = "third"
		resp := postJSON(t, app, "/api/auth/register", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email answers 409", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
				AddRow(uuid.New().String(), "anita@college.edu"))

		resp := postJSON(t, app, "/api/auth/register", registerPayload())
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Email exists", body["message"])
	})

	t.Run("duplicate register number answers 409", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"})) // email free
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "register_number"}).
				AddRow(uuid.New().String(), "21CS042"))

		resp := postJSON(t, app, "/api/auth/register", registerPayload())
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Register number exists", body["message"])
	})

	t.Run("success returns token and public user", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)
		newID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

		resp := postJSON(t, app, "/api/auth/register", registerPayload())
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
			User  struct {
				ID    uuid.UUID `json:"id"`
				Name  string    `json:"name"`
				Email string    `json:"email"`
			} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, newID, body.User.ID)
		assert.Equal(t, "Anita Kumar", body.User.Name)
		assert.Equal(t, "anita@college.edu", body.User.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogin(t *testing.T) {
	configs.JWTSecret = testSecret

	t.Run("unknown email answers 401 invalid credentials", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		resp := postJSON(t, app, "/api/auth/login", map[string]string{
			"email": "ghost@college.edu", "password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("wrong password answers the same 401", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)

		hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
		require.NoError(t, err)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
				AddRow(uuid.New().String(), "Anita Kumar", "anita@college.edu", string(hash)))

		resp := postJSON(t, app, "/api/auth/login", map[string]string{
			"email": "anita@college.edu", "password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("correct credentials return a verifiable token", func(t *testing.T) {
		db, mock := newMockDB(t)
		app := newAuthApp(db)
		userID := uuid.New()

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		require.NoError(t, err)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
				AddRow(userID.String(), "Anita Kumar", "anita@college.edu", string(hash)))

		resp := postJSON(t, app, "/api/auth/login", map[string]string{
			"email": "anita@college.edu", "password": "password123",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(body.Token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims["id"])
	})
}

func TestLogout_IsStatelessAcknowledgement(t *testing.T) {
	db, _ := newMockDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Logged out successfully", body["message"])
}
