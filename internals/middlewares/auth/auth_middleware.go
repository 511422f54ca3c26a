// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"bookswap_backend/internals/configs"
	helper "bookswap_backend/internals/helpers"
)

// AuthMiddleware guards bearer-token routes. Missing token answers 401,
// anything wrong with the token itself answers 403 (same split as the old
// backend). On success the decoded identity lands in c.Locals as
// "user_id" / "user_email".
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid token")
		}

		// Tokens issued by the old backend carry no exp; only reject when
		// an exp is present and in the past.
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid token")
		}
		c.Locals("user_id", userID.String())
		if email, ok := claims["email"].(string); ok {
			c.Locals("user_email", email)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"]
	if !ok {
		return nil
	}
	expFloat, ok := exp.(float64)
	if !ok {
		return fmt.Errorf("invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiresAt.Add(leeway)) {
		return fmt.Errorf("token expired at %s", expiresAt)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	idStr, ok := claims["id"].(string)
	if !ok || idStr == "" {
		return uuid.Nil, fmt.Errorf("missing id claim")
	}
	return uuid.Parse(idStr)
}
