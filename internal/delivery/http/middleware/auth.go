package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/token"
	"github.com/service-directory/internal/pkg/utils"
)

const UserIDKey = "user_id"

// Auth - обязательная аутентификация по Bearer-токену
func Auth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth - аутентификация, если токен прислан; анонимные запросы
// проходят дальше без user id
func OptionalAuth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID returns the authenticated user id, nil for anonymous requests.
func UserID(c *fiber.Ctx) *int64 {
	if id, ok := c.Locals(UserIDKey).(int64); ok {
		return &id
	}
	return nil
}

// MustUserID returns the user id set by the Auth middleware.
func MustUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
