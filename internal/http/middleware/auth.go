package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/service"
)

// ClaimsLocalKey is the fiber locals key holding *service.Claims.
const ClaimsLocalKey = "claims"

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(token string) (*service.Claims, error)
}

// Auth rejects requests without a valid "Authorization: Bearer" token and
// stores the token claims for downstream handlers.
func Auth(parser TokenParser, onError fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return onError(c)
		}
		claims, err := parser.ParseToken(token)
		if err != nil {
			return onError(c)
		}
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by Auth, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *service.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*service.Claims)
	return claims
}
