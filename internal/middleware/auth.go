package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
)

const sessionKey = "session"

// SessionResolver turns a verified token into a live session.
type SessionResolver interface {
	SessionFromToken(token *jwt.Token) (*services.Session, error)
}

// APISession guards JSON routes. Tokens come from the Authorization header or
// the session cookie; failures answer 401 JSON.
func APISession(cfg *config.Config, resolver SessionResolver) fiber.Handler {
	return sessionRequired(cfg, resolver, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Unauthorized: invalid or expired session",
		})
	})
}

// PageSession guards HTML pages and sends anonymous visitors to the login page.
func PageSession(cfg *config.Config, resolver SessionResolver) fiber.Handler {
	return sessionRequired(cfg, resolver, func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusSeeOther)
	})
}

func sessionRequired(cfg *config.Config, resolver SessionResolver, deny fiber.Handler) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		TokenLookup: "header:Authorization,cookie:" + cfg.SessionCookie,
		AuthScheme:  "Bearer",
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return deny(c)
			}
			session, err := resolver.SessionFromToken(token)
			if err != nil {
				return deny(c)
			}
			c.Locals(sessionKey, session)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return deny(c)
		},
	})
}

// CurrentSession returns the session stored by the session middleware, or nil.
func CurrentSession(c *fiber.Ctx) *services.Session {
	if s, ok := c.Locals(sessionKey).(*services.Session); ok {
		return s
	}
	return nil
}
