package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/views"
)

// Authenticator is the part of the auth service the HTTP layer needs.
type Authenticator interface {
	Login(username, password string) (string, *services.Session, error)
	Logout(token string) error
}

type AuthHandler struct {
	auth Authenticator
	cfg  *config.Config
}

func NewAuthHandler(auth Authenticator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, views.Login(""))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return render(c, fiber.StatusBadRequest, views.Login("Invalid login form"))
	}

	token, session, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("admin login failed", "username", req.Username, "ip", c.IP())
			return render(c, fiber.StatusUnauthorized, views.Login("Invalid username or password"))
		}
		return err
	}

	writeSessionCookie(c, h.cfg, token, session.ExpiresAt)
	slog.Info("admin logged in", "username", session.Username, "session_id", session.ID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout works without a valid session so a stale cookie can always be dropped.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token, ok := readSessionCookie(c, h.cfg); ok {
		if err := h.auth.Logout(token); err != nil && !errors.Is(err, services.ErrInvalidSession) {
			return err
		}
	}
	clearSessionCookie(c, h.cfg)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// EmergencyLogout always succeeds: it drops the cookie, revokes whatever
// session it can parse and renders the standalone exit page.
func (h *AuthHandler) EmergencyLogout(c *fiber.Ctx) error {
	if token, ok := readSessionCookie(c, h.cfg); ok {
		if err := h.auth.Logout(token); err != nil {
			slog.Debug("emergency logout without a valid session", "error", err)
		}
	}
	clearSessionCookie(c, h.cfg)
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set("Clear-Site-Data", `"cookies", "storage"`)
	return render(c, fiber.StatusOK, views.EmergencyLogout())
}
