package server

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// adminSessions tracks tokens issued by admin-login. Tokens live in memory
// only, so a restart logs every admin out.
type adminSessions struct {
	mu     sync.Mutex
	secret string
	tokens map[string]bool
}

func newAdminSessions(secret string) *adminSessions {
	return &adminSessions{
		secret: secret,
		tokens: make(map[string]bool),
	}
}

// login exchanges the shared secret for a fresh session token. Returns
// false when the secret is wrong or admin access is disabled.
func (a *adminSessions) login(secret string) (string, bool) {
	if a.secret == "" || secret != a.secret {
		return "", false
	}

	token := uuid.New().String()

	a.mu.Lock()
	a.tokens[token] = true
	a.mu.Unlock()

	return token, true
}

// authorized reports whether the token came from a previous login
func (a *adminSessions) authorized(token string) bool {
	if token == "" {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tokens[token]
}

// handleAdminLogin issues an admin session token for the shared secret
func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, ok := s.admin.login(req.Token)
	if !ok {
		s.logger.Warn("Rejected admin login attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid admin token",
		})
	}

	s.logger.Info("Admin login")
	return c.JSON(fiber.Map{
		"admin_token": token,
	})
}

// requireAdmin guards admin-only routes via the X-Admin-Token header
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if !s.admin.authorized(c.Get("X-Admin-Token")) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "admin authorization required",
		})
	}
	return c.Next()
}
