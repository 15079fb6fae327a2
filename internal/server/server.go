// Package server exposes the assessment flow over HTTP: session lifecycle,
// answer capture, live role scoring, and admin dataset management.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/mhewson/rolematch/pkg/core/services"
	"github.com/mhewson/rolematch/pkg/db"
	"github.com/mhewson/rolematch/pkg/links"
	"github.com/mhewson/rolematch/pkg/roles"
)

// Options configures a Server
type Options struct {
	Store      db.SessionStore
	Catalog    *roles.Catalog
	Links      *links.Store
	Scoring    services.ScoringOptions
	UploadsDir string

	// AdminToken is the shared secret for /api/admin-login. Empty disables
	// admin endpoints.
	AdminToken string
}

// Server wires the HTTP handlers to storage, the role catalog, and the
// per-session scoring registry
type Server struct {
	app        *fiber.App
	logger     *zap.Logger
	store      db.SessionStore
	catalog    *roles.Catalog
	links      *links.Store
	registry   *services.EngineRegistry
	admin      *adminSessions
	scoring    services.ScoringOptions
	uploadsDir string
}

// New builds the fiber app with all routes registered
func New(logger *zap.Logger, opts Options) *Server {
	s := &Server{
		logger:     logger,
		store:      opts.Store,
		catalog:    opts.Catalog,
		links:      opts.Links,
		registry:   services.NewEngineRegistry(opts.Catalog, opts.Scoring),
		admin:      newAdminSessions(opts.AdminToken),
		scoring:    opts.Scoring,
		uploadsDir: opts.UploadsDir,
	}

	app := fiber.New(fiber.Config{
		AppName:      "Role Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(s.accessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Token",
	}))

	api := app.Group("/api")

	api.Get("/health", s.handleHealth)

	// Assessment flow
	api.Post("/start-session", s.handleStartSession)
	api.Post("/save-answer", s.handleSaveAnswer)
	api.Post("/submit", s.handleSubmit)
	api.Post("/get-question", s.handleGetQuestion)

	// Live scoring
	api.Post("/update-role", s.handleUpdateRole)
	api.Get("/get-roles", s.handleGetRoles)
	api.Post("/reset", s.handleReset)

	// Role metadata
	api.Post("/role-links", s.handleRoleLinks)

	// Admin
	api.Post("/admin-login", s.handleAdminLogin)
	api.Post("/upload-match-data", s.requireAdmin, s.handleUploadMatchData)
	api.Post("/upload-role-links", s.requireAdmin, s.handleUploadRoleLinks)

	s.app = app
	return s
}

// App returns the underlying fiber app, used by tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the given address and blocks until shutdown
func (s *Server) Listen(addr string) error {
	s.logger.Info("HTTP server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// accessLog logs one line per request through the configured zap logger
func (s *Server) accessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		s.logger.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// errorHandler renders unhandled errors as JSON
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
