package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mhewson/rolematch/pkg/core/matching"
	"github.com/mhewson/rolematch/pkg/core/questions"
	"github.com/mhewson/rolematch/pkg/core/services"
	"github.com/mhewson/rolematch/pkg/db"
)

// skipHintQuestion is the physical ability question; answering it "no"
// lets the frontend skip the follow-up physical questions.
const skipHintQuestion = 1

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"roles":           s.catalog.Len(),
		"active_sessions": s.registry.Active(),
	})
}

func (s *Server) handleStartSession(c *fiber.Ctx) error {
	sessionID := uuid.New().String()

	if err := s.store.CreateSession(c.Context(), sessionID); err != nil {
		s.logger.Error("Failed to create session", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	s.logger.Info("Session started", zap.String("session_id", sessionID))
	return c.JSON(fiber.Map{"session_id": sessionID})
}

type saveAnswerRequest struct {
	SessionID  string          `json:"session_id"`
	QuestionID *int            `json:"question_id"`
	Answer     json.RawMessage `json:"answer"`
}

func (s *Server) handleSaveAnswer(c *fiber.Ctx) error {
	var req saveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.SessionID == "" || req.QuestionID == nil {
		return badRequest(c, "session_id and question_id are required")
	}

	question, err := questions.Get(*req.QuestionID)
	if err != nil {
		return badRequest(c, fmt.Sprintf("unknown question id %d", *req.QuestionID))
	}

	if _, err := s.store.GetSession(c.Context(), req.SessionID); err != nil {
		if errors.Is(err, db.ErrSessionNotFound) {
			return notFound(c, "session not found")
		}
		s.logger.Error("Failed to fetch session", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	answer, err := normalizeAnswer(req.Answer)
	if err != nil {
		return badRequest(c, "answer must be a string or an array of strings")
	}

	record := &db.Answer{
		SessionID:  req.SessionID,
		QuestionID: *req.QuestionID,
		Question:   question.Text,
		Answer:     answer,
	}
	if err := s.store.SaveAnswer(c.Context(), record); err != nil {
		s.logger.Error("Failed to save answer", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	resp := fiber.Map{"status": "saved"}
	if *req.QuestionID == skipHintQuestion && strings.EqualFold(strings.TrimSpace(answer), "no") {
		resp["skip"] = "true"
	}
	return c.JSON(resp)
}

// normalizeAnswer keeps plain strings as-is and re-encodes array answers as
// compact JSON so multi-select answers round-trip through storage.
func normalizeAnswer(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "", nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var selections []string
		if err := json.Unmarshal(raw, &selections); err != nil {
			return "", err
		}
		encoded, err := json.Marshal(selections)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}

	var answer string
	if err := json.Unmarshal(raw, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (s *Server) handleSubmit(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return badRequest(c, "session_id is required")
	}

	result, err := services.SubmitAssessment(c.Context(), s.store, s.catalog, s.scoring, s.logger, req.SessionID)
	if err != nil {
		if errors.Is(err, db.ErrSessionNotFound) {
			return notFound(c, "session not found")
		}
		if errors.Is(err, services.ErrNoAnswers) ||
			errors.Is(err, matching.ErrInvalidResponse) ||
			errors.Is(err, matching.ErrUnknownQuestion) ||
			errors.Is(err, matching.ErrAmbiguousRequirement) {
			return badRequest(c, err.Error())
		}
		s.logger.Error("Failed to submit assessment", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	// The live engine for this session is stale once results are final
	s.registry.Remove(req.SessionID)

	return c.JSON(fiber.Map{
		"session_id":      result.SessionID,
		"results":         result.Results,
		"remaining_roles": result.RemainingCount,
		"eliminated":      result.Eliminated,
	})
}

func (s *Server) handleGetQuestion(c *fiber.Ctx) error {
	var req struct {
		QuestionID *int `json:"question_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.QuestionID == nil {
		return badRequest(c, "question_id is required")
	}

	question, err := questions.Get(*req.QuestionID)
	if err != nil {
		return notFound(c, fmt.Sprintf("unknown question id %d", *req.QuestionID))
	}
	return c.JSON(question)
}

type updateRoleRequest struct {
	SessionID  string          `json:"session_id"`
	QuestionID *int            `json:"question_id"`
	Answer     json.RawMessage `json:"answer"`
}

func (s *Server) handleUpdateRole(c *fiber.Ctx) error {
	var req updateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.SessionID == "" || req.QuestionID == nil {
		return badRequest(c, "session_id and question_id are required")
	}

	answer, err := normalizeAnswer(req.Answer)
	if err != nil {
		return badRequest(c, "answer must be a string or an array of strings")
	}

	if err := s.registry.ProcessAnswer(req.SessionID, *req.QuestionID, answer); err != nil {
		if errors.Is(err, matching.ErrUnknownQuestion) ||
			errors.Is(err, matching.ErrInvalidResponse) ||
			errors.Is(err, matching.ErrAmbiguousRequirement) {
			return badRequest(c, err.Error())
		}
		s.logger.Error("Failed to score answer", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"status": "scored"})
}

func (s *Server) handleGetRoles(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return badRequest(c, "session_id is required")
	}

	n := c.QueryInt("n", matching.DefaultTopMatches)

	results, err := s.registry.TopMatches(sessionID, n)
	if err != nil {
		s.logger.Error("Failed to rank roles", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(results)
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return badRequest(c, "session_id is required")
	}

	if err := s.registry.Reset(req.SessionID); err != nil {
		s.logger.Error("Failed to reset session", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"status": "reset"})
}

func (s *Server) handleRoleLinks(c *fiber.Ctx) error {
	var req struct {
		RoleName string `json:"role_name"`
	}
	if err := c.BodyParser(&req); err != nil || req.RoleName == "" {
		return badRequest(c, "role_name is required")
	}

	if s.links == nil {
		return notFound(c, "role links are not configured")
	}

	roleLinks, ok := s.links.Lookup(req.RoleName)
	if !ok || roleLinks.Express == "" || roleLinks.Description == "" {
		return notFound(c, fmt.Sprintf("no links found for role %q", req.RoleName))
	}
	return c.JSON(roleLinks)
}

func (s *Server) handleUploadMatchData(c *fiber.Ctx) error {
	path, err := s.saveUpload(c)
	if err != nil {
		return err
	}

	if err := s.catalog.Reload(path); err != nil {
		s.logger.Warn("Rejected match data upload", zap.Error(err))
		return badRequest(c, fmt.Sprintf("invalid match data: %v", err))
	}

	// Engines built from the old dataset must not score new answers
	s.registry.Clear()

	s.logger.Info("Match data replaced",
		zap.String("path", path),
		zap.Int("roles", s.catalog.Len()),
	)
	return c.JSON(fiber.Map{
		"status": "uploaded",
		"roles":  s.catalog.Len(),
	})
}

func (s *Server) handleUploadRoleLinks(c *fiber.Ctx) error {
	if s.links == nil {
		return notFound(c, "role links are not configured")
	}

	path, err := s.saveUpload(c)
	if err != nil {
		return err
	}

	if err := s.links.Reload(path); err != nil {
		s.logger.Warn("Rejected role links upload", zap.Error(err))
		return badRequest(c, fmt.Sprintf("invalid role links: %v", err))
	}

	s.logger.Info("Role links replaced",
		zap.String("path", path),
		zap.Int("roles", s.links.Len()),
	)
	return c.JSON(fiber.Map{
		"status": "uploaded",
		"roles":  s.links.Len(),
	})
}

// saveUpload writes the request's CSV file into the uploads directory under
// a unique name and returns its path. Errors are fiber errors rendered by
// the app's error handler.
func (s *Server) saveUpload(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "a file upload named 'file' is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" {
		return "", fiber.NewError(fiber.StatusBadRequest, "only .csv files are accepted")
	}

	if err := os.MkdirAll(s.uploadsDir, 0755); err != nil {
		s.logger.Error("Failed to create uploads directory", zap.Error(err))
		return "", fiber.ErrInternalServerError
	}

	base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
	path := filepath.Join(s.uploadsDir, fmt.Sprintf("%s_%s%s", base, uuid.New().String(), ext))

	if err := c.SaveFile(fileHeader, path); err != nil {
		s.logger.Error("Failed to save upload", zap.Error(err))
		return "", fiber.ErrInternalServerError
	}

	return path, nil
}
