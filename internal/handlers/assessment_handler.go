package handlers

import (
	"errors"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
	"github.com/Dolonia333/enhanced-games-peptides/internal/services"
	"github.com/Dolonia333/enhanced-games-peptides/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	assessmentService *services.AssessmentService
	protocolService   *services.ProtocolService
}

func NewAssessmentHandler(assessmentService *services.AssessmentService, protocolService *services.ProtocolService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		protocolService:   protocolService,
	}
}

type updateAnswersRequest struct {
	StepKey string                   `json:"step_key"`
	Answers models.AssessmentAnswers `json:"answers"`
}

func (h *AssessmentHandler) CreateSession(c *fiber.Ctx) error {
	session, err := h.assessmentService.Create()
	if err != nil {
		if errors.Is(err, repository.ErrStoreFull) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Too many active assessments, try again later"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
	logger.WithFields(map[string]interface{}{
		"session_id": session.ID,
		"active":     h.assessmentService.ActiveSessions(),
	}).Info("assessment session created")
	return c.Status(fiber.StatusCreated).JSON(h.sessionResponse(session))
}

func (h *AssessmentHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.assessmentService.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}
	return c.JSON(h.sessionResponse(session))
}

func (h *AssessmentHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.assessmentService.Delete(c.Params("id")); err != nil {
		return sessionNotFound(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AssessmentHandler) ListSteps(c *fiber.Ctx) error {
	steps := h.assessmentService.Steps()
	return c.JSON(fiber.Map{
		"steps": steps,
		"total": len(steps),
	})
}

// UpdateAnswers merges a partial answer set into the session. Out-of-bounds
// values are stored anyway and reported back as advisories; only the step
// completion predicates gate navigation.
func (h *AssessmentHandler) UpdateAnswers(c *fiber.Ctx) error {
	var req updateAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StepKey != "" && !h.knownStepKey(req.StepKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown step key"})
	}

	session, err := h.assessmentService.UpdateAnswers(c.Params("id"), req.Answers)
	if err != nil {
		return sessionNotFound(c, err)
	}

	response := h.sessionResponse(session)
	response["advisories"] = services.Advise(req.Answers)
	return c.JSON(response)
}

func (h *AssessmentHandler) Advance(c *fiber.Ctx) error {
	session, moved, err := h.assessmentService.Advance(c.Params("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}

	response := h.sessionResponse(session)
	response["moved"] = moved
	return c.JSON(response)
}

func (h *AssessmentHandler) Retreat(c *fiber.Ctx) error {
	session, err := h.assessmentService.Retreat(c.Params("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}
	return c.JSON(h.sessionResponse(session))
}

// GenerateProtocol produces the report for a session sitting on the review
// step. The engine itself is total; the step guard mirrors the UI, which only
// enables generation from the final screen.
func (h *AssessmentHandler) GenerateProtocol(c *fiber.Ctx) error {
	session, err := h.assessmentService.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}
	if session.CurrentStep != services.StepReview {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Assessment has not reached the review step"})
	}

	report := h.protocolService.Generate(session.Answers)
	logger.WithFields(map[string]interface{}{
		"session_id": session.ID,
		"clearance":  report.SafetyAssessment.MedicalClearance,
	}).Info("protocol generated")

	return c.JSON(fiber.Map{
		"report":      report,
		"report_text": services.RenderReport(report),
	})
}

func (h *AssessmentHandler) sessionResponse(session *models.AssessmentSession) fiber.Map {
	return fiber.Map{
		"session":     session,
		"can_advance": h.assessmentService.CanAdvance(session, session.CurrentStep),
		"total_steps": h.assessmentService.StepCount(),
	}
}

func (h *AssessmentHandler) knownStepKey(key string) bool {
	for _, step := range h.assessmentService.Steps() {
		if step.Key == key {
			return true
		}
	}
	return false
}

func sessionNotFound(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assessment session not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
