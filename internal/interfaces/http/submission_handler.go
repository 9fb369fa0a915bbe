package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	appsubmission "github.com/ABShowcase/architectural-showcase-portal/internal/application/submission"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	domainsub "github.com/ABShowcase/architectural-showcase-portal/internal/domain/submission"
	"github.com/ABShowcase/architectural-showcase-portal/pkg/showcase"
)

// SubmissionHandler handles the entrant-facing draft endpoints.
type SubmissionHandler struct {
	uc *appsubmission.UseCase
}

// NewSubmissionHandler builds the handler.
func NewSubmissionHandler(uc *appsubmission.UseCase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

// Current godoc
// @Summary      Fetch (or lazily create) the caller's submission
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  dto.SubmissionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/submissions/current [get]
func (h *SubmissionHandler) Current(c *fiber.Ctx) error {
	sub, err := h.uc.Current(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromSubmission(sub, showcase.ArchitectSlotRoles))
}

// Update godoc
// @Summary      Apply a batch of edits to the caller's submission
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "submission id"
// @Param        body  body  dto.UpdateSubmissionRequest  true  "edit operations"
// @Success      200   {object}  dto.SubmissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/submissions/{id} [put]
func (h *SubmissionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Edits) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "edits must not be empty"})
	}

	edits := make([]domainsub.Edit, 0, len(in.Edits))
	for _, e := range in.Edits {
		edit, err := e.ToEdit()
		if err != nil {
			return editError(c, err)
		}
		edits = append(edits, edit)
	}

	sub, state, err := h.uc.ApplyEdits(c.Context(), GetUserID(c), c.Params("id"), edits)
	if err != nil {
		return editError(c, err)
	}

	out := dto.FromSubmission(sub, showcase.ArchitectSlotRoles)
	return c.JSON(fiber.Map{
		"submission":  out,
		"save_status": string(state),
	})
}

// SaveStatus godoc
// @Summary      Report the autosave state of the caller's submission
// @Tags         submissions
// @Produce      json
// @Param        id  path  string  true  "submission id"
// @Success      200  {object}  dto.SaveStatusResponse
// @Security     BearerAuth
// @Router       /api/submissions/{id}/save-status [get]
func (h *SubmissionHandler) SaveStatus(c *fiber.Ctx) error {
	state := h.uc.SaveState(GetUserID(c), c.Params("id"))
	return c.JSON(dto.SaveStatusResponse{Status: string(state)})
}

// Complete godoc
// @Summary      Finalize the caller's submission
// @Tags         submissions
// @Produce      json
// @Param        id  path  string  true  "submission id"
// @Success      200  {object}  dto.SubmissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/submissions/{id}/complete [post]
func (h *SubmissionHandler) Complete(c *fiber.Ctx) error {
	sub, err := h.uc.Complete(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "submission not found"})
		}
		if errors.Is(err, domain.ErrPersistence) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "could not persist pending edits, submission not completed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromSubmission(sub, showcase.ArchitectSlotRoles))
}

// editError maps edit-path failures onto HTTP statuses.
func editError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSubmissionLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMISSION_LOCKED", Message: "completed submissions cannot be edited"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "submission not found"})
	case errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
