package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	appreport "github.com/ABShowcase/architectural-showcase-portal/internal/application/report"
	"github.com/ABShowcase/architectural-showcase-portal/pkg/showcase"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	uc *appreport.UseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(uc *appreport.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListSubmissions godoc
// @Summary      List every submission with its entrant firm and email
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.AdminSubmissionResponse
// @Security     BearerAuth
// @Router       /api/admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *fiber.Ctx) error {
	owned, err := h.uc.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.AdminSubmissionResponse, 0, len(owned))
	for _, o := range owned {
		out = append(out, dto.FromSubmissionWithOwner(o.Submission, o.Owner, showcase.ArchitectSlotRoles))
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Submission and user counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Security     BearerAuth
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// ReportSummary godoc
// @Summary      Cumulative report over completed submissions
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CumulativeReportDTO
// @Security     BearerAuth
// @Router       /api/admin/reports/summary [get]
func (h *AdminHandler) ReportSummary(c *fiber.Ctx) error {
	rep, err := h.uc.GetCumulativeReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rep)
}

// ExportSubmissions godoc
// @Summary      Download every submission as a spreadsheet
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/admin/export-excel [get]
func (h *AdminHandler) ExportSubmissions(c *fiber.Ctx) error {
	art, err := h.uc.SubmissionsArtifact(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendArtifact(c, art)
}

// ExportCumulativeReport godoc
// @Summary      Download the cumulative report as a PDF
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/admin/export-cumulative-report [get]
func (h *AdminHandler) ExportCumulativeReport(c *fiber.Ctx) error {
	art, err := h.uc.CumulativeArtifact(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendArtifact(c, art)
}

func sendArtifact(c *fiber.Ctx, art *appreport.Artifact) error {
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+art.Filename+`"`)
	return c.Send(art.Data)
}
