package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/auth"
	appreport "github.com/ABShowcase/architectural-showcase-portal/internal/application/report"
	appsubmission "github.com/ABShowcase/architectural-showcase-portal/internal/application/submission"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	SubmissionUC *appsubmission.UseCase
	ReportUC     *appreport.UseCase
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catalogues (public; the form renders them before sign-in)
	api.Get("/catalogues", Catalogues)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Submissions (entrant-facing)
	submissions := protected.Group("/submissions")
	submissionHandler := NewSubmissionHandler(deps.SubmissionUC)
	submissions.Get("/current", submissionHandler.Current)
	submissions.Put("/:id", submissionHandler.Update)
	submissions.Get("/:id/save-status", submissionHandler.SaveStatus)
	submissions.Post("/:id/complete", submissionHandler.Complete)

	// Admin (token must carry the admin flag)
	admin := protected.Group("/admin", AdminMiddleware())
	adminHandler := NewAdminHandler(deps.ReportUC)
	admin.Get("/submissions", adminHandler.ListSubmissions)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/reports/summary", adminHandler.ReportSummary)
	admin.Get("/export-excel", adminHandler.ExportSubmissions)
	admin.Get("/export-cumulative-report", adminHandler.ExportCumulativeReport)
}
