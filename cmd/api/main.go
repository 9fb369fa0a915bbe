package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ABShowcase/architectural-showcase-portal/docs"
	"github.com/ABShowcase/architectural-showcase-portal/internal/application/auth"
	appreport "github.com/ABShowcase/architectural-showcase-portal/internal/application/report"
	appsubmission "github.com/ABShowcase/architectural-showcase-portal/internal/application/submission"
	infraexcel "github.com/ABShowcase/architectural-showcase-portal/internal/infrastructure/excel"
	infrapdf "github.com/ABShowcase/architectural-showcase-portal/internal/infrastructure/pdf"
	"github.com/ABShowcase/architectural-showcase-portal/internal/infrastructure/postgres"
	httpRouter "github.com/ABShowcase/architectural-showcase-portal/internal/interfaces/http"
	"github.com/ABShowcase/architectural-showcase-portal/pkg/config"
	"github.com/ABShowcase/architectural-showcase-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	submissionUC := appsubmission.NewUseCase(
		submissionRepo, cfg.Autosave.QuietPeriod(), log.Zerolog(),
	)
	defer submissionUC.Close()

	submissionsExporter := infraexcel.NewSubmissionsExporter()
	reportExporter := infrapdf.NewReportExporter()
	reportUC := appreport.NewUseCase(
		submissionRepo, userRepo,
		submissionsExporter, reportExporter,
		cfg.Admin.TopSuppliers, log.Zerolog(),
	)

	// Keeps the dashboard's warm report copy current between admin requests.
	refresher := appreport.NewRefresher(
		cfg.Admin.RefreshInterval(),
		func(ctx context.Context) error {
			_, err := reportUC.GetCumulativeReport(ctx)
			return err
		},
		log.Zerolog(),
	)
	refresher.Start(ctx)
	defer refresher.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs. The spec is embedded; a
	// FilePath here would panic at boot when the file is missing.
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Architectural Showcase Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SubmissionUC: submissionUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
