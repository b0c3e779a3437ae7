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

	"github.com/tu-usuario/crm-pro/internal/application/dashboard"
	"github.com/tu-usuario/crm-pro/internal/application/screen"
	"github.com/tu-usuario/crm-pro/internal/application/session"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/crmapi"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/export"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.CRM.BaseURL).
		Msg("iniciando aplicación")

	client := crmapi.NewClient(cfg.CRM.BaseURL, time.Duration(cfg.CRM.TimeoutSeconds)*time.Second, log)

	screens := screen.Deps{
		Leads:         crmapi.NewLeadGateway(client),
		Contacts:      crmapi.NewContactGateway(client),
		Accounts:      crmapi.NewAccountGateway(client),
		Opportunities: crmapi.NewOpportunityGateway(client),
		Activities:    crmapi.NewActivityGateway(client),
		Notes:         crmapi.NewNoteGateway(client),
		Exporters:     export.NewExporters(),
		Log:           log,
	}

	sessions := session.NewStore(log)
	dashboardUC := dashboard.NewUseCase(crmapi.NewDashboardGateway(client))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Leads:         screen.NewLeadScreen(screens),
		Contacts:      screen.NewContactScreen(screens),
		Accounts:      screen.NewAccountScreen(screens),
		Opportunities: screen.NewOpportunityScreen(screens),
		Activities:    screen.NewActivityScreen(screens),
		Notes:         screen.NewNoteScreen(screens),
		Dashboard:     dashboardUC,
		Users:         crmapi.NewUserGateway(client),
		Auth:          crmapi.NewAuthGateway(client),
		Sessions:      sessions,
		CookieName:    cfg.Session.CookieName,
		CookieSecure:  cfg.Session.Secure,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
