package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dashboard"
	"github.com/tu-usuario/crm-pro/internal/application/screen"
	"github.com/tu-usuario/crm-pro/internal/application/session"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/gateway"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Leads         *screen.UseCase[entity.Lead, entity.LeadDraft]
	Contacts      *screen.UseCase[entity.Contact, entity.ContactDraft]
	Accounts      *screen.UseCase[entity.Account, entity.AccountDraft]
	Opportunities *screen.UseCase[entity.Opportunity, entity.OpportunityDraft]
	Activities    *screen.UseCase[entity.Activity, entity.ActivityDraft]
	Notes         *screen.UseCase[entity.Note, entity.NoteDraft]
	Dashboard     *dashboard.UseCase
	Users         gateway.Users
	Auth          gateway.Auth
	Sessions      *session.Store
	CookieName    string
	CookieSecure  bool
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth, deps.Sessions, deps.CookieName, deps.CookieSecure)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión vigente)
	protected := api.Group("/", SessionMiddleware(deps.Sessions, deps.CookieName))
	protected.Get("/auth/me", authHandler.Me)

	// Pantallas CRM (protegido)
	NewScreenHandler(deps.Leads).Register(protected.Group("/leads"))
	NewScreenHandler(deps.Contacts).Register(protected.Group("/contacts"))
	NewScreenHandler(deps.Accounts).Register(protected.Group("/accounts"))
	NewScreenHandler(deps.Opportunities).Register(protected.Group("/opportunities"))
	NewScreenHandler(deps.Activities).Register(protected.Group("/activities"))
	NewScreenHandler(deps.Notes).Register(protected.Group("/notes"))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Users (protegido, solo ROLE_ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.Users)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)
}
