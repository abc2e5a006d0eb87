package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incubtek-portal/internal/api/http/handlers"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Views          *handlers.ViewsHandler
	Catalog        *handlers.CatalogHandler
	Leads          *handlers.LeadsHandler
	Admin          *handlers.AdminHandler
	Tickets        *handlers.TicketsHandler
	StaffTickets   *handlers.StaffTicketsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
	LeadLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Get)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.Logout)

	app.Get("/views/:view", cfg.AuthMiddleware.Optional, cfg.Views.Resolve)

	catalogGroup := app.Group("/catalog")
	catalogGroup.Get("/services", cfg.Catalog.Services)
	catalogGroup.Get("/needs", cfg.Catalog.Needs)

	limiter := cfg.LeadLimiter
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	app.Post("/leads", limiter, cfg.Leads.Submit)

	staffOnly := []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireStaff()}
	leads := app.Group("/leads", staffOnly...)
	leads.Get("", cfg.Leads.List)
	leads.Patch("/:id/status", cfg.Leads.UpdateStatus)
	leads.Post("/:id/notes", cfg.Leads.AddNote)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/companies", cfg.Admin.ListCompanies)
	admin.Post("/companies", cfg.Admin.CreateCompany)
	admin.Post("/companies/:id/users", cfg.Admin.CreateUser)
	admin.Post("/companies/:id/contracts", cfg.Admin.CreateContract)
	admin.Patch("/users/:id", cfg.Admin.UpdateUser)
	admin.Patch("/contracts/:id", cfg.Admin.UpdateContract)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/:id/messages", auth.RequireAnyRole(), cfg.Tickets.AddMessage)
	client := auth.RequireRole(domain.RoleClient)
	tickets.Post("", client, cfg.Tickets.CreateTicket)
	tickets.Get("", client, cfg.Tickets.ListTickets)
	tickets.Get("/:id", client, cfg.Tickets.GetTicket)

	staff := app.Group("/staff", staffOnly...)
	staff.Get("/tickets", cfg.StaffTickets.ListStaffTickets)
	staff.Get("/tickets/:id", cfg.StaffTickets.GetStaffTicket)
	staff.Get("/tickets/:id/history", cfg.StaffTickets.History)
	staff.Get("/assignees", cfg.StaffTickets.Assignees)
	staff.Patch("/tickets/:id/status", cfg.StaffTickets.UpdateStatus)
	staff.Patch("/tickets/:id/assignee", cfg.StaffTickets.Assign)

	notifications := app.Group("/notifications", staffOnly...)
	notifications.Get("", cfg.Notifications.List)
	notifications.Delete("", cfg.Notifications.Clear)
}
