package http

import (
	"toolrental-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health  *Handler
	Loans   *LoanHandler
	Fines   *FineHandler
	Kardex  *KardexHandler
	Config  *ConfigHandler
	Tools   *ToolHandler
	Clients *ClientHandler
}

// RegisterRoutes mounts the API under /api/v1 behind auth. idem guards the
// mutating loan and fine routes.
func RegisterRoutes(e *echo.Echo, h Handlers, auth, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)
	e.GET("/health/ready", h.Health.Ready)

	api := e.Group("/api/v1", auth)
	admin := middleware.RequireRole(middleware.RoleAdmin)

	loans := api.Group("/loans")
	loans.POST("", h.Loans.CreateLoan, idem)
	loans.GET("", h.Loans.ListLoans, admin)
	loans.GET("/my-loans", h.Loans.MyLoans)
	loans.POST("/:id/return", h.Loans.ReturnLoan, admin, idem)
	loans.DELETE("/:id", h.Loans.DeleteLoan, admin)

	fines := api.Group("/fines")
	fines.GET("", h.Fines.ListFines, admin)
	fines.GET("/my-fines", h.Fines.MyFines)
	fines.PUT("/:id/pay", h.Fines.PayFine, admin, idem)

	api.GET("/kardex", h.Kardex.Query, admin)

	cfg := api.Group("/config")
	cfg.GET("/:name", h.Config.GetFee)
	cfg.PUT("/:name", h.Config.SetFee, admin)

	tools := api.Group("/tools")
	tools.GET("", h.Tools.ListTools)
	tools.GET("/:id", h.Tools.GetTool)
	tools.POST("", h.Tools.RegisterTool, admin)
	tools.DELETE("/:id", h.Tools.RetireTool, admin)

	clients := api.Group("/clients")
	clients.GET("/me", h.Clients.Me)
	clients.GET("", h.Clients.ListClients, admin)
	clients.POST("", h.Clients.CreateClient, admin)
	clients.GET("/:id", h.Clients.GetClient, admin)
}
