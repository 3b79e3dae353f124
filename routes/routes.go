package routes

import (
	"github.com/AtharvMirajkar/delivery-management-system/handlers"
	"github.com/AtharvMirajkar/delivery-management-system/middleware"
	"github.com/AtharvMirajkar/delivery-management-system/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.Me)

		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		auth.GET("/partners", handlers.ListPartners)
		auth.GET("/partners/available", handlers.ListAvailablePartners)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/orders", handlers.CreateOrder)
		admin.PUT("/orders/:id/assign", handlers.AssignOrder)
		admin.DELETE("/orders/:id", handlers.DeleteOrder)
	}

	// ── Partner routes ─────────────────────────────────────────────
	partner := r.Group("/api")
	partner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RolePartner))
	{
		partner.PUT("/partners/availability", handlers.UpdateAvailability)
	}
}
