package main

import (
	"github.com/gin-gonic/gin"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/auth"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/httpapi"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/rbac"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/telephony"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, webhooks telephony.Handlers, ops httpapi.Handlers, authMW gin.HandlerFunc) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Provider webhooks (public).
	// NOTE: These endpoints should be protected by Twilio signature validation in production.
	r.POST("/webhooks/twilio/voice", webhooks.HandleInboundVoice)
	r.POST("/webhooks/twilio/gather", webhooks.HandleGather)

	v1 := r.Group("/v1")

	// AUTH routes (token issuance).
	v1.POST("/auth/login", ops.Login)

	// protected API group
	protected := v1.Group("")
	protected.Use(authMW)
	{
		protected.GET("/me", func(c *gin.Context) {
			uid, _ := auth.UserID(c.Request.Context())
			sid, _ := auth.StoreID(c.Request.Context())
			role, _ := auth.Role(c.Request.Context())
			c.JSON(200, gin.H{"user_id": uid, "store_id": sid, "role": role})
		})

		// REPORTING routes
		reports := protected.Group("/reports", httpapi.RequireStoreAndAnyRole(
			rbac.RoleOwner, rbac.RoleManager, rbac.RoleAnalyst, rbac.RoleSuperAdmin,
		)...)
		{
			reports.GET("/summary", ops.GetReportSummary)
		}

		// BOOKING routes
		bookings := protected.Group("/bookings", httpapi.RequireStoreAndAnyRole(
			rbac.RoleOwner, rbac.RoleManager, rbac.RoleSuperAdmin,
		)...)
		{
			bookings.GET("/slots", ops.ListSlots)
			bookings.POST("/", ops.CreateBooking)
		}

		// ADMIN routes
		// Only owner/super_admin can access admin endpoints by default.
		admin := protected.Group("/admin", httpapi.RequireStoreAndAnyRole(
			rbac.RoleOwner, rbac.RoleSuperAdmin,
		)...)
		{
			admin.GET("/ping", func(c *gin.Context) {
				c.JSON(200, gin.H{"status": "ok"})
			})
			admin.POST("/behavior/invalidate", ops.InvalidateBehavior)
		}
	}
}
