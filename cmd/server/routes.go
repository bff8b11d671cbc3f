package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"press-kit.backend/internal/interfaces/http/handlers"
	"press-kit.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	teamMemberHandler   *handlers.TeamMemberHandler
	pressReleaseHandler *handlers.PressReleaseHandler
	uploadHandler       *handlers.UploadHandler
	authMiddleware      gin.HandlerFunc
	requireAdmin        gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Team member routes (public read, admin write)
		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", d.teamMemberHandler.List)
			teamMembers.GET("/:id", d.teamMemberHandler.Get)
			teamMembers.POST("", d.authMiddleware, d.requireAdmin, middleware.IdempotencyMiddleware(), d.teamMemberHandler.Create)
			teamMembers.PUT("/:id", d.authMiddleware, d.requireAdmin, d.teamMemberHandler.Update)
			teamMembers.DELETE("/:id", d.authMiddleware, d.requireAdmin, d.teamMemberHandler.Delete)
		}

		// Press release routes (public read sees published only, admin write)
		pressReleases := v1.Group("/press-releases")
		{
			pressReleases.GET("", d.pressReleaseHandler.ListPublic)
			pressReleases.GET("/:id", d.pressReleaseHandler.Get)
			pressReleases.POST("", d.authMiddleware, d.requireAdmin, middleware.IdempotencyMiddleware(), d.pressReleaseHandler.Create)
			pressReleases.PUT("/:id", d.authMiddleware, d.requireAdmin, d.pressReleaseHandler.Update)
			pressReleases.DELETE("/:id", d.authMiddleware, d.requireAdmin, d.pressReleaseHandler.Delete)
		}

		// Upload routes (admin only)
		upload := v1.Group("/upload")
		upload.Use(d.authMiddleware, d.requireAdmin)
		{
			upload.POST("", d.uploadHandler.UploadImage)
			upload.POST("/attachment", d.uploadHandler.UploadAttachment)
		}

		// Admin listing (drafts included)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.requireAdmin)
		{
			admin.GET("/press-releases", d.pressReleaseHandler.ListAdmin)
			admin.GET("/press-releases/:id", d.pressReleaseHandler.GetAdmin)
		}
	}
}
