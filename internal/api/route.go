package api

import (
	"net/http"

	"uspage/internal/api/middleware"
	"uspage/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.GET("/user", group.AuthHandler.GetUser)
			}
		}

		themeGroup := apiGroup.Group("/themes")
		themeGroup.Use(middleware.AuthMiddleware())
		{
			themeGroup.GET("", group.ThemeHandler.List)
			themeGroup.POST("", group.ThemeHandler.Create)
			themeGroup.GET("/:id", group.ThemeHandler.Get)
			themeGroup.PUT("/:id", group.ThemeHandler.Update)
			themeGroup.DELETE("/:id", group.ThemeHandler.Delete)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.GET("", group.MediaHandler.List)
			mediaGroup.POST("", group.MediaHandler.Upload)
			mediaGroup.DELETE("/:id", group.MediaHandler.Delete)
		}

		landingGroup := apiGroup.Group("/landings")
		{
			// 属主数字 id 与公开 slug 共用一条路由，由可选鉴权区分
			landingGroup.GET("/:id", middleware.AuthOptionalMiddleware(), group.LandingHandler.Show)

			authedGroup := landingGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware())
			{
				authedGroup.GET("", group.LandingHandler.List)
				authedGroup.POST("", group.LandingHandler.Create)
				authedGroup.PUT("/:id", group.LandingHandler.Update)
				authedGroup.DELETE("/:id", group.LandingHandler.Delete)

				authedGroup.POST("/:id/media", group.LandingHandler.AttachMedia)
				authedGroup.DELETE("/:id/media/:media_id", group.LandingHandler.DetachMedia)
				authedGroup.PUT("/:id/media/reorder", group.LandingHandler.ReorderMedia)
			}
		}

		invitationGroup := apiGroup.Group("/invitations")
		{
			invitationGroup.GET("/:id", middleware.AuthOptionalMiddleware(), group.InvitationHandler.Show)

			authedGroup := invitationGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware())
			{
				authedGroup.GET("", group.InvitationHandler.List)
				authedGroup.POST("", group.InvitationHandler.Create)
				authedGroup.PUT("/:id", group.InvitationHandler.Update)
				authedGroup.DELETE("/:id", group.InvitationHandler.Delete)

				authedGroup.POST("/:id/media", group.InvitationHandler.AttachMedia)
				authedGroup.DELETE("/:id/media/:media_id", group.InvitationHandler.DetachMedia)
			}
		}
	}

	return r
}
