package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/handler"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/middleware"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/metrics"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	creditsHandler *handler.CreditsHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
	memberSessions *session.Service,
	adminSessions *session.AdminSessions,
	prom *metrics.Prometheus,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", prom.Handler())

	api := router.Group("/api")
	{
		api.POST("/auth/callback", authHandler.Callback)

		credits := api.Group("/credits", middleware.MemberAuth(memberSessions, logger))
		{
			credits.GET("/balance", creditsHandler.GetBalance)
			credits.POST("/spend", creditsHandler.Spend)
			credits.GET("/history", creditsHandler.GetHistory)
		}

		api.GET("/actions", middleware.MemberAuth(memberSessions, logger), creditsHandler.GetActions)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			protected := admin.Group("", middleware.AdminAuth(adminSessions))
			{
				protected.POST("/credits/adjust", adminHandler.AdjustCredits)
				protected.GET("/members/:id/credits", adminHandler.GetMemberCredits)
			}
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, allowedOrigins []string, prom *metrics.Prometheus, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(prom.HandlerFunc())
}
