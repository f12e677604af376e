package routes

import (
	"context"
	"net/http"

	"bioacoustic-monitor/internal/config"
	"bioacoustic-monitor/internal/delivery/http/handler"
	"bioacoustic-monitor/internal/fleet"
	"bioacoustic-monitor/internal/infrastructure/database/postgres"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/logger"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/device"
	"bioacoustic-monitor/internal/usecase/event"
	"bioacoustic-monitor/internal/usecase/invite"
	"bioacoustic-monitor/internal/usecase/organization"
	"bioacoustic-monitor/internal/usecase/overview"
	"bioacoustic-monitor/internal/usecase/profile"
	"bioacoustic-monitor/internal/usecase/site"

	"github.com/gin-gonic/gin"
)

// Dependencies are the process-wide clients built in main.
type Dependencies struct {
	DB        *postgres.DB
	Hub       *realtime.Hub
	Publisher realtime.Publisher
	Presigner event.Presigner
	Inviter   invite.Inviter
}

func SetupRoutes(ctx context.Context, cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(1 << 20))
	router.Use(middleware.RateLimitMiddleware(ctx, cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	db := deps.DB
	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"message":     "Service is running",
			"subscribers": deps.Hub.Subscribers(),
		})
	})

	orgRepository := postgres.NewOrganizationRepository(db)
	siteRepository := postgres.NewSiteRepository(db)
	buildingRepository := postgres.NewBuildingRepository(db)
	roomRepository := postgres.NewRoomRepository(db)
	deviceRepository := postgres.NewDeviceRepository(db)
	eventRepository := postgres.NewEventRepository(db)
	profileRepository := postgres.NewProfileRepository(db)

	orgHandler := handler.NewOrganizationHandler(organization.NewService(orgRepository, siteRepository))
	siteHandler := handler.NewSiteHandler(site.NewService(siteRepository, buildingRepository, roomRepository, deviceRepository))
	deviceHandler := handler.NewDeviceHandler(device.NewService(deviceRepository, roomRepository, buildingRepository, deps.Publisher))
	eventHandler := handler.NewEventHandler(event.NewService(eventRepository, deps.Presigner))
	overviewHandler := handler.NewOverviewHandler(overview.NewService(orgRepository, siteRepository, deviceRepository, fleet.DefaultPlanRates))
	invitationHandler := handler.NewInvitationHandler(invite.NewService(orgRepository, profileRepository, deps.Inviter, cfg.Server.AppURL))
	profileHandler := handler.NewProfileHandler(profile.NewService(profileRepository))
	realtimeHandler := handler.NewRealtimeHandler(deps.Hub)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, profileRepository)

	views := router.Group("", auth.Navigation())
	handler.NewViewHandler().RegisterRoutes(views)

	v1 := router.Group("/api/v1")
	v1.Use(auth.Required())
	{
		profileHandler.RegisterRoutes(v1)
		orgHandler.RegisterRoutes(v1)
		siteHandler.RegisterRoutes(v1)
		deviceHandler.RegisterRoutes(v1)
		eventHandler.RegisterRoutes(v1)
		realtimeHandler.RegisterRoutes(v1)

		admin := v1.Group("/admin")
		{
			deviceHandler.RegisterAdminRoutes(admin)
			overviewHandler.RegisterAdminRoutes(admin)
			invitationHandler.RegisterAdminRoutes(admin)
		}
	}

	logger.Info("All routes initialized")
	return router
}
