package wire

import (
	"uspage/internal/api"
	"uspage/internal/api/handler"
	"uspage/internal/job"
	"uspage/internal/pkg/cron"
	"uspage/internal/repository"
	"uspage/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	themeRepo := repository.NewThemeRepo(db)
	mediaRepo := repository.NewMediaRepo(db)
	landingRepo := repository.NewLandingRepo(db)
	invitationRepo := repository.NewInvitationRepo(db)

	authService := service.NewAuthService(userRepo)
	mediaService := service.NewMediaService(mediaRepo)
	themeService := service.NewThemeService(themeRepo, mediaService)
	landingService := service.NewLandingService(landingRepo, themeRepo, mediaService)
	invitationService := service.NewInvitationService(invitationRepo, mediaService)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		ThemeHandler:      handler.NewThemeHandler(themeService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
		LandingHandler:    handler.NewLandingHandler(landingService),
		InvitationHandler: handler.NewInvitationHandler(invitationService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob(mediaRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
