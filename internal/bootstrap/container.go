package bootstrap

import (
	"log"

	"github.com/shreyansh1410/aiNotes/internal/cache"
	"github.com/shreyansh1410/aiNotes/internal/config"
	"github.com/shreyansh1410/aiNotes/internal/controller"
	"github.com/shreyansh1410/aiNotes/internal/pkg/logger"
	"github.com/shreyansh1410/aiNotes/internal/pkg/serverutils"
	"github.com/shreyansh1410/aiNotes/internal/repository/unitofwork"
	"github.com/shreyansh1410/aiNotes/internal/service"
	"github.com/shreyansh1410/aiNotes/internal/storage"
	"github.com/shreyansh1410/aiNotes/internal/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	NoteController controller.INoteController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenService := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 2. Optional redis token-verification cache
	var tokenCache *cache.TokenCache
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, token cache disabled: %v", err)
		} else {
			tokenCache = cache.NewTokenCache(redis.NewClient(opt))
		}
	}

	// 3. Blob store for note images
	blobStore, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.App.BaseURL+cfg.Upload.PublicPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload storage: %v", err)
	}

	// 4. Services
	authService := service.NewAuthService(uowFactory, tokenService, sysLogger)
	noteService := service.NewNoteService(uowFactory, blobStore, sysLogger)

	// 5. Controllers
	authMiddleware := serverutils.JwtMiddleware(tokenService, tokenCache)
	authController := controller.NewAuthController(authService, authMiddleware)
	noteController := controller.NewNoteController(noteService, authMiddleware)

	return &Container{
		AuthController: authController,
		NoteController: noteController,
		Logger:         sysLogger,
	}
}
