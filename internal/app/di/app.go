package di

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"careerinn/internal/app/router"
	aimentorhandler "careerinn/internal/feature/aimentor/transport/handler"
	aimentorusecase "careerinn/internal/feature/aimentor/usecase"
	authadapters "careerinn/internal/feature/auth/adapters"
	authhandler "careerinn/internal/feature/auth/transport/handler"
	authusecase "careerinn/internal/feature/auth/usecase"
	directoryadapters "careerinn/internal/feature/directory/adapters"
	directoryhandler "careerinn/internal/feature/directory/transport/handler"
	directoryusecase "careerinn/internal/feature/directory/usecase"
	entitlementadapters "careerinn/internal/feature/entitlement/adapters"
	entitlementhandler "careerinn/internal/feature/entitlement/transport/handler"
	entitlementusecase "careerinn/internal/feature/entitlement/usecase"
	homehandler "careerinn/internal/feature/home/transport/handler"
	profileadapters "careerinn/internal/feature/profile/adapters"
	profilehandler "careerinn/internal/feature/profile/transport/handler"
	profileusecase "careerinn/internal/feature/profile/usecase"
	"careerinn/internal/platform/cache"
	"careerinn/internal/platform/config"
	healthhandler "careerinn/internal/platform/http/handler"
	jwtmw "careerinn/internal/platform/jwt"
)

// NewApp wires repositories, usecases and handlers into a ready router.
// rdb may be nil, in which case sessions live in the database.
func NewApp(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := NewSessionRepository(rdb, db, cfg.SessionTTL)
	subscriptionRepo := entitlementadapters.NewSubscriptionGorm(db)
	usageRepo := entitlementadapters.NewAiUsageGorm(db)
	profileRepo := profileadapters.NewProfileGorm(db)
	contentRepo := cache.NewCachingContentRepository(rdb, cfg.ContentCacheTTL, directoryadapters.NewContentGorm(db), "content")
	uploads, err := directoryadapters.NewDiskStore(cfg.UploadDir, "/uploads")
	if err != nil {
		return nil, err
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, cfg.SessionTTL)
	entitlementUC := entitlementusecase.NewEntitlementUsecase(subscriptionRepo, usageRepo)
	mentorUC := aimentorusecase.NewMentorUsecase(NewCompletionProvider(ctx, cfg.AI), entitlementUC, sessionRepo)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	directoryUC := directoryusecase.NewDirectoryUsecase(contentRepo)

	// Handler
	tokens := jwtmw.NewGenerator(cfg.SecretKey, cfg.SessionTTL)
	cookie := jwtmw.Cookie{Name: cfg.SessionCookieName, MaxAge: cfg.SessionTTL, Secure: cfg.CookieSecure}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	checks := map[string]healthhandler.Pinger{"database": sqlDB}
	if rdb != nil {
		checks["redis"] = healthhandler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	return router.NewRouter(router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC, tokens, cookie),
		Home:        homehandler.NewHomeHandler(entitlementUC),
		Profile:     profilehandler.NewProfileHandler(profileUC, entitlementUC),
		Subscribe:   entitlementhandler.NewSubscribeHandler(entitlementUC),
		Chatbot:     aimentorhandler.NewChatbotHandler(mentorUC),
		Directory:   directoryhandler.NewDirectoryHandler(directoryUC, entitlementUC, uploads, cfg.MaxUploadBytes),
		Health:      healthhandler.NewHealth(checks),
		LoadSession: jwtmw.LoadSession(tokens, authUC, cookie),
		UploadDir:   cfg.UploadDir,
	}), nil
}
