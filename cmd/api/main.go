package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/token"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Channel{},
		&model.Video{},
		&model.Transcript{},
		&model.Idea{},
		&model.Activity{},
		&model.Settings{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	channelRepo := infraRepo.NewChannelGormRepository(gormDB)
	videoRepo := infraRepo.NewVideoGormRepository(gormDB)
	transcriptRepo := infraRepo.NewTranscriptGormRepository(gormDB)
	ideaRepo := infraRepo.NewIdeaGormRepository(gormDB)
	activityRepo := infraRepo.NewActivityGormRepository(gormDB)
	settingsRepo := infraRepo.NewSettingsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//token manager（access/refreshで別シークレット）
	tokens := token.NewManager(cfg.JWTSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, tokens, validator.NewAuthValidator(userRepo))
	channelUC := usecase.NewChannelUsecase(channelRepo, videoRepo, transcriptRepo, ideaRepo, activityRepo)
	videoUC := usecase.NewVideoUsecase(videoRepo, transcriptRepo, channelRepo, txManager)
	transcriptUC := usecase.NewTranscriptUsecase(cfg, transcriptRepo, videoRepo, activityRepo)
	ideaUC := usecase.NewIdeaUsecase(cfg, ideaRepo, videoRepo, activityRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(channelRepo, videoRepo, transcriptRepo, ideaRepo, activityRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)

	//認証ミドルウェア
	guard := middleware.AuthJWT(tokens)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, guard, server.AuthRateLimiter(cfg))

	e := server.New(cfg)
	server.RegisterRoutes(e, authH, guard,
		handler.NewChannelHandler(channelUC),
		handler.NewVideoHandler(videoUC),
		handler.NewTranscriptHandler(transcriptUC),
		handler.NewIdeaHandler(ideaUC),
		handler.NewAnalyticsHandler(analyticsUC),
		handler.NewSettingsHandler(settingsUC),
	)

	if err := server.Start(e, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
