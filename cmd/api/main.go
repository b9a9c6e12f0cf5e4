package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripnest/vacations-api/internal/api"
	"github.com/tripnest/vacations-api/internal/api/middleware"
	"github.com/tripnest/vacations-api/internal/core/service"
	"github.com/tripnest/vacations-api/internal/infrastructure/config"
	mongodb "github.com/tripnest/vacations-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tripnest/vacations-api/internal/infrastructure/db/redis"
	"github.com/tripnest/vacations-api/internal/token"
	"github.com/tripnest/vacations-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; nothing better than stderr here.
		println(err.Error())
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	banRepo := mongodb.NewBanRepository(db)
	countryRepo := mongodb.NewCountryRepository(db)
	vacationRepo := mongodb.NewVacationRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)

	// --- Gateway ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := token.NewVerifier(cfg.JWTSecret)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	banService := service.NewBanService(banRepo, log)
	authService := service.NewAuthService(userRepo, banService, issuer, throttle, log)
	userService := service.NewUserService(userRepo, log)
	countryService := service.NewCountryService(countryRepo, log)
	vacationService := service.NewVacationService(vacationRepo, countryRepo, likeRepo, log)
	likeService := service.NewLikeService(likeRepo, vacationRepo, log)

	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	e := api.NewRouter(api.Deps{
		Log:       log,
		Gate:      middleware.NewGate(verifier, userRepo, log),
		Auth:      authService,
		Users:     userService,
		Bans:      banService,
		Countries: countryService,
		Vacations: vacationService,
		Likes:     likeService,
		Mongo:     db,
		Redis:     rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Dur("token_ttl", issuer.TTL()).Msg("api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("api stopped")
}
