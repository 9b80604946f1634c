package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "toolrental-backend/internal/adapter/http"
	"toolrental-backend/internal/adapter/middleware"
	"toolrental-backend/internal/adapter/repository/gormrepo"
	"toolrental-backend/internal/config"
	"toolrental-backend/internal/infrastructure/cache"
	"toolrental-backend/internal/infrastructure/db"
	clientUsecase "toolrental-backend/internal/usecase/client"
	configUsecase "toolrental-backend/internal/usecase/configuration"
	fineUsecase "toolrental-backend/internal/usecase/fine"
	kardexUsecase "toolrental-backend/internal/usecase/kardex"
	loanUsecase "toolrental-backend/internal/usecase/loan"
	toolUsecase "toolrental-backend/internal/usecase/tool"
	"toolrental-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "toolrental-api"})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open database")
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal().Err(err).Msg("migrate")
		}
	}
	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("open redis")
	}
	defer rdb.Close()

	tx := gormrepo.NewGormUoW(gdb)
	handlers := httpadp.Handlers{
		Health:  httpadp.NewHandler(gdb, rdb),
		Loans:   httpadp.NewLoanHandler(loanUsecase.NewUsecase(tx, fineUsecase.NewEngine(log), log)),
		Fines:   httpadp.NewFineHandler(fineUsecase.NewUsecase(tx, log)),
		Kardex:  httpadp.NewKardexHandler(kardexUsecase.NewUsecase(gormrepo.NewKardexRepository(gdb))),
		Config:  httpadp.NewConfigHandler(configUsecase.NewUsecase(gormrepo.NewConfigRepository(gdb), log)),
		Tools:   httpadp.NewToolHandler(toolUsecase.NewUsecase(tx, log)),
		Clients: httpadp.NewClientHandler(clientUsecase.NewUsecase(tx, log)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.JSONSerializer = httpadp.JSONSerializer{}
	e.HTTPErrorHandler = httpadp.NewHTTPErrorHandler(log)
	e.Use(echomw.Recover(), echomw.RequestID(), echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("toolrental"))
	e.GET("/metrics", echoprometheus.NewHandler())

	httpadp.RegisterRoutes(e, handlers,
		middleware.Auth([]byte(cfg.JWTSecret)),
		middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log),
	)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
