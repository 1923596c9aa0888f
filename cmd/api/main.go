package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/auth"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/backend"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/booking"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/calllog"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/config"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/dialog"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/hours"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/httpapi"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/pricing"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/reporting"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/telephony"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/pkg/logger"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/pkg/utils"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local convenience; production injects env directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Backend client doubles as store directory, behavior source, price
	// catalog, and appointment scheduler.
	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIToken, cfg.Backend.Timeout)

	stores := store.NewResolver(api, log)
	behavior := store.NewBehaviorCache(api)
	prices := pricing.NewResolver(api, log)

	events := calllog.NewService(calllog.NewPostgresRepo(db))

	policy := hours.Policy{
		OpenHour:       cfg.Hours.OpenHour,
		CloseHour:      cfg.Hours.CloseHour,
		UTCOffsetHours: cfg.Hours.UTCOffsetHours,
	}
	engine := dialog.NewEngine(prices, policy, calllog.EngineAdapter{Svc: events}, log)

	twilio := telephony.NewTwilioClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	transfer := telephony.NewTransferer(twilio, log)

	webhooks := telephony.Handlers{
		Stores:       stores,
		Behavior:     behavior,
		Engine:       engine,
		Transfer:     transfer,
		Control:      twilio,
		GatherAction: "/webhooks/twilio/gather",
		Redis:        rdb,
		StoreCap:     cfg.Assistant.StoreTurnCap,
	}

	ops := httpapi.Handlers{
		Auth:     authManager,
		Reports:  reporting.NewService(events),
		Booking:  booking.NewService(api, twilio, log),
		Behavior: behavior,
	}

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, webhooks, ops, auth.RequireAccessToken(authManager))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}

	_ = logger.ShutdownFlush(shutdownCtx, 2*time.Second)
}
