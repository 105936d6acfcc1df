package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dncarrero/videoclub-bot/internal/config"
	"github.com/dncarrero/videoclub-bot/internal/entitlement"
	"github.com/dncarrero/videoclub-bot/internal/handlers"
	"github.com/dncarrero/videoclub-bot/internal/middleware"
	"github.com/dncarrero/videoclub-bot/internal/packages"
	"github.com/dncarrero/videoclub-bot/internal/subscription"
	"github.com/dncarrero/videoclub-bot/store"
)

func main() {
	_ = godotenv.Load("config.env")

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rdb, err := store.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "videoclub")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	snap, err := store.NewSnapshotStore(cfg.DataFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataFile).Msg("failed to load snapshot")
	}
	pending := store.NewRedisPendingStore(rdb, cfg.PendingTTLH)

	httpClient := &http.Client{
		Timeout: 10 * time.Minute,
	}
	pollTimeout := 50 * time.Second

	webhookSecret := cfg.WebhookSecret
	if cfg.BaseURL != "" && webhookSecret == "" {
		webhookSecret = uuid.New().String()
	}

	opts := []bot.Option{
		bot.WithHTTPClient(pollTimeout, httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, bot.WithWebhookSecretToken(webhookSecret))
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	engine := entitlement.NewEngine(snap, cfg.FreeDailyViews)
	verifier := subscription.NewVerifier(b, cfg.RequiredChannels, logger)
	manager := packages.NewManager(snap, pending, logger)
	h := handlers.NewHandlers(cfg, snap, manager, engine, verifier, logger)
	mw := middleware.New(snap, logger)

	handlerChain := mw.ClassifyMiddleware(
		mw.TrackChatsMiddleware(
			h.MainHandler,
		),
	)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil
	}, handlerChain)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, handlerChain)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.PreCheckoutQuery != nil
	}, handlerChain)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	if cfg.BaseURL != "" {
		r.Post("/webhook", b.WebhookHandler())
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	if cfg.BaseURL != "" {
		ok, err := b.SetWebhook(ctx, &bot.SetWebhookParams{
			URL:         cfg.BaseURL + "/webhook",
			SecretToken: webhookSecret,
		})
		if err != nil || !ok {
			logger.Fatal().Err(err).Msg("failed to set webhook")
		}
		logger.Info().Str("url", cfg.BaseURL+"/webhook").Msg("bot started in webhook mode")
		b.StartWebhook(ctx)
	} else {
		logger.Info().Msg("bot started in long-polling mode")
		b.Start(ctx)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info().Msg("stopped")
}
