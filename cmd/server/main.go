package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pgnest/hostel-system/internal/api"
	"github.com/pgnest/hostel-system/internal/api/metrics"
	"github.com/pgnest/hostel-system/internal/core/service"
	"github.com/pgnest/hostel-system/internal/infrastructure/config"
	mongodb "github.com/pgnest/hostel-system/internal/infrastructure/db/mongo"
	redisdb "github.com/pgnest/hostel-system/internal/infrastructure/db/redis"
	"github.com/pgnest/hostel-system/internal/infrastructure/queue"
	"github.com/pgnest/hostel-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	// 2. Logger
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("configuration loaded")

	// 3. MongoDB
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Msg("mongodb connected")

	// 4. Redis (session shadow)
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()
	log.Info().Msg("redis connected")

	// 5. Repositories
	roomRepo := mongodb.NewRoomRepository(db)
	residentRepo := mongodb.NewResidentRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)

	// 6. Services
	registry, err := service.NewRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("credential registry init failed")
	}
	shadow := redisdb.NewShadow(rdb, cfg.Session.SnapshotTTL, cfg.Session.RememberTTL)
	sessions := service.NewSessionService(registry, shadow, cfg.JWTSecret, cfg.Session.TokenTTL,
		logger.Component("session"))

	rooms := service.NewRoomService(roomRepo, logger.Component("rooms"))
	residents := service.NewResidentService(residentRepo, rooms, logger.Component("residents"))
	payments := service.NewPaymentService(paymentRepo, residentRepo, logger.Component("payments"))
	menu := service.NewMenuService(menuRepo, logger.Component("menu"))
	notifications := service.NewNotificationService(notificationRepo, residentRepo, logger.Component("notifications"))
	messages := service.NewMessageService(messageRepo, logger.Component("messages"))
	properties := service.NewPropertyService(propertyRepo, roomRepo, residentRepo, paymentRepo,
		logger.Component("properties"))

	// 7. Resume: replay remembered credentials before traffic arrives.
	switch sess, err := sessions.Resume(ctx); {
	case err != nil:
		metrics.SessionResumesTotal.WithLabelValues("failure").Inc()
		log.Warn().Err(err).Msg("session resume failed")
	case sess != nil:
		metrics.SessionResumesTotal.WithLabelValues("success").Inc()
		log.Info().Str("session_id", sess.ID).Str("role", string(sess.Role)).Msg("session resumed")
	default:
		metrics.SessionResumesTotal.WithLabelValues("none").Inc()
	}

	// 8. Notification dispatcher
	dispatcher := queue.NewDispatcher(cfg.Workers.Notifications, notifications, logger.Component("dispatcher"))
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	dispatcher.Start(workerCtx)
	log.Info().Int("workers", cfg.Workers.Notifications).Msg("notification dispatcher started")

	// 9. Router and HTTP server
	e := api.NewRouter(api.Deps{
		Sessions:      sessions,
		Rooms:         rooms,
		Residents:     residents,
		Payments:      payments,
		Menu:          menu,
		Notifications: notifications,
		Messages:      messages,
		Properties:    properties,
		Dispatcher:    dispatcher,
		JWTSecret:     cfg.JWTSecret,
		DB:            db,
		Redis:         rdb,
		Log:           logger.Component("api"),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 10. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop

	log.Info().Msg("shutting down")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
