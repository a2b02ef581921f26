package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	"github.com/BruksfildServices01/restaurant-api/internal/config"
	dbpkg "github.com/BruksfildServices01/restaurant-api/internal/db"
	"github.com/BruksfildServices01/restaurant-api/internal/logger"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
	"github.com/BruksfildServices01/restaurant-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	// ======================================================
	// 📨 NOTIFICAÇÕES
	// ======================================================
	var sender notify.Sender = notify.NewLogSender(log)
	if cfg.RedisURL != "" {
		client, err := notify.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable at startup, failed notifications will be logged and dropped")
		}
		cancel()

		sender = notify.NewRedisSender(client, cfg.NotifyQueue)
	}

	notifier := notify.NewDispatcher(sender, log, cfg.NotifyBuffer)
	auditor := audit.NewDispatcher(audit.New(db), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Notifier: notifier,
		Auditor:  auditor,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	// esvazia as filas depois que nenhuma requisição nova entra
	notifier.Close()
	auditor.Close()
}
