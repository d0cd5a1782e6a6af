package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-code-service/internal/config"
	"qr-code-service/internal/handler"
	"qr-code-service/internal/middleware"
	"qr-code-service/internal/qrcode"
	"qr-code-service/internal/repository"
	"qr-code-service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	repo, err := repository.NewFilesystemQRCodeRepository(cfg.QRCode.Dir)
	if err != nil {
		log.Fatalf("init qr code storage: %v", err)
	}
	log.WithField("dir", cfg.QRCode.Dir).Info("qr code directory ready")

	encoder, err := qrcode.NewEncoder(cfg.QRCode.FillColor, cfg.QRCode.BackColor)
	if err != nil {
		log.Fatalf("init qr encoder: %v", err)
	}

	qrUC := usecase.NewQRCodeUseCase(repo, encoder)
	h := handler.New(qrUC, cfg.Server.BaseURL, cfg.Server.DownloadFolder)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/", middleware.BearerAuth(cfg.Auth.Token))
	h.RegisterRoutes(api)

	// Health check with storage ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := repo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
