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
	"qr-code-service/internal/fileserver"
	"qr-code-service/internal/proxy"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	watcher, err := fileserver.NewWatcher(cfg.FileServer.StaticDir)
	if err != nil {
		log.Fatalf("init watcher: %v", err)
	}
	defer watcher.Close()

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go watcher.Run(watchCtx)
	log.WithFields(log.Fields{
		"dir":      cfg.FileServer.StaticDir,
		"qr_codes": watcher.Count(),
	}).Info("serving qr code directory")

	upstream := proxy.NewClient(cfg.FileServer.UpstreamURL, cfg.FileServer.UpstreamTimeout)
	fs := fileserver.New(cfg.FileServer.StaticDir, upstream, watcher)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.FileServer.Host, cfg.FileServer.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: fs.Router(),
	}

	go func() {
		log.Infof("starting file server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down file server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("file server stopped")
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
