package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/dgnsrekt/match-relay/internal/config"
	"github.com/dgnsrekt/match-relay/internal/relay"
	"github.com/dgnsrekt/match-relay/internal/route"
	"github.com/dgnsrekt/match-relay/internal/server"
	"github.com/dgnsrekt/match-relay/internal/ws"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load config
	cfg, err := config.LoadServerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Setup logger
	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("port", cfg.Port),
		zap.Duration("readWaitTimeout", cfg.ReadWaitTimeout),
		zap.String("streamLinkWaitMode", cfg.StreamLinkWaitMode),
		zap.Bool("wsEnabled", cfg.WSEnabled),
		zap.Duration("shutdownTimeout", cfg.ShutdownTimeout),
	)

	svc, err := relay.New(relay.Options{
		WaitMode:    relay.WaitMode(cfg.StreamLinkWaitMode),
		ReadTimeout: cfg.ReadWaitTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create relay", zap.Error(err))
		return 1
	}
	svc.Reset()

	tracker := route.NewTracker()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// WebSocket hub (optional)
	var hub *ws.Hub
	if cfg.WSEnabled {
		codec, err := ws.NewCodec()
		if err != nil {
			logger.Error("failed to create ws codec", zap.Error(err))
			return 1
		}
		defer codec.Close()

		hub = ws.NewHub(codec, tracker, logger)
		g.Go(func() error {
			hub.Run(gctx)
			return nil
		})
		logger.Info("WebSocket enabled", zap.Strings("protocols", []string{ws.ProtocolJSON, ws.ProtocolProtobuf}))
	}

	router, err := server.NewRouter(server.NewServer(svc, tracker, hub, cfg, logger), logger)
	if err != nil {
		logger.Error("failed to create router", zap.Error(err))
		return 1
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Reads may block until a publish arrives, so the write deadline
		// must outlast the read wait.
		WriteTimeout: writeTimeout(cfg.ReadWaitTimeout),
	}

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
		return 1
	}

	logger.Info("server stopped")
	return 0
}

func writeTimeout(readWait time.Duration) time.Duration {
	if readWait == 0 {
		return 0
	}
	return readWait + 10*time.Second
}

func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
