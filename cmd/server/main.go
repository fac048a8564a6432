// Package main is the entry point for the dock-status server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/jamesprial/dock-status/internal/config"
	"github.com/jamesprial/dock-status/internal/dock"
	"github.com/jamesprial/dock-status/internal/logging"
	"github.com/jamesprial/dock-status/internal/metrics"
	"github.com/jamesprial/dock-status/internal/tools"
	"github.com/jamesprial/dock-status/internal/viewer"
	"github.com/jamesprial/dock-status/internal/web"
)

const (
	defaultConfigPath = "/config/config.yaml"
	initialLoadWait   = 10 * time.Second
)

func main() {
	cfg, path, loadErr := loadConfig()
	config.ApplyEnvOverrides(cfg)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log configuration: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if loadErr != nil {
		logger.Warn("could not load config, using defaults", zap.String("path", path), zap.Error(loadErr))
	} else {
		logger.Info("loaded config", zap.String("path", path))
	}

	client, err := dock.NewHTTPClient(cfg.Dock)
	if err != nil {
		logger.Fatal("failed to create dock client", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctrl := viewer.NewController(client,
		viewer.WithLogger(logger.Named("viewer")),
		viewer.WithMetrics(metrics.New(reg)),
		viewer.WithPollInterval(cfg.Dock.PollInterval()),
	)

	// Fill the suggestion list up front, as opening the popup did.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), initialLoadWait)
	if ids := ctrl.Load(loadCtx); ids != nil {
		logger.Info("loaded dock suggestions", zap.Int("count", len(ids)))
	}
	cancelLoad()

	// Build MCP server.
	mcpServer := server.NewMCPServer(
		"dock-status",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	names := tools.RegisterAll(mcpServer, viewer.ViewerTools(ctrl, logger.Named("audit")))
	logger.Info("registered MCP tools", zap.Strings("tools", names))

	router := web.NewRouter(web.NewHandler(ctrl, cfg.Dock.PollInterval(), logger.Named("web")))
	router.Handle("/mcp", server.NewStreamableHTTPServer(mcpServer))
	router.Handle("/metrics", metrics.Handler(reg))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("dock-status listening", zap.String("addr", addr), zap.String("dock", cfg.Dock.URL))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-stop
	logger.Info("shutting down")

	ctrl.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// loadConfig reads the config file from the path specified by
// DOCK_STATUS_CONFIG_PATH or the default /config/config.yaml. If the file
// cannot be read, DefaultConfig is returned together with the error.
func loadConfig() (*config.Config, string, error) {
	path := os.Getenv("DOCK_STATUS_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.DefaultConfig(), path, err
	}
	return cfg, path, nil
}
