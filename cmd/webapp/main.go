package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/disamze/eduplatform-frontend/internal/client"
	"github.com/disamze/eduplatform-frontend/internal/controller"
	"github.com/disamze/eduplatform-frontend/internal/handler"
	appmiddleware "github.com/disamze/eduplatform-frontend/internal/middleware"
	"github.com/disamze/eduplatform-frontend/internal/store"
	"github.com/disamze/eduplatform-frontend/internal/view"
	"github.com/disamze/eduplatform-frontend/pkg/config"
	"github.com/disamze/eduplatform-frontend/pkg/logger"
	reqidmiddleware "github.com/disamze/eduplatform-frontend/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	stateStore, err := store.Open(cfg.State.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open state store", "dir", cfg.State.Dir, "error", err)
	}

	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, stateStore, logr)

	ctrl := controller.New(api, stateStore, logr, controller.Options{
		PollInterval: cfg.Announcements.PollInterval,
	})

	// One profile probe restores a previous session before serving traffic.
	bootCtx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	ctrl.Bootstrap(bootCtx)
	cancel()

	renderer, err := view.NewRenderer()
	if err != nil {
		logr.Sugar().Fatalw("failed to parse templates", "error", err)
	}

	metrics := appmiddleware.NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(metrics.Collect())

	ui := handler.New(ctrl, renderer, metrics, logr, handler.Options{
		SessionSecret:  cfg.UI.SessionSecret,
		ExportsEnabled: cfg.Exports.Enabled,
	})
	ui.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("webapp starting",
		"addr", addr,
		"env", cfg.Env,
		"backend", cfg.API.BaseURL,
		"poll_interval", cfg.Announcements.PollInterval.String(),
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("webapp failed", "error", err)
	}
}
