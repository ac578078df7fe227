package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/app"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/config"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, cfg, logger); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
