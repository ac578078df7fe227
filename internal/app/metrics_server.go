package app

import (
	"context"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/bootstrap"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// serveMetrics exposes the default Prometheus registry for the background
// binaries, which have no API router.
func serveMetrics(ctx context.Context, cfg config.Config, logger *zap.Logger) {
	if cfg.MetricsPort == "" {
		return
	}
	err := bootstrap.StartHTTPServer(
		ctx,
		promhttp.Handler(),
		bootstrap.ServerConfig{Port: cfg.MetricsPort},
		bootstrap.NewStdoutAuditLogger(logger),
	)
	if err != nil {
		logger.Warn("metrics server stopped", zap.String("port", cfg.MetricsPort), zap.Error(err))
	}
}
