package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yuxishi/aws-quota-checker/internal/audit"
	"github.com/yuxishi/aws-quota-checker/internal/aws"
	"github.com/yuxishi/aws-quota-checker/internal/cache"
	"github.com/yuxishi/aws-quota-checker/internal/checks"
	"github.com/yuxishi/aws-quota-checker/internal/config"
	"github.com/yuxishi/aws-quota-checker/internal/handler"
	"github.com/yuxishi/aws-quota-checker/internal/logging"
	"github.com/yuxishi/aws-quota-checker/internal/metrics"
	"github.com/yuxishi/aws-quota-checker/internal/model"
)

func main() {
	configFile := os.Getenv("QUOTA_CONFIG")
	if configFile == "" {
		configFile = "config.yaml"
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.WithError(err).Fatal("Cannot load configuration")
	}
	log := logging.Stderr(cfg.LogLevel)

	registry, err := checks.NewRegistry()
	if err != nil {
		log.WithError(err).Fatal("Cannot build check registry")
	}
	if err := registry.Configure(cfg.Overrides, cfg.Defaults); err != nil {
		log.WithError(err).Fatal("Invalid overrides")
	}

	sessions := aws.SessionFactory(cfg.Profile)
	runner := audit.NewRunner(registry, audit.SessionFactory(sessions), cfg.DefaultRegion, cfg.MaxConcurrency, log)

	promRegistry := prometheus.NewRegistry()
	h := handler.New(runner, registry, cache.New(cfg.GetCacheTTL()), handler.Options{
		Regions:    cfg.GetRegions(),
		Thresholds: cfg.Thresholds,
		ListRegions: func(ctx context.Context) ([]model.Region, error) {
			sess, err := sessions(ctx, cfg.DefaultRegion)
			if err != nil {
				return nil, err
			}
			return aws.GetRegions(ctx, sess.EC2)
		},
		Metrics: metrics.New(promRegistry),
		Log:     log,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	h.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	port := cfg.GetPort()
	log.Infof("Starting server on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
