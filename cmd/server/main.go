package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sitedesk/internal/config"
	"sitedesk/internal/dashboard"
	"sitedesk/internal/database"
	"sitedesk/internal/mq"
	"sitedesk/internal/mqhandler"
	"sitedesk/internal/redisclient"
	"sitedesk/internal/server"
	"sitedesk/internal/storage"
	"sitedesk/internal/util"
)

func main() {
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	database.Init(cfg.DB.DSN)
	database.SeedAdmin(cfg.Admin.Email, cfg.Admin.Password)

	rdb, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	if rdb == nil {
		logger.Warn("redis not configured; dashboard cache disabled")
	} else {
		defer rdb.Close()
	}

	store, err := storage.NewLocalStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		logger.Fatal("storage initialization failed", zap.Error(err))
	}

	// Insights arrive from the external analysis pipeline over the bus.
	if cfg.MQ.URL != "" {
		consumer, err := mq.NewConsumer(cfg.MQ.URL, mq.RouteInsightCreated)
		if err != nil {
			logger.Fatal("MQ initialization failed", zap.Error(err))
		}
		defer consumer.Close()

		insightHandler := mqhandler.NewInsightCreatedHandler(database.DB, logger)
		consumer.SetHandler(insightHandler.HandleInsightCreated)

		go func() {
			if err := consumer.StartConsuming(context.Background()); err != nil {
				logger.Error("insight consumer stopped", zap.Error(err))
			}
		}()
	} else {
		logger.Warn("MQ not configured; insight ingestion disabled")
	}

	agg := dashboard.NewAggregator(database.DB, rdb, logger)

	r := server.NewRouter(cfg, store, agg)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
