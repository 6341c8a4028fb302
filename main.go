package main

import (
	"go.uber.org/zap"

	"github.com/sirupsen/logrus"

	"jobboard/internal/config"
	"jobboard/internal/repository"
	"jobboard/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize and run the server
	log := logrus.New()
	srv := server.NewServer(db, cfg, logger, log)
	srv.Run(cfg.Server.Port)
}
