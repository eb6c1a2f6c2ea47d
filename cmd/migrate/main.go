package main

import (
	"flag"
	"log"

	"grammarlab/internal/config"
	"grammarlab/internal/database"
	"grammarlab/internal/logger"

	"go.uber.org/zap"
)

func main() {
	migrationsPath := flag.String("path", "migrations", "directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DSN())
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsPath); err != nil {
		logger.Get().Fatal("Migration failed", zap.Error(err))
	}
	logger.Get().Info("Migrations applied", zap.String("path", *migrationsPath))
}
