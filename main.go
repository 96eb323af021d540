package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/Brandon-Mardis/Equip/internal/config"
	"github.com/Brandon-Mardis/Equip/internal/database"
	"github.com/Brandon-Mardis/Equip/internal/logger"
	"github.com/Brandon-Mardis/Equip/internal/router"
	"github.com/Brandon-Mardis/Equip/internal/storage"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// pick the storage backend once; handlers never re-check it
	var store storage.Store
	if cfg.Database.URL != "" {
		db, err := database.Open(cfg.Database)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
		store = storage.NewGormStore(db)
		slog.Info("connected to postgres database")
	} else {
		store = storage.NewMemStore()
		slog.Warn("no database URL configured, using in-memory storage (data resets on restart)")
	}

	r := router.Setup(cfg, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
