package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/vidinsights/vidgraph/internal/config"
	"github.com/vidinsights/vidgraph/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("Could not load config file, using defaults", "path", cfgPath, "err", err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize server", "err", err)
	}
	defer func() {
		if err := srv.Close(context.Background()); err != nil {
			log.Error("Failed to close graph store", "err", err)
		}
	}()

	r := srv.SetupRouter()

	log.Info("Starting server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		// Not Fatal: the deferred driver close still has to run.
		log.Error("Server stopped", "err", err)
	}
}
