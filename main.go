package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"advisory-server/src/api"
	"advisory-server/src/config"
	"advisory-server/src/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	if err := cfg.ResolveSecrets(); err != nil {
		log.Println(err, "Error while resolving secrets")
		return
	}

	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	server, err := api.NewServer(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Snapshots.Enabled {
		// The task lives for the whole process, so it is never cancelled here.
		if _, err := scheduler.NewSnapshotTask(cfg.Snapshots.CronSpec, server.SnapshotService, server.Logger); err != nil {
			return nil, err
		}
	}

	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		log.Println("Starting server on port", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
