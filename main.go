package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/database"
	"github.com/long-kr/Project-Restaurant-Reservation/router"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database, cfg.Log.Level)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
		}
	}
	if cfg.Database.Seed {
		if err := database.Seed(context.Background(), db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router.SetupRouter(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.InfoLogger.Infof("%s %s listening on port %d (%s)", cfg.App.Name, cfg.App.Version, cfg.Server.Port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	utils.InfoLogger.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Server shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
