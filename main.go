package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	"academy_backend/internals/features/academy/reports/service"
	middlewares "academy_backend/internals/middlewares"
	routes "academy_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	// 🔌 DB connect + pool
	if err := database.ConnectDB(cfg); err != nil {
		log.Fatalf("❌ database: %v", err)
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	// ⚡ cache opsional
	rdb := configs.ConnectRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
	cache := service.NewCache(rdb, cfg.ReportCacheTTL)

	app := routes.NewApp()

	// ⚙️ middleware dasar + performa
	middlewares.SetupMiddlewares(app, middlewares.Options{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		TimeZone:    cfg.LogTimeZone,
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, routes.Options{
		JWTSecret: cfg.JWTSecret,
		Cache:     cache,
	})

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if rdb != nil {
		_ = rdb.Close()
	}
	database.Close(database.DB)
}
