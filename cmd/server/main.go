// Package main is the entry point for the payments brokering API server.
package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"paybroker/internal/config"
	"paybroker/internal/logger"
	"paybroker/internal/repositories"
	"paybroker/internal/repositories/cache"
	"paybroker/internal/routes"
)

func main() {
	config.LoadEnv()
	log := logger.New(config.GetEnv("ENV", "development"))

	db, err := repositories.InitDB(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database connection")
		}
	}()

	// Redis is optional: without it the app falls back to database lookups.
	var cacheSvc *cache.Service
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cacheSvc = cache.NewService(client, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))

		if err := cacheSvc.HealthCheck(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		if err := cacheSvc.FlushAll(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to flush redis cache on startup")
		}
		defer func() {
			if err := cacheSvc.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis connection")
			}
		}()
		log.Info().Msg("redis cache enabled")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, profile_id",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, cacheSvc, log)

	addr := ":" + config.GetEnv("PORT", "3000")
	log.Info().Str("addr", addr).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
