// Package routes wires repositories, services and handlers onto the fiber
// app.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"paybroker/internal/handlers"
	"paybroker/internal/middleware"
	"paybroker/internal/repositories"
	"paybroker/internal/repositories/cache"
	"paybroker/internal/services/balance"
	"paybroker/internal/services/contract"
	"paybroker/internal/services/deposit"
	"paybroker/internal/services/payment"
	"paybroker/internal/services/reporting"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.Service, log zerolog.Logger) {
	store := repositories.NewStore(db)

	balanceSvc := balance.NewService()
	paymentSvc := payment.NewService(store, balanceSvc, cacheSvc, log)
	depositSvc := deposit.NewService(store, balanceSvc, cacheSvc, log)
	contractSvc := contract.NewService(store)
	reportingSvc := reporting.NewService(repositories.NewReportingRepository(db))

	resolver := middleware.NewPrincipalResolver(store.Profiles(), cacheSvc, log)

	contractHandler := handlers.NewContractHandler(contractSvc, log)
	jobHandler := handlers.NewJobHandler(contractSvc, paymentSvc, log)
	balanceHandler := handlers.NewBalanceHandler(depositSvc, log)
	adminHandler := handlers.NewAdminHandler(reportingSvc, log)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api", resolver.Handler)

	api.Get("/contracts/:id", contractHandler.GetContract)
	api.Get("/contracts", contractHandler.ListContracts)
	api.Get("/jobs/unpaid", jobHandler.ListUnpaid)
	api.Get("/transfers", balanceHandler.History)

	// The two mutation routes get a per-IP rate limit.
	api.Post("/jobs/:id/pay", mutationLimiter(), jobHandler.Pay)
	api.Post("/balances/deposit/:userId", mutationLimiter(), balanceHandler.Deposit)

	api.Get("/admin/best-profession", adminHandler.BestProfession)
	api.Get("/admin/best-clients", adminHandler.BestClients)
}

func mutationLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
	})
}
