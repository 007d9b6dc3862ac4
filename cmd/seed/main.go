// Package main seeds the database with a small development dataset:
// clients with balances, contractors with professions, contracts in every
// lifecycle state, and a mix of paid and unpaid jobs.
package main

import (
	"time"

	"github.com/shopspring/decimal"

	"paybroker/internal/config"
	"paybroker/internal/logger"
	"paybroker/internal/models"
	"paybroker/internal/repositories"
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

	// Start from a clean slate; order matters because of foreign keys.
	for _, table := range []string{"transfers", "jobs", "contracts", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("failed to clear table")
		}
	}

	money := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			log.Fatal().Err(err).Str("value", s).Msg("bad seed amount")
		}
		return d
	}

	profiles := []models.Profile{
		{ID: 1, FirstName: "Harry", LastName: "Potter", Profession: "wizard", Role: models.RoleClient, Balance: money("1150")},
		{ID: 2, FirstName: "Mr", LastName: "Robot", Profession: "hacker", Role: models.RoleClient, Balance: money("231.11")},
		{ID: 3, FirstName: "John", LastName: "Snow", Profession: "knows nothing", Role: models.RoleClient, Balance: money("451.30")},
		{ID: 4, FirstName: "Ash", LastName: "Ketchum", Profession: "pokemon master", Role: models.RoleClient, Balance: money("1.30")},
		{ID: 5, FirstName: "John", LastName: "Lenon", Profession: "musician", Role: models.RoleContractor, Balance: money("64")},
		{ID: 6, FirstName: "Linus", LastName: "Torvalds", Profession: "programmer", Role: models.RoleContractor, Balance: money("1214")},
		{ID: 7, FirstName: "Alan", LastName: "Turing", Profession: "programmer", Role: models.RoleContractor, Balance: money("22")},
		{ID: 8, FirstName: "Aragorn", LastName: "Elessar", Profession: "fighter", Role: models.RoleContractor, Balance: money("314")},
	}
	if err := db.Create(&profiles).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed profiles")
	}

	contracts := []models.Contract{
		{ID: 1, Terms: "bla bla bla", Status: models.ContractStatusTerminated, ClientID: 1, ContractorID: 5},
		{ID: 2, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 1, ContractorID: 6},
		{ID: 3, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 2, ContractorID: 6},
		{ID: 4, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 2, ContractorID: 7},
		{ID: 5, Terms: "bla bla bla", Status: models.ContractStatusNew, ClientID: 3, ContractorID: 8},
		{ID: 6, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 3, ContractorID: 7},
		{ID: 7, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 4, ContractorID: 7},
		{ID: 8, Terms: "bla bla bla", Status: models.ContractStatusInProgress, ClientID: 4, ContractorID: 6},
	}
	if err := db.Create(&contracts).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed contracts")
	}

	paidAt := func(day int) *time.Time {
		t := time.Date(2020, 8, day, 19, 11, 26, 0, time.UTC)
		return &t
	}

	jobs := []models.Job{
		{ContractID: 1, Description: "work", Price: money("200")},
		{ContractID: 2, Description: "work", Price: money("201")},
		{ContractID: 3, Description: "work", Price: money("202")},
		{ContractID: 4, Description: "work", Price: money("200")},
		{ContractID: 7, Description: "work", Price: money("200")},
		{ContractID: 7, Description: "work", Price: money("21"), Paid: true, PaymentDate: paidAt(15)},
		{ContractID: 2, Description: "work", Price: money("21"), Paid: true, PaymentDate: paidAt(15)},
		{ContractID: 3, Description: "work", Price: money("121"), Paid: true, PaymentDate: paidAt(15)},
		{ContractID: 3, Description: "work", Price: money("121"), Paid: true, PaymentDate: paidAt(16)},
		{ContractID: 6, Description: "work", Price: money("200")},
		{ContractID: 8, Description: "work", Price: money("200")},
	}
	if err := db.Create(&jobs).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed jobs")
	}

	log.Info().
		Int("profiles", len(profiles)).
		Int("contracts", len(contracts)).
		Int("jobs", len(jobs)).
		Msg("database seeded")
}
