package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"paybroker/internal/middleware"
	"paybroker/internal/services/deposit"
	"paybroker/internal/utils"
)

type BalanceHandler struct {
	deposits deposit.Service
	log      zerolog.Logger
}

func NewBalanceHandler(deposits deposit.Service, log zerolog.Logger) *BalanceHandler {
	return &BalanceHandler{
		deposits: deposits,
		log:      log,
	}
}

// Deposit handles POST /api/balances/deposit/:userId.
func (h *BalanceHandler) Deposit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "invalid user id")
	}

	var input struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	profile, err := h.deposits.DepositToClient(c.Context(), uint(id), input.Amount, middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{"profile": profile})
}

// History handles GET /api/transfers.
func (h *BalanceHandler) History(c *fiber.Ctx) error {
	transfers, err := h.deposits.History(c.Context(), middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{
		"count":     len(transfers),
		"transfers": transfers,
	})
}
