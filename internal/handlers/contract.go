package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"paybroker/internal/middleware"
	"paybroker/internal/services/contract"
	"paybroker/internal/utils"
)

type ContractHandler struct {
	contracts contract.Service
	log       zerolog.Logger
}

func NewContractHandler(contracts contract.Service, log zerolog.Logger) *ContractHandler {
	return &ContractHandler{
		contracts: contracts,
		log:       log,
	}
}

// GetContract handles GET /api/contracts/:id.
func (h *ContractHandler) GetContract(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "invalid contract id")
	}

	result, err := h.contracts.GetContract(c.Context(), uint(id), middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, result)
}

// ListContracts handles GET /api/contracts.
func (h *ContractHandler) ListContracts(c *fiber.Ctx) error {
	contracts, err := h.contracts.ListContracts(c.Context(), middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{
		"count":     len(contracts),
		"contracts": contracts,
	})
}
