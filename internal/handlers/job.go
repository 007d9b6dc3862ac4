package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"paybroker/internal/middleware"
	"paybroker/internal/services/contract"
	"paybroker/internal/services/payment"
	"paybroker/internal/utils"
)

type JobHandler struct {
	contracts contract.Service
	payments  payment.Service
	log       zerolog.Logger
}

func NewJobHandler(contracts contract.Service, payments payment.Service, log zerolog.Logger) *JobHandler {
	return &JobHandler{
		contracts: contracts,
		payments:  payments,
		log:       log,
	}
}

// ListUnpaid handles GET /api/jobs/unpaid.
func (h *JobHandler) ListUnpaid(c *fiber.Ctx) error {
	jobs, err := h.contracts.ListUnpaidJobs(c.Context(), middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

// Pay handles POST /api/jobs/:id/pay.
func (h *JobHandler) Pay(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "invalid job id")
	}

	job, err := h.payments.PayForJob(c.Context(), uint(id), middleware.Principal(c))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{"job": job})
}
