package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"paybroker/internal/services/reporting"
	"paybroker/internal/utils"
)

type AdminHandler struct {
	reports reporting.Service
	log     zerolog.Logger
}

func NewAdminHandler(reports reporting.Service, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		reports: reports,
		log:     log,
	}
}

// BestProfession handles GET /api/admin/best-profession?start=&end=.
func (h *AdminHandler) BestProfession(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result, err := h.reports.BestProfession(c.Context(), start, end)
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{"best_profession": result})
}

// BestClients handles GET /api/admin/best-clients?start=&end=&limit=.
func (h *AdminHandler) BestClients(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	clients, err := h.reports.BestClients(c.Context(), start, end, c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, h.log, err)
	}
	return utils.Success(c, fiber.Map{"best_clients": clients})
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := parseTimeParam(c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid start parameter")
	}
	end, err := parseTimeParam(c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid end parameter")
	}
	return start, end, nil
}

// parseTimeParam accepts RFC3339 timestamps or plain dates.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
