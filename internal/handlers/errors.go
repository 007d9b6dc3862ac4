// Package handlers contains the fiber HTTP handlers. Handlers parse and
// validate transport-level input, delegate to the services, and map the
// service error taxonomy onto HTTP statuses.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"paybroker/internal/repositories"
	"paybroker/internal/services/contract"
	"paybroker/internal/services/deposit"
	"paybroker/internal/services/payment"
	"paybroker/internal/services/reporting"
	"paybroker/internal/utils"
)

// serviceError maps a service failure onto the HTTP status for its
// category. Not-found and not-authorized share one status so responses do
// not reveal whether a resource exists; transient store failures are the
// only retryable kind.
func serviceError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, payment.ErrJobNotFound),
		errors.Is(err, contract.ErrContractNotFound),
		errors.Is(err, deposit.ErrClientNotFound):
		return utils.NotFound(c, err.Error())

	case errors.Is(err, payment.ErrJobAlreadyPaid):
		return utils.Conflict(c, err.Error())

	case errors.Is(err, payment.ErrInsufficientFunds),
		errors.Is(err, deposit.ErrInvalidAmount),
		errors.Is(err, deposit.ErrDepositLimitExceeded),
		errors.Is(err, reporting.ErrInvalidRange):
		return utils.BadRequest(c, err.Error())

	case errors.Is(err, repositories.ErrTransient):
		return utils.ServiceUnavailable(c, "temporary contention, retry the request")

	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return utils.InternalError(c, "internal error")
	}
}
