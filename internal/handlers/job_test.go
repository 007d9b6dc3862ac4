package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
	"paybroker/internal/services/contract"
	"paybroker/internal/services/payment"
)

type mockPayments struct{ mock.Mock }

func (m *mockPayments) PayForJob(ctx context.Context, jobID uint, principal *models.Profile) (*models.Job, error) {
	args := m.Called(ctx, jobID, principal)
	if j := args.Get(0); j != nil {
		return j.(*models.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockContractSvc struct{ mock.Mock }

func (m *mockContractSvc) GetContract(ctx context.Context, id uint, principal *models.Profile) (*models.Contract, error) {
	args := m.Called(ctx, id, principal)
	if c := args.Get(0); c != nil {
		return c.(*models.Contract), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractSvc) ListContracts(ctx context.Context, principal *models.Profile) ([]models.Contract, error) {
	args := m.Called(ctx, principal)
	if c := args.Get(0); c != nil {
		return c.([]models.Contract), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractSvc) ListUnpaidJobs(ctx context.Context, principal *models.Profile) ([]models.Job, error) {
	args := m.Called(ctx, principal)
	if j := args.Get(0); j != nil {
		return j.([]models.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

// newJobApp wires the handler behind a stub that injects the principal,
// standing in for the resolver middleware.
func newJobApp(payments *mockPayments, contracts *mockContractSvc, principal *models.Profile) *fiber.App {
	h := NewJobHandler(contracts, payments, zerolog.Nop())
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			c.Locals("principal", principal)
		}
		return c.Next()
	})
	app.Get("/api/jobs/unpaid", h.ListUnpaid)
	app.Post("/api/jobs/:id/pay", h.Pay)
	return app
}

func payRequest(jobID string) *http.Request {
	return httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/jobs/%s/pay", jobID), nil)
}

func TestPayEndpoint(t *testing.T) {
	principal := &models.Profile{ID: 1, Role: models.RoleClient}

	t.Run("bad job id", func(t *testing.T) {
		app := newJobApp(new(mockPayments), new(mockContractSvc), principal)
		resp, err := app.Test(payRequest("abc"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("success returns the paid job", func(t *testing.T) {
		payments := new(mockPayments)
		payments.On("PayForJob", mock.Anything, uint(100), principal).
			Return(&models.Job{ID: 100, Paid: true}, nil)
		app := newJobApp(payments, new(mockContractSvc), principal)

		resp, err := app.Test(payRequest("100"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		payments.AssertExpectations(t)
	})

	t.Run("error taxonomy maps to stable statuses", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"invisible job", payment.ErrJobNotFound, http.StatusNotFound},
			{"already paid", payment.ErrJobAlreadyPaid, http.StatusConflict},
			{"insufficient funds", payment.ErrInsufficientFunds, http.StatusBadRequest},
			{"store contention", repositories.ErrTransient, http.StatusServiceUnavailable},
			{"unexpected failure", fmt.Errorf("connection reset"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				payments := new(mockPayments)
				payments.On("PayForJob", mock.Anything, uint(100), principal).Return(nil, tc.err)
				app := newJobApp(payments, new(mockContractSvc), principal)

				resp, err := app.Test(payRequest("100"))
				require.NoError(t, err)
				assert.Equal(t, tc.status, resp.StatusCode)
			})
		}
	})
}

func TestListUnpaidEndpoint(t *testing.T) {
	principal := &models.Profile{ID: 2, Role: models.RoleContractor}

	contracts := new(mockContractSvc)
	contracts.On("ListUnpaidJobs", mock.Anything, principal).
		Return([]models.Job{{ID: 3}, {ID: 4}}, nil)
	app := newJobApp(new(mockPayments), contracts, principal)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/jobs/unpaid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

var _ contract.Service = (*mockContractSvc)(nil)
var _ payment.Service = (*mockPayments)(nil)
