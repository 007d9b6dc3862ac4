package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paybroker/internal/repositories"
)

type mockReporting struct{ mock.Mock }

func (m *mockReporting) BestProfession(ctx context.Context, start, end time.Time) (*repositories.ProfessionEarnings, error) {
	args := m.Called(ctx, start, end)
	if r := args.Get(0); r != nil {
		return r.(*repositories.ProfessionEarnings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReporting) BestClients(ctx context.Context, start, end time.Time, limit int) ([]repositories.ClientSpend, error) {
	args := m.Called(ctx, start, end, limit)
	if r := args.Get(0); r != nil {
		return r.([]repositories.ClientSpend), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestBestProfession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects a missing or inverted range", func(t *testing.T) {
		svc := NewService(new(mockReporting))

		_, err := svc.BestProfession(ctx, time.Time{}, end)
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = svc.BestProfession(ctx, start, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = svc.BestProfession(ctx, end, start)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("returns the top earning profession", func(t *testing.T) {
		repo := new(mockReporting)
		want := &repositories.ProfessionEarnings{Profession: "programmer", Total: decimal.NewFromInt(2683)}
		repo.On("BestProfession", mock.Anything, start, end).Return(want, nil)
		svc := NewService(repo)

		got, err := svc.BestProfession(ctx, start, end)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates an empty result as nil", func(t *testing.T) {
		repo := new(mockReporting)
		repo.On("BestProfession", mock.Anything, start, end).Return(nil, nil)
		svc := NewService(repo)

		got, err := svc.BestProfession(ctx, start, end)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestBestClients(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects an invalid range", func(t *testing.T) {
		svc := NewService(new(mockReporting))
		_, err := svc.BestClients(ctx, end, start, 5)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("falls back to the default limit", func(t *testing.T) {
		repo := new(mockReporting)
		want := []repositories.ClientSpend{
			{ID: 1, FullName: "Harry Potter", Paid: decimal.NewFromInt(442)},
			{ID: 2, FullName: "Mr Robot", Paid: decimal.NewFromInt(221)},
		}
		repo.On("BestClients", mock.Anything, start, end, DefaultClientLimit).Return(want, nil)
		svc := NewService(repo)

		got, err := svc.BestClients(ctx, start, end, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		repo := new(mockReporting)
		repo.On("BestClients", mock.Anything, start, end, 4).
			Return([]repositories.ClientSpend{}, nil)
		svc := NewService(repo)

		_, err := svc.BestClients(ctx, start, end, 4)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
