package overview_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/twigs-app/backend/internal/overview"
	"github.com/twigs-app/backend/internal/types"
)

type ledgerMock struct {
	mock.Mock
}

func (m *ledgerMock) IncomeTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, budgetID, period)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *ledgerMock) ExpenseTotals(ctx context.Context, budgetID uuid.UUID, period types.Period) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, budgetID, period)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

type budgetRepositoryMock struct {
	mock.Mock
}

func (m *budgetRepositoryMock) Budget(ctx context.Context, budgetID uuid.UUID) (overview.Budget, error) {
	args := m.Called(ctx, budgetID)
	return args.Get(0).(overview.Budget), args.Error(1)
}

type computerMock struct {
	mock.Mock
}

func (m *computerMock) Compute(ctx context.Context, budgetID uuid.UUID, period types.Period) (overview.Overview, error) {
	args := m.Called(ctx, budgetID, period)
	return args.Get(0).(overview.Overview), args.Error(1)
}
