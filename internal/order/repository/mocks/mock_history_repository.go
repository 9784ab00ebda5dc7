package mocks

import (
	"context"

	"github.com/sakuraclothing/store-cli/internal/order/domain"
	"github.com/stretchr/testify/mock"
)

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) List(ctx context.Context) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]domain.PurchaseRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHistoryRepository) Append(ctx context.Context, rec domain.PurchaseRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockHistoryRepository) ReplaceAll(ctx context.Context, recs []domain.PurchaseRecord) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}
