package mocks

import (
	"context"

	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	args := m.Called(ctx, name)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) Insert(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	// Jika tidak ada error, isi ID seperti yang dilakukan repo asli.
	if p != nil && args.Error(0) == nil && p.ID == 0 {
		p.ID = 99
	}
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, p domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) ApplyStockChanges(ctx context.Context, changes []domain.StockChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}
