package service

import (
	"context"
	"testing"

	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/sakuraclothing/store-cli/internal/catalog/repository"
	"github.com/sakuraclothing/store-cli/internal/catalog/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "T-Shirt", Price: decimal.NewFromInt(2500), Sizes: []string{"S", "M", "L"}, Stock: map[string]int{"S": 3, "M": 4, "L": 3}},
		{ID: 2, Name: "Jeans", Price: decimal.NewFromInt(4890), Sizes: []string{"M", "L", "XL"}, Stock: map[string]int{"M": 2, "L": 2, "XL": 1}},
		{ID: 3, Name: "Jacket", Price: decimal.NewFromInt(7600), Sizes: []string{"M", "L"}, Stock: map[string]int{"M": 1, "L": 2}},
	}
}

func TestCatalogService_SearchProducts(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	svc := NewCatalogService(mockRepo, 3)
	ctx := context.TODO()

	t.Run("case-insensitive substring match", func(t *testing.T) {
		mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

		got, err := svc.SearchProducts(ctx, "shirt")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "T-Shirt", got[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no match is empty result, not an error", func(t *testing.T) {
		mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

		got, err := svc.SearchProducts(ctx, "sweater")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCatalogService_Filters(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	svc := NewCatalogService(mockRepo, 3)
	ctx := context.TODO()

	t.Run("by size, input normalized to upper case", func(t *testing.T) {
		mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

		got, err := svc.FilterBySize(ctx, "xl")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Jeans", got[0].Name)
	})

	t.Run("by price, bounds inclusive", func(t *testing.T) {
		mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

		got, err := svc.FilterByPrice(ctx, decimal.NewFromInt(2500), decimal.NewFromInt(4890))

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "T-Shirt", got[0].Name)
		assert.Equal(t, "Jeans", got[1].Name)
	})
}

func TestCatalogService_AddProduct(t *testing.T) {
	ctx := context.TODO()

	req := domain.AddProductRequest{
		Name:  "Hoodie",
		Price: decimal.NewFromInt(5200),
		Sizes: []string{"M", "L"},
		Stock: map[string]int{"M": 5, "L": 2},
	}

	t.Run("success assigns id via repository", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		svc := NewCatalogService(mockRepo, 3)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		p, err := svc.AddProduct(ctx, req)

		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.Equal(t, "Hoodie", p.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		svc := NewCatalogService(mockRepo, 3)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Product")).Return(repository.ErrProductConflict).Once()

		_, err := svc.AddProduct(ctx, req)

		assert.ErrorIs(t, err, repository.ErrProductConflict)
	})

	t.Run("missing name is invalid input", func(t *testing.T) {
		svc := NewCatalogService(new(mocks.MockCatalogRepository), 3)

		bad := req
		bad.Name = "  "
		_, err := svc.AddProduct(ctx, bad)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("size without a stock entry is invalid input", func(t *testing.T) {
		svc := NewCatalogService(new(mocks.MockCatalogRepository), 3)

		bad := req
		bad.Sizes = []string{"M", "L", "XL"}
		_, err := svc.AddProduct(ctx, bad)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCatalogService_EditProduct(t *testing.T) {
	ctx := context.TODO()

	current := func() *domain.Product {
		p := sampleCatalog()[0].Clone()
		return &p
	}

	t.Run("blank fields keep existing values", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		svc := NewCatalogService(mockRepo, 3)
		mockRepo.On("GetByID", ctx, 1).Return(current(), nil).Once()

		var saved domain.Product
		mockRepo.On("Update", ctx, mock.AnythingOfType("domain.Product")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Product) }).
			Return(nil).Once()

		newPrice := decimal.NewFromInt(2750)
		p, err := svc.EditProduct(ctx, 1, domain.UpdateProductRequest{Price: &newPrice})

		require.NoError(t, err)
		assert.Equal(t, "T-Shirt", p.Name)
		assert.True(t, saved.Price.Equal(newPrice))
		assert.Equal(t, map[string]int{"S": 3, "M": 4, "L": 3}, saved.Stock)
	})

	t.Run("re-specifying sizes drops counts for omitted sizes", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		svc := NewCatalogService(mockRepo, 3)
		mockRepo.On("GetByID", ctx, 1).Return(current(), nil).Once()

		var saved domain.Product
		mockRepo.On("Update", ctx, mock.AnythingOfType("domain.Product")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Product) }).
			Return(nil).Once()

		_, err := svc.EditProduct(ctx, 1, domain.UpdateProductRequest{
			Sizes: []string{"S", "M"},
			Stock: map[string]int{"S": 3, "M": 4},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"S", "M"}, saved.Sizes)
		assert.NotContains(t, saved.Stock, "L", "dropped size must lose its stock entry entirely")
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		svc := NewCatalogService(mockRepo, 3)
		mockRepo.On("GetByID", ctx, 42).Return(nil, repository.ErrProductNotFound).Once()

		_, err := svc.EditProduct(ctx, 42, domain.UpdateProductRequest{})

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}

func TestCatalogService_Insights(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	svc := NewCatalogService(mockRepo, 3)
	ctx := context.TODO()

	mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

	ins, err := svc.Insights(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, ins.TotalProducts)
	assert.Equal(t, 18, ins.TotalStock) // 10 + 5 + 3
	// 10*2500 + 5*4890 + 3*7600 = 25000 + 24450 + 22800
	assert.True(t, ins.InventoryValue.Equal(decimal.NewFromInt(72250)), "got %s", ins.InventoryValue)
}

func TestCatalogService_MonitorStock(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	svc := NewCatalogService(mockRepo, 3)
	ctx := context.TODO()

	mockRepo.On("List", ctx).Return(sampleCatalog(), nil).Once()

	levels, err := svc.MonitorStock(ctx)

	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.False(t, levels[0].Low) // T-Shirt: 10
	assert.False(t, levels[1].Low) // Jeans: 5
	assert.True(t, levels[2].Low)  // Jacket: 3, ambang inklusif
}
