package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/sakuraclothing/store-cli/internal/catalog/repository"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid product input")

var validate = validator.New()

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	FilterBySize(ctx context.Context, size string) ([]domain.Product, error)
	FilterByPrice(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error)

	AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.Product, error)
	EditProduct(ctx context.Context, id int, req domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	Insights(ctx context.Context) (*domain.Insights, error)
	MonitorStock(ctx context.Context) ([]domain.StockLevel, error)
}

type catalogServiceImpl struct {
	repo              repository.CatalogRepository
	lowStockThreshold int
}

func NewCatalogService(repo repository.CatalogRepository, lowStockThreshold int) CatalogService {
	return &catalogServiceImpl{repo: repo, lowStockThreshold: lowStockThreshold}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchProducts mencocokkan substring nama, case-insensitive. Tidak ada yang
// cocok bukan error, hasilnya slice kosong.
func (s *catalogServiceImpl) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	matches := []domain.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *catalogServiceImpl) FilterBySize(ctx context.Context, size string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	size = strings.ToUpper(strings.TrimSpace(size))
	matches := []domain.Product{}
	for _, p := range products {
		if p.HasSize(size) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *catalogServiceImpl) FilterByPrice(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := []domain.Product{}
	for _, p := range products {
		if p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *catalogServiceImpl) AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := checkSizesMatchStock(req.Sizes, req.Stock); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Name:  req.Name,
		Price: req.Price,
		Sizes: req.Sizes,
		Stock: req.Stock,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("product %q added with id %d", p.Name, p.ID)
	return p, nil
}

// EditProduct adalah partial update: field nil dipertahankan. Stock non-nil
// mengganti seluruh peta stok, jadi ukuran yang tidak dimasukkan ulang
// kehilangan hitungan lamanya.
func (s *catalogServiceImpl) EditProduct(ctx context.Context, id int, req domain.UpdateProductRequest) (*domain.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		if err := checkSizesMatchStock(req.Sizes, req.Stock); err != nil {
			return nil, err
		}
		p.Sizes = req.Sizes
		p.Stock = req.Stock
	}

	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *catalogServiceImpl) Insights(ctx context.Context) (*domain.Insights, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	ins := &domain.Insights{InventoryValue: decimal.Zero}
	for _, p := range products {
		total := p.TotalStock()
		ins.TotalProducts++
		ins.TotalStock += total
		ins.InventoryValue = ins.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(total))))
	}
	return ins, nil
}

func (s *catalogServiceImpl) MonitorStock(ctx context.Context) ([]domain.StockLevel, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	levels := make([]domain.StockLevel, 0, len(products))
	for _, p := range products {
		total := p.TotalStock()
		levels = append(levels, domain.StockLevel{
			Product: p,
			Total:   total,
			Low:     total <= s.lowStockThreshold,
		})
	}
	return levels, nil
}

// Invariant katalog: daftar ukuran dan key peta stok harus identik.
func checkSizesMatchStock(sizes []string, stock map[string]int) error {
	if len(sizes) != len(stock) {
		return fmt.Errorf("%w: sizes and stock entries do not match", ErrInvalidInput)
	}
	for _, size := range sizes {
		if _, ok := stock[size]; !ok {
			return fmt.Errorf("%w: size %q has no stock entry", ErrInvalidInput, size)
		}
	}
	return nil
}
