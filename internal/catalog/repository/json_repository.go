package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	"github.com/sakuraclothing/store-cli/internal/platform/storage"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductConflict = errors.New("product with this name already exists")

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) error
	ApplyStockChanges(ctx context.Context, changes []domain.StockChange) error
}

// jsonCatalogRepository memegang daftar produk di memori dan menulis ulang
// seluruh file setelah tiap mutasi. Daftar ini adalah satu-satunya pemilik
// state katalog: workflow katalog dan admin sama-sama menunjuk instance ini.
type jsonCatalogRepository struct {
	path     string
	products []domain.Product
	// nextID monoton selama proses hidup dan tidak pernah dihitung ulang
	// dari isi daftar, jadi menghapus semua produk lalu menambah satu
	// tetap menghasilkan id baru yang valid.
	nextID int
}

func NewJSONCatalogRepository(path string) (CatalogRepository, error) {
	r := &jsonCatalogRepository{path: path}

	err := storage.Load(path, &r.products)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		r.products = seedCatalog()
		if err := storage.Save(path, r.products); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog file %s not found, seeded %d default products", path, len(r.products))
	case err != nil:
		return nil, err
	}

	r.nextID = 1
	for _, p := range r.products {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r, nil
}

// Katalog awal yang dibuat saat file belum ada.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:    1,
			Name:  "T-Shirt",
			Price: decimal.NewFromFloat(2500.00),
			Sizes: []string{"S", "M", "L"},
			Stock: map[string]int{"S": 3, "M": 4, "L": 3},
		},
		{
			ID:    2,
			Name:  "Jeans",
			Price: decimal.NewFromFloat(4890.00),
			Sizes: []string{"M", "L", "XL"},
			Stock: map[string]int{"M": 2, "L": 2, "XL": 1},
		},
		{
			ID:    3,
			Name:  "Jacket",
			Price: decimal.NewFromFloat(7600.00),
			Sizes: []string{"M", "L"},
			Stock: map[string]int{"M": 1, "L": 2},
		},
	}
}

func (r *jsonCatalogRepository) save() error {
	return storage.Save(r.path, r.products)
}

func (r *jsonCatalogRepository) indexByID(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *jsonCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *jsonCatalogRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	i := r.indexByID(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	p := r.products[i].Clone()
	return &p, nil
}

// GetByName mencocokkan nama secara exact tapi case-insensitive.
func (r *jsonCatalogRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	for i := range r.products {
		if strings.EqualFold(r.products[i].Name, name) {
			p := r.products[i].Clone()
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *jsonCatalogRepository) Insert(ctx context.Context, p *domain.Product) error {
	for i := range r.products {
		if strings.EqualFold(r.products[i].Name, p.Name) {
			return ErrProductConflict
		}
	}

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p.Clone())

	if err := r.save(); err != nil {
		logger.Error("Insert: failed to persist catalog", err)
		return err
	}
	return nil
}

func (r *jsonCatalogRepository) Update(ctx context.Context, p domain.Product) error {
	i := r.indexByID(p.ID)
	if i < 0 {
		return ErrProductNotFound
	}
	// Nama baru tidak boleh menabrak produk lain.
	for j := range r.products {
		if j != i && strings.EqualFold(r.products[j].Name, p.Name) {
			return ErrProductConflict
		}
	}

	r.products[i] = p.Clone()

	if err := r.save(); err != nil {
		logger.Error("Update: failed to persist catalog", err)
		return err
	}
	return nil
}

func (r *jsonCatalogRepository) Delete(ctx context.Context, id int) error {
	i := r.indexByID(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)

	if err := r.save(); err != nil {
		logger.Error("Delete: failed to persist catalog", err)
		return err
	}
	return nil
}

// ApplyStockChanges menerapkan seluruh mutasi di memori lalu menulis file
// sekali. Tidak ada clamping: pemanggil yang menjamin stok tidak negatif
// lewat pemeriksaan ketersediaan sebelum checkout.
func (r *jsonCatalogRepository) ApplyStockChanges(ctx context.Context, changes []domain.StockChange) error {
	for _, ch := range changes {
		i := r.indexByID(ch.ProductID)
		if i < 0 {
			return fmt.Errorf("%w: id %d", ErrProductNotFound, ch.ProductID)
		}
		if !r.products[i].HasSize(ch.Size) {
			return fmt.Errorf("product %q has no size %q", r.products[i].Name, ch.Size)
		}
		r.products[i].Stock[ch.Size] += ch.Delta
	}

	if err := r.save(); err != nil {
		logger.Error("ApplyStockChanges: failed to persist catalog", err)
		return err
	}
	return nil
}
