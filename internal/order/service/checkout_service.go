package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sakuraclothing/store-cli/internal/cart"
	catalogrepo "github.com/sakuraclothing/store-cli/internal/catalog/repository"
	"github.com/sakuraclothing/store-cli/internal/order/domain"
	"github.com/sakuraclothing/store-cli/internal/order/repository"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"

	catalogdomain "github.com/sakuraclothing/store-cli/internal/catalog/domain"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidSize       = errors.New("selected size is not available for this product")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrInvalidSelection  = errors.New("selection is out of range")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrSizeMismatch      = errors.New("recorded size is no longer present on the product")
)

type CheckoutService interface {
	AddToCart(ctx context.Context, c *cart.Cart, productID int, size string, quantity int) (*cart.Line, error)
	Checkout(ctx context.Context, c *cart.Cart) (*domain.PurchaseRecord, error)

	History(ctx context.Context) ([]domain.PurchaseRecord, error)
	FlattenedItems(ctx context.Context) ([]domain.FlatItem, error)
	ReturnItem(ctx context.Context, flatIndex, quantity int) (*domain.ReturnResult, error)
}

// checkoutServiceImpl mengoordinasikan katalog (stok) dan history, seperti
// order service yang memadukan order repo dengan warehouse.
type checkoutServiceImpl struct {
	catalog catalogrepo.CatalogRepository
	history repository.HistoryRepository
	now     func() time.Time
}

func NewCheckoutService(catalog catalogrepo.CatalogRepository, history repository.HistoryRepository) CheckoutService {
	return &checkoutServiceImpl{catalog: catalog, history: history, now: time.Now}
}

// AddToCart memvalidasi ketersediaan lalu menyisipkan/menimpa baris keranjang
// untuk (produk, ukuran). Stok belum berkurang di sini, baru saat checkout.
func (s *checkoutServiceImpl) AddToCart(ctx context.Context, c *cart.Cart, productID int, size string, quantity int) (*cart.Line, error) {
	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	size = strings.ToUpper(strings.TrimSpace(size))
	if !p.HasSize(size) {
		return nil, ErrInvalidSize
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	// Batas atas inklusif: minta persis sebanyak stok yang tersedia sah.
	if quantity > p.Stock[size] {
		return nil, ErrInsufficientStock
	}

	line := c.Put(*p, size, quantity)
	return &line, nil
}

// Checkout memindahkan isi keranjang menjadi pengurangan stok plus satu
// record history, lalu mengosongkan keranjang. Tidak ada validasi ulang stok:
// satu sesi, last-writer-wins. Kalau persist gagal di tengah, state memori
// dan disk bisa berbeda; keterbatasan yang didokumentasikan, tidak dikoreksi.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, c *cart.Cart) (*domain.PurchaseRecord, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := c.Lines()
	changes := make([]catalogdomain.StockChange, 0, len(lines))
	items := make([]domain.PurchaseItem, 0, len(lines))
	for _, line := range lines {
		changes = append(changes, catalogdomain.StockChange{
			ProductID: line.Product.ID,
			Size:      line.Size,
			Delta:     -line.Quantity,
		})
		items = append(items, domain.PurchaseItem{
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
			Size:     line.Size,
		})
	}

	if err := s.catalog.ApplyStockChanges(ctx, changes); err != nil {
		logger.Error("Checkout: stock deduction failed", err)
		return nil, err
	}

	rec := domain.NewPurchaseRecord(s.now(), items)
	if err := s.history.Append(ctx, rec); err != nil {
		logger.Error("Checkout: failed to append purchase record", err)
		return nil, err
	}

	c.Clear()
	logger.Info("checkout completed: %d line(s)", len(items))
	return &rec, nil
}

func (s *checkoutServiceImpl) History(ctx context.Context) ([]domain.PurchaseRecord, error) {
	return s.history.List(ctx)
}

// FlattenedItems meratakan seluruh item dari semua record dengan indeks
// global, urutan file. Indeks inilah yang dipilih operator saat retur.
func (s *checkoutServiceImpl) FlattenedItems(ctx context.Context) ([]domain.FlatItem, error) {
	recs, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}
	return flatten(recs), nil
}

func flatten(recs []domain.PurchaseRecord) []domain.FlatItem {
	flat := []domain.FlatItem{}
	for ri, rec := range recs {
		for ii, item := range rec.Items {
			flat = append(flat, domain.FlatItem{
				Index:       len(flat),
				RecordIndex: ri,
				ItemIndex:   ii,
				Timestamp:   rec.Timestamp,
				Item:        item,
			})
		}
	}
	return flat
}

// ReturnItem membalikkan sebagian atau seluruh pembelian: stok naik lagi dan
// record history dikecilkan. Retur penuh menghapus item; record yang jadi
// kosong ikut dihapus; seluruh file history ditulis ulang.
func (s *checkoutServiceImpl) ReturnItem(ctx context.Context, flatIndex, quantity int) (*domain.ReturnResult, error) {
	recs, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}

	flat := flatten(recs)
	if flatIndex < 0 || flatIndex >= len(flat) {
		return nil, ErrInvalidSelection
	}

	target := flat[flatIndex]
	if quantity < 0 || quantity > target.Item.Quantity {
		return nil, ErrInvalidQuantity
	}

	p, err := s.catalog.GetByName(ctx, target.Item.Name)
	if err != nil {
		return nil, err
	}
	if !p.HasSize(target.Item.Size) {
		return nil, ErrSizeMismatch
	}

	if err := s.catalog.ApplyStockChanges(ctx, []catalogdomain.StockChange{{
		ProductID: p.ID,
		Size:      target.Item.Size,
		Delta:     quantity,
	}}); err != nil {
		logger.Error("ReturnItem: stock restore failed", err)
		return nil, err
	}

	res := &domain.ReturnResult{
		ItemName: target.Item.Name,
		Size:     target.Item.Size,
		Quantity: quantity,
	}

	rec := &recs[target.RecordIndex]
	if quantity == target.Item.Quantity {
		rec.Items = append(rec.Items[:target.ItemIndex], rec.Items[target.ItemIndex+1:]...)
		res.ItemRemoved = true
	} else {
		rec.Items[target.ItemIndex].Quantity -= quantity
	}
	if len(rec.Items) == 0 {
		recs = append(recs[:target.RecordIndex], recs[target.RecordIndex+1:]...)
		res.RecordRemoved = true
	}

	if err := s.history.ReplaceAll(ctx, recs); err != nil {
		logger.Error("ReturnItem: failed to rewrite history", err)
		return nil, err
	}

	logger.Info("return completed: %d x %s (%s)", quantity, res.ItemName, res.Size)
	return res, nil
}
