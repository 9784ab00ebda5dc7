package domain

import (
	"github.com/shopspring/decimal"
)

// Product adalah satu baris katalog. Stok selalu per ukuran: key di Stock dan
// isi Sizes harus identik (bentuk stok flat dari data lama tidak dipakai lagi;
// total diturunkan lewat TotalStock).
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Sizes []string        `json:"sizes"`
	Stock map[string]int  `json:"stock"`
}

// TotalStock menjumlahkan stok semua ukuran.
func (p Product) TotalStock() int {
	total := 0
	for _, qty := range p.Stock {
		total += qty
	}
	return total
}

// HasSize melaporkan apakah ukuran ada di peta stok produk.
func (p Product) HasSize(size string) bool {
	_, ok := p.Stock[size]
	return ok
}

// Clone mengembalikan salinan dalam supaya pemanggil tidak bisa memutasi
// state repository lewat map/slice yang dibagikan.
func (p Product) Clone() Product {
	cp := p
	cp.Sizes = append([]string(nil), p.Sizes...)
	cp.Stock = make(map[string]int, len(p.Stock))
	for size, qty := range p.Stock {
		cp.Stock[size] = qty
	}
	return cp
}

// StockChange adalah satu mutasi stok per (produk, ukuran). Delta negatif
// berarti pengurangan (checkout), positif berarti penambahan (retur).
type StockChange struct {
	ProductID int
	Size      string
	Delta     int
}

// Insights adalah agregat katalog untuk halaman admin.
type Insights struct {
	TotalProducts  int
	TotalStock     int
	InventoryValue decimal.Decimal
}

// StockLevel adalah status stok satu produk terhadap ambang low-stock.
type StockLevel struct {
	Product Product
	Total   int
	Low     bool
}

// AddProductRequest dan UpdateProductRequest adalah input operasi admin.
// Field pointer nil pada update berarti "pertahankan nilai lama".
type AddProductRequest struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"-"`
	// Stock sekaligus menentukan daftar ukuran.
	Stock map[string]int `validate:"required,min=1,dive,gte=0"`
	// Sizes menjaga urutan ukuran seperti yang dimasukkan operator.
	Sizes []string `validate:"required,min=1"`
}

type UpdateProductRequest struct {
	Name  *string
	Price *decimal.Decimal
	// Stock non-nil mengganti seluruh peta stok: ukuran yang tidak
	// dimasukkan ulang kehilangan hitungan lamanya.
	Stock map[string]int `validate:"omitempty,min=1,dive,gte=0"`
	Sizes []string
}
