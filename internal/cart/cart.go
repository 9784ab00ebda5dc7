// Package cart berisi keranjang belanja per sesi proses. Murni in-memory:
// isinya hilang saat proses berhenti dan dikosongkan utuh saat checkout.
package cart

import (
	"sort"

	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// LineKey mengidentifikasi satu baris keranjang: produk + ukuran.
type LineKey struct {
	ProductID int
	Size      string
}

// Line adalah satu baris keranjang. Product adalah snapshot saat item
// ditambahkan, bukan referensi hidup ke katalog.
type Line struct {
	Product  domain.Product
	Size     string
	Quantity int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	lines map[LineKey]Line
}

func New() *Cart {
	return &Cart{lines: make(map[LineKey]Line)}
}

// Put menyisipkan atau MENIMPA baris untuk (produk, ukuran). Menambahkan
// (id, ukuran) yang sama dua kali mengganti kuantitas, bukan menjumlahkan.
func (c *Cart) Put(p domain.Product, size string, quantity int) Line {
	line := Line{Product: p.Clone(), Size: size, Quantity: quantity}
	c.lines[LineKey{ProductID: p.ID, Size: size}] = line
	return line
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines mengembalikan baris terurut (id produk, lalu ukuran) supaya tampilan
// dan record pembelian deterministik meski backing store-nya map.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Product.ID != out[j].Product.ID {
			return out[i].Product.ID < out[j].Product.ID
		}
		return out[i].Size < out[j].Size
	})
	return out
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Clear mengosongkan keranjang sebagai satu operasi.
func (c *Cart) Clear() {
	c.lines = make(map[LineKey]Line)
}
