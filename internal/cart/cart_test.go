package cart

import (
	"testing"

	"github.com/sakuraclothing/store-cli/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tshirt() domain.Product {
	return domain.Product{
		ID:    1,
		Name:  "T-Shirt",
		Price: decimal.NewFromInt(2500),
		Sizes: []string{"S", "M", "L"},
		Stock: map[string]int{"S": 3, "M": 4, "L": 3},
	}
}

func TestPutReplacesSameProductAndSize(t *testing.T) {
	c := New()

	c.Put(tshirt(), "M", 2)
	c.Put(tshirt(), "M", 4)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity, "re-adding the same (id, size) replaces, not accumulates")
}

func TestPutDifferentSizesAreSeparateLines(t *testing.T) {
	c := New()

	c.Put(tshirt(), "M", 1)
	c.Put(tshirt(), "S", 2)

	assert.Equal(t, 2, c.Len())
}

func TestLinesAreDeterministicallyOrdered(t *testing.T) {
	c := New()
	jeans := domain.Product{ID: 2, Name: "Jeans", Price: decimal.NewFromInt(4890), Sizes: []string{"M"}, Stock: map[string]int{"M": 2}}

	c.Put(jeans, "M", 1)
	c.Put(tshirt(), "S", 1)
	c.Put(tshirt(), "M", 1)

	lines := c.Lines()
	assert.Equal(t, []string{"M", "S", "M"}, []string{lines[0].Size, lines[1].Size, lines[2].Size})
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 2, lines[2].Product.ID)
}

func TestTotalAndClear(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())

	c.Put(tshirt(), "M", 4)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(10000)))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().Equal(decimal.Zero))
}

func TestLineSnapshotIsDetachedFromCatalog(t *testing.T) {
	c := New()
	p := tshirt()

	c.Put(p, "M", 1)
	p.Stock["M"] = 0 // mutasi setelah add tidak boleh bocor ke keranjang

	assert.Equal(t, 4, c.Lines()[0].Product.Stock["M"])
}
