package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordType string

const (
	TypePurchase RecordType = "purchase"
	TypeReturn   RecordType = "return"
)

// TimestampLayout mengikuti format file history yang sudah ada
// (mm/dd/yyyy jam 12-an).
const TimestampLayout = "01/02/2006 03:04:05 PM"

// PurchaseItem adalah snapshot satu baris pembelian: nama dan harga saat
// transaksi, bukan referensi ke katalog.
type PurchaseItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
}

// PurchaseRecord adalah satu transaksi di log history. Log ini append-mostly:
// retur boleh mengecilkan item, menghapus item, atau menghapus record yang
// jadi kosong.
type PurchaseRecord struct {
	Timestamp string         `json:"timestamp"`
	Type      RecordType     `json:"type"`
	Items     []PurchaseItem `json:"items"`
}

func NewPurchaseRecord(now time.Time, items []PurchaseItem) PurchaseRecord {
	return PurchaseRecord{
		Timestamp: now.Format(TimestampLayout),
		Type:      TypePurchase,
		Items:     items,
	}
}

// FlatItem adalah satu item history dalam tampilan rata ber-indeks global,
// dipakai alur retur untuk memilih item lintas record.
type FlatItem struct {
	Index       int
	RecordIndex int
	ItemIndex   int
	Timestamp   string
	Item        PurchaseItem
}

// ReturnResult merangkum hasil retur yang sukses.
type ReturnResult struct {
	ItemName      string
	Size          string
	Quantity      int
	ItemRemoved   bool
	RecordRemoved bool
}
