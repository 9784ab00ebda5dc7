package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/sakuraclothing/store-cli/internal/catalog/domain"
	orderdomain "github.com/sakuraclothing/store-cli/internal/order/domain"
	userdomain "github.com/sakuraclothing/store-cli/internal/user/domain"
)

var (
	titleColor  = color.New(color.FgHiMagenta, color.Bold)
	promptColor = color.New(color.Bold)
	okColor     = color.New(color.FgBlue)
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	lowColor    = color.New(color.FgRed, color.Bold)
	fineColor   = color.New(color.FgGreen)
)

const currency = "Ұ"

func money(d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

func title(text string) {
	titleColor.Printf("\n---------- %s ----------\n\n", text)
}

func sayOK(format string, v ...interface{}) {
	okColor.Printf(format+"\n", v...)
}

func sayErr(format string, v ...interface{}) {
	errColor.Printf(format+"\n", v...)
}

func sayWarn(format string, v ...interface{}) {
	warnColor.Printf(format+"\n", v...)
}

func renderCatalogTable(products []catalogdomain.Product) {
	if len(products) == 0 {
		sayErr("The catalog is empty.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Price", "Sizes", "Stock"})
	for _, p := range products {
		table.Append([]string{
			strconv.Itoa(p.ID),
			p.Name,
			money(p.Price),
			strings.Join(p.Sizes, ", "),
			strconv.Itoa(p.TotalStock()),
		})
	}
	table.Render()
}

// renderProductRow adalah tampilan satu baris untuk hasil search/filter,
// dengan rincian stok per ukuran.
func renderProductRow(p catalogdomain.Product) {
	parts := make([]string, 0, len(p.Sizes))
	for _, size := range p.Sizes {
		parts = append(parts, fmt.Sprintf("%s:%d", size, p.Stock[size]))
	}
	fmt.Printf("%d: %s - %s | Sizes: %s | Stock: %s\n",
		p.ID, p.Name, money(p.Price), strings.Join(p.Sizes, ", "), strings.Join(parts, " "))
}

func renderUsersTable(accounts []userdomain.Account) {
	if len(accounts) == 0 {
		sayErr("No users found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Username", "Role", "Registered"})
	for _, a := range accounts {
		registered := a.RegisteredDate
		if registered == "" {
			registered = "-"
		}
		table.Append([]string{a.Username, a.Role, registered})
	}
	table.Render()
}

func renderHistory(recs []orderdomain.PurchaseRecord) {
	for _, rec := range recs {
		fmt.Printf("%s - Date: %s\n", recordLabel(rec.Type), rec.Timestamp)
		for _, item := range rec.Items {
			fmt.Printf(" - %s x %d (Size %s) @ %s\n", item.Name, item.Quantity, item.Size, money(item.Price))
		}
		fmt.Println()
	}
}

func recordLabel(t orderdomain.RecordType) string {
	switch t {
	case orderdomain.TypeReturn:
		return "Return"
	default:
		return "Purchase"
	}
}

func renderFlatItems(flat []orderdomain.FlatItem) {
	lastRecord := -1
	for _, fi := range flat {
		if fi.RecordIndex != lastRecord {
			fmt.Printf("Date: %s\n", fi.Timestamp)
			lastRecord = fi.RecordIndex
		}
		fmt.Printf(" [%d] %s x %d (Size %s) @ %s\n",
			fi.Index, fi.Item.Name, fi.Item.Quantity, fi.Item.Size, money(fi.Item.Price))
	}
	fmt.Println()
}

func renderStockLevels(levels []catalogdomain.StockLevel) {
	for _, lv := range levels {
		status := fineColor.Sprint("Enough Stock Available")
		if lv.Low {
			status = lowColor.Sprint("Low Stock!!!")
		}
		fmt.Printf("%s | Stock %d -> %s\n", lv.Product.Name, lv.Total, status)
	}
}
