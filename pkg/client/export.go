package client

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/velvetcart/admin-api/internal/application/dto"
)

var csvHeader = []string{"sku", "name", "brand", "category", "total_stock", "low_stock_threshold", "stock_value", "status"}

// ExportCSV writes the overview rows as CSV, one line per product, with a
// header row. Variant detail is collapsed into the total.
func ExportCSV(w io.Writer, items []dto.InventoryItemDTO) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			item.SKU,
			item.Name,
			item.Brand,
			item.Category,
			strconv.Itoa(item.TotalStock),
			strconv.Itoa(item.LowStockThreshold),
			item.StockValue.String(),
			item.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
