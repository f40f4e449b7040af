package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

const (
	ProductsSheet = "Products"
	SummarySheet  = "Summary"
)

// Inventory снимок состояния склада для выгрузки
type Inventory struct {
	Products            []domain.Product
	TotalInventoryValue float64
	TotalRevenue        float64
	LowStockCount       int
	GeneratedAt         time.Time
}

var productHeader = []interface{}{
	"id",
	"sku",
	"name",
	"category",
	"unit",
	"cost_price",
	"selling_price",
	"stock_level",
	"min_stock_level",
	"max_stock_level",
	"status",
	"stock_value",
	"low_stock",
}

// InventoryWorkbook пишет xlsx с листами Products и Summary
func InventoryWorkbook(w io.Writer, inv Inventory) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), ProductsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ProductsSheet, "A1", &productHeader); err != nil {
		return fmt.Errorf("products header: %w", err)
	}

	row := 2
	for _, p := range inv.Products {
		var maxStock interface{} = ""
		if p.MaxStockLevel != nil {
			maxStock = *p.MaxStockLevel
		}
		excelRow := []interface{}{
			p.ID,
			p.SKU,
			p.Name,
			p.Category,
			p.Unit,
			p.CostPrice,
			p.SellingPrice,
			p.StockLevel,
			p.MinStockLevel,
			maxStock,
			string(p.Status),
			p.CostPrice * float64(p.StockLevel),
			p.IsLowStock(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ProductsSheet, cell, &excelRow); err != nil {
			return fmt.Errorf("products row %d: %w", row, err)
		}
		row++
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]interface{}{
		{"generated_at", inv.GeneratedAt.Format(time.RFC3339)},
		{"total_products", len(inv.Products)},
		{"total_inventory_value", inv.TotalInventoryValue},
		{"total_revenue", inv.TotalRevenue},
		{"low_stock_count", inv.LowStockCount},
	}
	for i, r := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
