package domain

import "time"

// SupplierPatch частичное обновление поставщика; nil означает, что поле не меняется.
type SupplierPatch struct {
	Name          *string         `json:"name"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Address       *string         `json:"address"`
	Category      *string         `json:"category"`
	Status        *SupplierStatus `json:"status"`
	ContactPerson *string         `json:"contact_person"`
}

// Apply переносит заданные поля патча в поставщика
func (p SupplierPatch) Apply(s *Supplier, now time.Time) {
	setString(&s.Name, p.Name)
	setString(&s.Email, p.Email)
	setString(&s.Phone, p.Phone)
	setString(&s.Address, p.Address)
	setString(&s.Category, p.Category)
	setString(&s.ContactPerson, p.ContactPerson)
	if p.Status != nil {
		s.Status = *p.Status
	}
	s.UpdatedAt = &now
}

// ProductPatch частичное обновление товара; nil означает, что поле не меняется.
type ProductPatch struct {
	Name          *string        `json:"name"`
	SKU           *string        `json:"sku"`
	Description   *string        `json:"description"`
	CostPrice     *float64       `json:"cost_price"`
	SellingPrice  *float64       `json:"selling_price"`
	StockLevel    *int64         `json:"stock_level"`
	MinStockLevel *int64         `json:"min_stock_level"`
	MaxStockLevel *int64         `json:"max_stock_level"`
	SupplierID    *string        `json:"supplier_id"`
	Category      *string        `json:"category"`
	Unit          *string        `json:"unit"`
	Barcode       *string        `json:"barcode"`
	Status        *ProductStatus `json:"status"`
}

// Apply переносит заданные поля патча в товар
func (p ProductPatch) Apply(pr *Product, now time.Time) {
	setString(&pr.Name, p.Name)
	setString(&pr.SKU, p.SKU)
	setString(&pr.Description, p.Description)
	setString(&pr.SupplierID, p.SupplierID)
	setString(&pr.Category, p.Category)
	setString(&pr.Unit, p.Unit)
	setString(&pr.Barcode, p.Barcode)
	if p.CostPrice != nil {
		pr.CostPrice = *p.CostPrice
	}
	if p.SellingPrice != nil {
		pr.SellingPrice = *p.SellingPrice
	}
	if p.StockLevel != nil {
		pr.StockLevel = *p.StockLevel
	}
	if p.MinStockLevel != nil {
		pr.MinStockLevel = *p.MinStockLevel
	}
	if p.MaxStockLevel != nil {
		v := *p.MaxStockLevel
		pr.MaxStockLevel = &v
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	pr.UpdatedAt = &now
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
