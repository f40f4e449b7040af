package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

// DemoUser пользователь по умолчанию
func DemoUser() domain.User {
	return domain.User{
		ID:    "user-admin",
		Name:  "Admin User",
		Email: "admin@stockflow.local",
		Role:  domain.RoleAdmin,
	}
}

// SeedDemoData заполняет пустое хранилище стартовыми данными панели.
// activityLimit тот же, что у журнала сервиса; уведомлений при старте нет.
func SeedDemoData(ctx context.Context, store *MemoryStore, now time.Time, activityLimit int) error {
	suppliers := NewMemorySuppliers(store)
	products := NewMemoryProducts(store)
	orders := NewMemoryOrders(store)
	activity := NewMemoryActivity(store, activityLimit)

	created := now.AddDate(0, -2, 0)
	techID := uuid.NewString()
	officeID := uuid.NewString()

	seedSuppliers := []domain.Supplier{
		{
			BaseModel:     domain.BaseModel{ID: techID, CreatedAt: created},
			Name:          "TechCorp Solutions",
			Email:         "contact@techcorp.com",
			Phone:         "+1-555-0123",
			Address:       "123 Tech Street, Silicon Valley, CA",
			Category:      "Electronics",
			Status:        domain.SupplierStatusActive,
			ContactPerson: "John Smith",
		},
		{
			BaseModel:     domain.BaseModel{ID: officeID, CreatedAt: created},
			Name:          "Office Supplies Co",
			Email:         "sales@officesupplies.com",
			Phone:         "+1-555-0456",
			Address:       "456 Business Ave, New York, NY",
			Category:      "Office Supplies",
			Status:        domain.SupplierStatusActive,
			ContactPerson: "Sarah Johnson",
		},
	}
	for i := range seedSuppliers {
		if err := suppliers.Create(ctx, &seedSuppliers[i]); err != nil {
			return fmt.Errorf("seed supplier: %w", err)
		}
	}

	headphonesMax := int64(500)
	headphones := domain.Product{
		BaseModel:     domain.BaseModel{ID: uuid.NewString(), CreatedAt: created},
		Name:          "Wireless Bluetooth Headphones",
		SKU:           "WBH-001",
		Description:   "High-quality wireless headphones with noise cancellation",
		CostPrice:     45,
		SellingPrice:  89.99,
		StockLevel:    150,
		MinStockLevel: 20,
		MaxStockLevel: &headphonesMax,
		SupplierID:    techID,
		Category:      "Electronics",
		Unit:          "piece",
		Barcode:       "1234567890123",
		Status:        domain.ProductStatusActive,
	}
	cable := domain.Product{
		BaseModel:     domain.BaseModel{ID: uuid.NewString(), CreatedAt: created},
		Name:          "USB-C Cable",
		SKU:           "USB-C-002",
		Description:   "Fast charging USB-C cable, 2 meters",
		CostPrice:     5,
		SellingPrice:  12.99,
		StockLevel:    300,
		MinStockLevel: 50,
		SupplierID:    techID,
		Category:      "Electronics",
		Unit:          "piece",
		Status:        domain.ProductStatusActive,
	}
	paper := domain.Product{
		BaseModel:     domain.BaseModel{ID: uuid.NewString(), CreatedAt: created},
		Name:          "A4 Paper",
		SKU:           "PAP-A4-500",
		Description:   "Premium white A4 paper, 500 sheets",
		CostPrice:     3.5,
		SellingPrice:  7.99,
		StockLevel:    8,
		MinStockLevel: 20,
		SupplierID:    officeID,
		Category:      "Office Supplies",
		Unit:          "ream",
		Status:        domain.ProductStatusActive,
	}
	for _, p := range []*domain.Product{&headphones, &cable, &paper} {
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product: %w", err)
		}
	}

	orderAt := now.AddDate(0, 0, -3)
	order := domain.Order{
		BaseModel:   domain.BaseModel{ID: uuid.NewString(), CreatedAt: orderAt},
		Type:        domain.OrderTypeOut,
		ProductID:   headphones.ID,
		Quantity:    5,
		TotalValue:  449.95,
		Status:      domain.OrderStatusCompleted,
		OrderNumber: fmt.Sprintf("ORD-%d-001", orderAt.Year()),
		Notes:       "Bulk order for corporate client",
		ProcessedBy: DemoUser().Name,
	}
	if err := orders.Create(ctx, &order); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}

	return activity.Append(ctx, domain.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     DemoUser().ID,
		Action:     "created",
		EntityType: domain.EntityProduct,
		EntityID:   headphones.ID,
		Timestamp:  created,
		Details:    "Created product: " + headphones.Name,
	})
}
