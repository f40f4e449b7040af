package domain

import "time"

// BaseModel общие поля всех хранимых сущностей
type BaseModel struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SupplierStatus статус поставщика
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

func (s SupplierStatus) Valid() bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}

// Supplier поставщик товаров
type Supplier struct {
	BaseModel
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Category      string         `json:"category"`
	Status        SupplierStatus `json:"status"`
	ContactPerson string         `json:"contact_person,omitempty"`
}

// ProductStatus статус товара
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Valid проверяет, что статус известен
func (s ProductStatus) Valid() bool {
	return s == ProductStatusActive || s == ProductStatusDiscontinued
}

// Product товар на складе
type Product struct {
	BaseModel
	Name          string        `json:"name"`
	SKU           string        `json:"sku"`
	Description   string        `json:"description,omitempty"`
	CostPrice     float64       `json:"cost_price"`
	SellingPrice  float64       `json:"selling_price"`
	StockLevel    int64         `json:"stock_level"`
	MinStockLevel int64         `json:"min_stock_level"`
	MaxStockLevel *int64        `json:"max_stock_level,omitempty"`
	SupplierID    string        `json:"supplier_id"`
	Category      string        `json:"category"`
	Unit          string        `json:"unit"`
	Barcode       string        `json:"barcode,omitempty"`
	Status        ProductStatus `json:"status"`
}

// IsLowStock остаток на уровне минимума или ниже
func (p Product) IsLowStock() bool {
	return p.StockLevel <= p.MinStockLevel
}

// OrderType направление движения товара
type OrderType string

const (
	OrderTypeIn  OrderType = "IN"
	OrderTypeOut OrderType = "OUT"
)

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order приход (IN) или расход (OUT) товара
type Order struct {
	BaseModel
	Type        OrderType   `json:"type"`
	ProductID   string      `json:"product_id"`
	Quantity    int64       `json:"quantity"`
	TotalValue  float64     `json:"total_value"`
	Status      OrderStatus `json:"status"`
	OrderNumber string      `json:"order_number"`
	Notes       string      `json:"notes,omitempty"`
	ProcessedBy string      `json:"processed_by"`
}

// EntityType тип сущности в журнале действий
type EntityType string

const (
	EntitySupplier EntityType = "supplier"
	EntityProduct  EntityType = "product"
	EntityOrder    EntityType = "order"
)

// ActivityLog запись журнала действий
type ActivityLog struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Timestamp  time.Time  `json:"timestamp"`
	Details    string     `json:"details"`
}

// NotificationType уровень уведомления
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification уведомление для пользователя
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

// Role роль пользователя
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// User текущий пользователь панели
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
