package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// SupplierFilter параметры фильтрации поставщиков: подстрока по name/email/category
type SupplierFilter struct {
	Search string
}

// ProductFilter параметры фильтрации товаров: подстрока по name/sku/category
type ProductFilter struct {
	Search string
}

// OrderFilter параметры фильтрации заказов: подстрока по номеру заказа
type OrderFilter struct {
	Search string
}

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SupplierFilter) ([]domain.Supplier, error)
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// OrderRepository интерфейс репозитория заказов. Заказы не удаляются.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}

// ActivityLogRepository журнал действий, новые записи первыми
type ActivityLogRepository interface {
	Append(ctx context.Context, l domain.ActivityLog) error
	List(ctx context.Context) ([]domain.ActivityLog, error)
}

// NotificationRepository лента уведомлений, новые первыми
type NotificationRepository interface {
	Append(ctx context.Context, n domain.Notification) error
	List(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// TxManager абстракция транзакции. Для in-memory это глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// matchesAny true, если хотя бы одно поле содержит подстроку
func matchesAny(substr string, fields ...string) bool {
	if substr == "" {
		return true
	}
	for _, f := range fields {
		if containsIgnoreCase(f, substr) {
			return true
		}
	}
	return false
}
