package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

const recentOrdersLimit = 5

// NewOrder входные данные заказа. TotalValue == nil означает, что сумма
// считается по цене товара; явный 0 сохраняется как есть.
type NewOrder struct {
	Type        domain.OrderType
	ProductID   string
	Quantity    int64
	TotalValue  *float64
	Status      domain.OrderStatus
	Notes       string
	ProcessedBy string
}

func validateOrder(in NewOrder) error {
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if in.Type != domain.OrderTypeIn && in.Type != domain.OrderTypeOut {
		return fmt.Errorf("%w: unknown order type %q", ErrInvalidInput, in.Type)
	}
	if in.TotalValue != nil && *in.TotalValue < 0 {
		return fmt.Errorf("%w: total value must not be negative", ErrInvalidInput)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, in.Status)
	}
	return nil
}

// AddOrder проводит приход или расход товара.
//
// OUT списывает остаток и требует, чтобы товар существовал и остатка хватало,
// иначе возвращает ErrInsufficientStock без каких-либо изменений. IN
// пополняет остаток; если товара нет, заказ молча пропускается и
// возвращается (nil, nil).
func (s *InventoryStore) AddOrder(ctx context.Context, in NewOrder) (*domain.Order, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}

	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.GetByID(ctx, in.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			if in.Type == domain.OrderTypeOut {
				return fmt.Errorf("%w: product %s not found", ErrInsufficientStock, in.ProductID)
			}
			return nil
		}
		if err != nil {
			return err
		}

		unitPrice := p.CostPrice
		if in.Type == domain.OrderTypeOut {
			if p.StockLevel < in.Quantity {
				return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, in.Quantity, p.StockLevel)
			}
			p.StockLevel -= in.Quantity
			unitPrice = p.SellingPrice
		} else {
			p.StockLevel += in.Quantity
		}
		now := s.clock.Now()
		p.UpdatedAt = &now
		if err := s.products.Update(ctx, p); err != nil {
			return err
		}

		count, err := s.orders.Count(ctx)
		if err != nil {
			return err
		}
		o := domain.Order{
			BaseModel:   domain.BaseModel{ID: newID(), CreatedAt: now},
			Type:        in.Type,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			TotalValue:  float64(in.Quantity) * unitPrice,
			Status:      in.Status,
			OrderNumber: fmt.Sprintf("ORD-%d-%03d", now.Year(), count+1),
			Notes:       in.Notes,
			ProcessedBy: in.ProcessedBy,
		}
		if in.TotalValue != nil {
			o.TotalValue = *in.TotalValue
		}
		if o.Status == "" {
			o.Status = domain.OrderStatusCompleted
		}
		if o.ProcessedBy == "" {
			o.ProcessedBy = s.user.Name
		}
		if err := s.orders.Create(ctx, &o); err != nil {
			return err
		}

		details := fmt.Sprintf("Created %s order %s: %d x %s", o.Type, o.OrderNumber, o.Quantity, p.Name)
		if err := s.record(ctx, "created", domain.EntityOrder, o.ID, details); err != nil {
			return err
		}
		if err := s.notify(ctx, domain.NotificationSuccess, "Order Processed",
			fmt.Sprintf("Order %s has been processed successfully", o.OrderNumber)); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			s.metrics.InsufficientStock()
			s.logger.Info("order rejected",
				zap.String("product_id", in.ProductID),
				zap.Int64("quantity", in.Quantity),
				zap.Error(err),
			)
		}
		return nil, err
	}
	if created == nil {
		s.logger.Debug("IN order for unknown product skipped", zap.String("product_id", in.ProductID))
		return nil, nil
	}
	s.committed(domain.EntityOrder, "created", created.ID, TopicOrders, TopicProducts, TopicActivity, TopicNotifications)
	return created, nil
}

// GetOrders поиск по номеру заказа с пагинацией
func (s *InventoryStore) GetOrders(ctx context.Context, p ListParams) (Page[domain.Order], error) {
	p = s.normalize(p)
	list, err := s.orders.List(ctx, repository.OrderFilter{Search: p.Search})
	if err != nil {
		return Page[domain.Order]{}, err
	}
	return paginate(list, p.Page, p.Limit), nil
}

// RecentOrders первые пять заказов в порядке коллекции
func (s *InventoryStore) RecentOrders(ctx context.Context) ([]domain.Order, error) {
	list, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	if len(list) > recentOrdersLimit {
		list = list[:recentOrdersLimit]
	}
	return list, nil
}
