package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

func validateProduct(p domain.Product) error {
	if p.CostPrice < 0 || p.SellingPrice < 0 || p.StockLevel < 0 || p.MinStockLevel < 0 {
		return fmt.Errorf("%w: negative price or stock level", ErrInvalidInput)
	}
	if p.MaxStockLevel != nil && *p.MaxStockLevel < 0 {
		return fmt.Errorf("%w: negative max stock level", ErrInvalidInput)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown product status %q", ErrInvalidInput, p.Status)
	}
	return nil
}

// AddProduct присваивает id и дату создания, пишет журнал и уведомление
func (s *InventoryStore) AddProduct(ctx context.Context, in domain.Product) (*domain.Product, error) {
	p := in
	if p.Status == "" {
		p.Status = domain.ProductStatusActive
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	p.ID = newID()
	p.CreatedAt = s.clock.Now()
	p.UpdatedAt = nil

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.products.Create(ctx, &p); err != nil {
			return err
		}
		if err := s.record(ctx, "created", domain.EntityProduct, p.ID, "Created product: "+p.Name); err != nil {
			return err
		}
		return s.notify(ctx, domain.NotificationSuccess, "Product Added",
			fmt.Sprintf("%s has been added to inventory", p.Name))
	})
	if err != nil {
		return nil, err
	}
	s.committed(domain.EntityProduct, "created", p.ID, TopicProducts, TopicActivity, TopicNotifications)
	return &p, nil
}

// UpdateProduct применяет патч. Как и для поставщиков, журнал и уведомление
// пишутся даже если товар не найден.
func (s *InventoryStore) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	var updated *domain.Product
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.GetByID(ctx, id)
		switch {
		case err == nil:
			patch.Apply(p, s.clock.Now())
			if err := validateProduct(*p); err != nil {
				return err
			}
			if err := s.products.Update(ctx, p); err != nil {
				return err
			}
			updated = p
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		if err := s.record(ctx, "updated", domain.EntityProduct, id, "Updated product "+id); err != nil {
			return err
		}
		return s.notify(ctx, domain.NotificationSuccess, "Product Updated", "Product information has been updated")
	})
	if err != nil {
		return nil, err
	}
	s.committed(domain.EntityProduct, "updated", id, TopicProducts, TopicActivity, TopicNotifications)
	return updated, nil
}

// DeleteProduct удаляет товар; неизвестный id: тихий no-op
func (s *InventoryStore) DeleteProduct(ctx context.Context, id string) error {
	var deleted bool
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.deleteProduct(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	if deleted {
		s.committed(domain.EntityProduct, "deleted", id, TopicProducts, TopicActivity, TopicNotifications)
	}
	return nil
}

// deleteProduct must run inside a transaction.
func (s *InventoryStore) deleteProduct(ctx context.Context, id string) (bool, error) {
	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return false, err
	}
	if err := s.record(ctx, "deleted", domain.EntityProduct, id, "Deleted product: "+p.Name); err != nil {
		return false, err
	}
	if err := s.notify(ctx, domain.NotificationInfo, "Product Deleted",
		fmt.Sprintf("%s has been removed from inventory", p.Name)); err != nil {
		return false, err
	}
	return true, nil
}

// BulkDeleteProducts удаляет каждый id как одиночное удаление и добавляет
// итоговое уведомление по числу запрошенных id (включая ненайденные).
func (s *InventoryStore) BulkDeleteProducts(ctx context.Context, ids []string) error {
	deleted := 0
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			ok, err := s.deleteProduct(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				deleted++
			}
		}
		return s.notify(ctx, domain.NotificationSuccess, "Bulk Delete",
			fmt.Sprintf("%d products have been deleted", len(ids)))
	})
	if err != nil {
		return err
	}
	for i := 0; i < deleted; i++ {
		s.metrics.Mutation(domain.EntityProduct, "deleted")
	}
	s.committed(domain.EntityProduct, "bulk_deleted", "", TopicProducts, TopicActivity, TopicNotifications)
	return nil
}

// BulkUpdateProductStatus меняет статус найденных товаров; одно уведомление, без журнала
func (s *InventoryStore) BulkUpdateProductStatus(ctx context.Context, ids []string, status domain.ProductStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown product status %q", ErrInvalidInput, status)
	}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		for _, id := range ids {
			p, err := s.products.GetByID(ctx, id)
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			p.Status = status
			p.UpdatedAt = &now
			if err := s.products.Update(ctx, p); err != nil {
				return err
			}
		}
		return s.notify(ctx, domain.NotificationSuccess, "Bulk Update",
			fmt.Sprintf("%d products have been updated to %s", len(ids), status))
	})
	if err != nil {
		return err
	}
	s.committed(domain.EntityProduct, "bulk_status_updated", "", TopicProducts, TopicNotifications)
	return nil
}

// GetProduct возвращает товар по id
func (s *InventoryStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProducts поиск по name/sku/category с пагинацией
func (s *InventoryStore) GetProducts(ctx context.Context, p ListParams) (Page[domain.Product], error) {
	p = s.normalize(p)
	list, err := s.products.List(ctx, repository.ProductFilter{Search: p.Search})
	if err != nil {
		return Page[domain.Product]{}, err
	}
	return paginate(list, p.Page, p.Limit), nil
}
