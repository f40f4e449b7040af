package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

func validateSupplier(sup domain.Supplier) error {
	if !sup.Status.Valid() {
		return fmt.Errorf("%w: unknown supplier status %q", ErrInvalidInput, sup.Status)
	}
	return nil
}

// AddSupplier присваивает id и дату создания, пишет журнал и уведомление
func (s *InventoryStore) AddSupplier(ctx context.Context, in domain.Supplier) (*domain.Supplier, error) {
	sup := in
	if sup.Status == "" {
		sup.Status = domain.SupplierStatusActive
	}
	if err := validateSupplier(sup); err != nil {
		return nil, err
	}
	sup.ID = newID()
	sup.CreatedAt = s.clock.Now()
	sup.UpdatedAt = nil

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.suppliers.Create(ctx, &sup); err != nil {
			return err
		}
		if err := s.record(ctx, "created", domain.EntitySupplier, sup.ID, "Created supplier: "+sup.Name); err != nil {
			return err
		}
		return s.notify(ctx, domain.NotificationSuccess, "Supplier Added",
			fmt.Sprintf("%s has been added successfully", sup.Name))
	})
	if err != nil {
		return nil, err
	}
	s.committed(domain.EntitySupplier, "created", sup.ID, TopicSuppliers, TopicActivity, TopicNotifications)
	return &sup, nil
}

// UpdateSupplier применяет патч. Для неизвестного id сущность не меняется,
// но запись в журнале и уведомление всё равно создаются.
func (s *InventoryStore) UpdateSupplier(ctx context.Context, id string, patch domain.SupplierPatch) (*domain.Supplier, error) {
	var updated *domain.Supplier
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sup, err := s.suppliers.GetByID(ctx, id)
		switch {
		case err == nil:
			patch.Apply(sup, s.clock.Now())
			if err := validateSupplier(*sup); err != nil {
				return err
			}
			if err := s.suppliers.Update(ctx, sup); err != nil {
				return err
			}
			updated = sup
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		if err := s.record(ctx, "updated", domain.EntitySupplier, id, "Updated supplier "+id); err != nil {
			return err
		}
		return s.notify(ctx, domain.NotificationSuccess, "Supplier Updated", "Supplier information has been updated")
	})
	if err != nil {
		return nil, err
	}
	s.committed(domain.EntitySupplier, "updated", id, TopicSuppliers, TopicActivity, TopicNotifications)
	return updated, nil
}

// DeleteSupplier удаляет поставщика; неизвестный id: тихий no-op без журнала
func (s *InventoryStore) DeleteSupplier(ctx context.Context, id string) error {
	deleted := false
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sup, err := s.suppliers.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.suppliers.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.record(ctx, "deleted", domain.EntitySupplier, id, "Deleted supplier: "+sup.Name); err != nil {
			return err
		}
		deleted = true
		return s.notify(ctx, domain.NotificationInfo, "Supplier Deleted",
			fmt.Sprintf("%s has been removed", sup.Name))
	})
	if err != nil {
		return err
	}
	if deleted {
		s.committed(domain.EntitySupplier, "deleted", id, TopicSuppliers, TopicActivity, TopicNotifications)
	}
	return nil
}

// GetSupplier возвращает поставщика по id
func (s *InventoryStore) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

// GetSuppliers поиск по name/email/category с пагинацией
func (s *InventoryStore) GetSuppliers(ctx context.Context, p ListParams) (Page[domain.Supplier], error) {
	p = s.normalize(p)
	list, err := s.suppliers.List(ctx, repository.SupplierFilter{Search: p.Search})
	if err != nil {
		return Page[domain.Supplier]{}, err
	}
	return paginate(list, p.Page, p.Limit), nil
}
