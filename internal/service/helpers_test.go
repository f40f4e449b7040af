package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// setup returns a store seeded with the demo data
func setup(t *testing.T) (*InventoryStore, *fixedClock) {
	t.Helper()
	mem := repository.NewMemoryStore()
	clock := &fixedClock{t: testNow}
	if err := repository.SeedDemoData(context.Background(), mem, clock.Now(), repository.DefaultActivityLogLimit); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repos := NewMemoryRepositories(mem, repository.DefaultActivityLogLimit, repository.DefaultNotificationLimit)
	return NewInventoryStore(repos, repository.NewMemoryTx(mem), nil, WithClock(clock)), clock
}

// setupEmpty returns a store without seed data
func setupEmpty(t *testing.T) *InventoryStore {
	t.Helper()
	mem := repository.NewMemoryStore()
	repos := NewMemoryRepositories(mem, 0, 0)
	return NewInventoryStore(repos, repository.NewMemoryTx(mem), nil, WithClock(&fixedClock{t: testNow}))
}

func productByName(t *testing.T, s *InventoryStore, name string) domain.Product {
	t.Helper()
	page, err := s.GetProducts(context.Background(), ListParams{Search: name, Limit: 100})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	for _, p := range page.Data {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("product %q not found", name)
	return domain.Product{}
}

func allProducts(t *testing.T, s *InventoryStore) []domain.Product {
	t.Helper()
	page, err := s.GetProducts(context.Background(), ListParams{Limit: 1000})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	return page.Data
}

func allOrders(t *testing.T, s *InventoryStore) []domain.Order {
	t.Helper()
	page, err := s.GetOrders(context.Background(), ListParams{Limit: 1000})
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	return page.Data
}

func ptr[T any](v T) *T { return &v }
