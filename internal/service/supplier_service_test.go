package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

func TestSupplier_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)

	sup, err := s.AddSupplier(ctx, domain.Supplier{Name: "Acme", Email: "sales@acme.io", Category: "Tools"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if sup.ID == "" || sup.Status != domain.SupplierStatusActive || sup.UpdatedAt != nil {
		t.Fatalf("unexpected created supplier: %+v", sup)
	}

	status := domain.SupplierStatusInactive
	up, err := s.UpdateSupplier(ctx, sup.ID, domain.SupplierPatch{Phone: ptr("+1-555-0000"), Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if up.Phone != "+1-555-0000" || up.Status != domain.SupplierStatusInactive || up.Name != "Acme" || up.UpdatedAt == nil {
		t.Fatalf("patch not merged: %+v", up)
	}

	if err := s.DeleteSupplier(ctx, sup.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetSupplier(ctx, sup.ID); err == nil {
		t.Fatalf("expected not found after delete")
	}

	logs, _ := s.GetActivityLogs(ctx)
	actions := []string{}
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	if len(actions) != 3 || actions[0] != "deleted" || actions[1] != "updated" || actions[2] != "created" {
		t.Fatalf("unexpected log order: %v", actions)
	}
	notifications, _ := s.GetNotifications(ctx)
	if len(notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifications))
	}
}

func TestSupplier_UnknownIDs(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)

	up, err := s.UpdateSupplier(ctx, "missing", domain.SupplierPatch{Name: ptr("X")})
	if err != nil || up != nil {
		t.Fatalf("expected silent update, got %v %v", up, err)
	}
	logs, _ := s.GetActivityLogs(ctx)
	if len(logs) != 1 {
		t.Fatalf("update of unknown id still logs, got %d", len(logs))
	}

	if err := s.DeleteSupplier(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	logs, _ = s.GetActivityLogs(ctx)
	notifications, _ := s.GetNotifications(ctx)
	if len(logs) != 1 || len(notifications) != 1 {
		t.Fatalf("delete of unknown id must be silent")
	}
}

func TestGetSuppliers_Search(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)

	page, err := s.GetSuppliers(ctx, ListParams{Search: "OFFICE"})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || page.Data[0].Name != "Office Supplies Co" {
		t.Fatalf("unexpected search result: %+v", page)
	}

	page, _ = s.GetSuppliers(ctx, ListParams{Search: "techcorp.com"})
	if page.Total != 1 {
		t.Fatalf("email search failed: %+v", page)
	}

	page, _ = s.GetSuppliers(ctx, ListParams{})
	if page.Total != 2 || page.Page != 1 || page.Limit != DefaultPageSize || page.TotalPages != 1 {
		t.Fatalf("unexpected default page: %+v", page)
	}
}

func TestSupplier_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	bogus := domain.SupplierStatus("archived")

	if _, err := s.AddSupplier(ctx, domain.Supplier{Name: "A", Status: bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status on add, got %v", err)
	}

	sup, err := s.AddSupplier(ctx, domain.Supplier{Name: "B"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateSupplier(ctx, sup.ID, domain.SupplierPatch{Status: &bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status on update, got %v", err)
	}
	got, _ := s.GetSupplier(ctx, sup.ID)
	if got.Status != domain.SupplierStatusActive || got.UpdatedAt != nil {
		t.Fatalf("rejected patch must not apply: %+v", got)
	}
}
