package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

func TestProduct_Add(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	p, err := s.AddProduct(ctx, domain.Product{Name: "Aspirin", SKU: "ASP-1", CostPrice: 1, SellingPrice: 2, StockLevel: 10, Category: "Pharmacy"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at assigned")
	}
	if p.Status != domain.ProductStatusActive {
		t.Fatalf("expected default status active, got %v", p.Status)
	}

	logs, _ := s.GetActivityLogs(ctx)
	if len(logs) != 1 || logs[0].Action != "created" || logs[0].EntityType != domain.EntityProduct || logs[0].EntityID != p.ID {
		t.Fatalf("unexpected logs: %+v", logs)
	}
	notifications, _ := s.GetNotifications(ctx)
	if len(notifications) != 1 || notifications[0].Type != domain.NotificationSuccess || notifications[0].Read {
		t.Fatalf("unexpected notifications: %+v", notifications)
	}
}

func TestProduct_Add_Invalid(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	if _, err := s.AddProduct(ctx, domain.Product{Name: "N", CostPrice: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := s.AddProduct(ctx, domain.Product{Name: "N", StockLevel: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProduct_Update(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	p, _ := s.AddProduct(ctx, domain.Product{Name: "A", SKU: "S1", CostPrice: 10, StockLevel: 5})

	up, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{Name: ptr("A+"), StockLevel: ptr(int64(7))})
	if err != nil {
		t.Fatalf("update err: %v", err)
	}
	if up.Name != "A+" || up.StockLevel != 7 || up.SKU != "S1" || up.CostPrice != 10 {
		t.Fatalf("patch not merged: %+v", up)
	}
	if up.UpdatedAt == nil || up.CreatedAt != p.CreatedAt || up.ID != p.ID {
		t.Fatalf("unexpected timestamps: %+v", up)
	}

	if _, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{StockLevel: ptr(int64(-3))}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected negative stock rejected, got %v", err)
	}
	got, _ := s.GetProduct(ctx, p.ID)
	if got.StockLevel != 7 {
		t.Fatalf("rejected patch must not apply: %v", got.StockLevel)
	}
}

func TestProduct_UpdateUnknownStillLogs(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	up, err := s.UpdateProduct(ctx, "missing", domain.ProductPatch{Name: ptr("X")})
	if err != nil || up != nil {
		t.Fatalf("expected silent success, got %v %v", up, err)
	}
	logs, _ := s.GetActivityLogs(ctx)
	notifications, _ := s.GetNotifications(ctx)
	if len(logs) != 1 || logs[0].EntityID != "missing" || len(notifications) != 1 {
		t.Fatalf("expected log and notification for unknown id")
	}
	if n, _ := s.TotalProducts(ctx); n != 0 {
		t.Fatalf("no product should be created")
	}
}

func TestProduct_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	p, _ := s.AddProduct(ctx, domain.Product{Name: "A", SKU: "S1"})

	if err := s.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("delete err: %v", err)
	}
	if _, err := s.GetProduct(ctx, p.ID); err == nil {
		t.Fatalf("expected not found after delete")
	}
	logs, _ := s.GetActivityLogs(ctx)
	if len(logs) != 2 || logs[0].Action != "deleted" {
		t.Fatalf("expected delete log first: %+v", logs)
	}

	// unknown id: no error, no log, no notification
	notificationsBefore, _ := s.GetNotifications(ctx)
	if err := s.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	logsAfter, _ := s.GetActivityLogs(ctx)
	notificationsAfter, _ := s.GetNotifications(ctx)
	if len(logsAfter) != 2 || len(notificationsAfter) != len(notificationsBefore) {
		t.Fatalf("delete of unknown id must be silent")
	}
}

func TestProduct_BulkDelete(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	var ids []string
	for i := 0; i < 3; i++ {
		p, _ := s.AddProduct(ctx, domain.Product{Name: fmt.Sprintf("P%d", i)})
		ids = append(ids, p.ID)
	}
	logsBefore, _ := s.GetActivityLogs(ctx)
	notificationsBefore, _ := s.GetNotifications(ctx)

	if err := s.BulkDeleteProducts(ctx, []string{ids[0], ids[2], "missing"}); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if n, _ := s.TotalProducts(ctx); n != 1 {
		t.Fatalf("expected 1 product left, got %d", n)
	}
	logs, _ := s.GetActivityLogs(ctx)
	if len(logs)-len(logsBefore) != 2 {
		t.Fatalf("expected per-item logs for found ids only")
	}
	notifications, _ := s.GetNotifications(ctx)
	if len(notifications)-len(notificationsBefore) != 3 {
		t.Fatalf("expected 2 item notifications plus summary")
	}
	if notifications[0].Title != "Bulk Delete" || notifications[0].Message != "3 products have been deleted" {
		t.Fatalf("unexpected summary: %+v", notifications[0])
	}
}

func TestProduct_BulkUpdateStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	products := allProducts(t, s)
	logsBefore, _ := s.GetActivityLogs(ctx)

	ids := []string{products[0].ID, products[1].ID, "missing"}
	if err := s.BulkUpdateProductStatus(ctx, ids, domain.ProductStatusDiscontinued); err != nil {
		t.Fatalf("bulk status: %v", err)
	}
	for i, p := range allProducts(t, s) {
		want := domain.ProductStatusActive
		if i < 2 {
			want = domain.ProductStatusDiscontinued
		}
		if p.Status != want {
			t.Fatalf("product %s status %v, want %v", p.Name, p.Status, want)
		}
		if i < 2 && p.UpdatedAt == nil {
			t.Fatalf("expected updated_at on %s", p.Name)
		}
	}
	logs, _ := s.GetActivityLogs(ctx)
	if len(logs) != len(logsBefore) {
		t.Fatalf("bulk status must not log")
	}
	notifications, _ := s.GetNotifications(ctx)
	if len(notifications) != 1 {
		t.Fatalf("expected single bulk notification, got %d", len(notifications))
	}

	if err := s.BulkUpdateProductStatus(ctx, ids, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestProduct_Pagination(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	for i := 0; i < 23; i++ {
		cat := "Tools"
		if i%2 == 0 {
			cat = "Garden"
		}
		if _, err := s.AddProduct(ctx, domain.Product{Name: fmt.Sprintf("Item %02d", i), SKU: fmt.Sprintf("SKU-%02d", i), Category: cat}); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		search      string
		page, limit int
		wantTotal   int
		wantPages   int
		wantLen     int
	}{
		{"", 1, 0, 23, 3, 10}, // default limit
		{"", 3, 10, 23, 3, 3},
		{"", 4, 10, 23, 3, 0}, // beyond range
		{"", 0, 5, 23, 5, 5},  // page defaults to 1
		{"garden", 2, 5, 12, 3, 5},
		{"garden", 3, 5, 12, 3, 2},
		{"nothing", 1, 5, 0, 0, 0},
	}
	for _, c := range cases {
		page, err := s.GetProducts(ctx, ListParams{Search: c.search, Page: c.page, Limit: c.limit})
		if err != nil {
			t.Fatal(err)
		}
		if page.Total != c.wantTotal || page.TotalPages != c.wantPages || len(page.Data) != c.wantLen {
			t.Fatalf("%+v: got total=%d pages=%d len=%d", c, page.Total, page.TotalPages, len(page.Data))
		}
		if page.Data == nil {
			t.Fatalf("%+v: data must not be nil", c)
		}
	}

	page, _ := s.GetProducts(ctx, ListParams{Page: 2, Limit: 10})
	if page.Data[0].Name != "Item 10" {
		t.Fatalf("unexpected first item on page 2: %s", page.Data[0].Name)
	}
}

func TestProduct_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	paper := productByName(t, s, "A4 Paper")
	logsBefore, _ := s.GetActivityLogs(ctx)

	bogus := domain.ProductStatus("bogus")
	if _, err := s.UpdateProduct(ctx, paper.ID, domain.ProductPatch{Status: &bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status on update, got %v", err)
	}
	if got := productByName(t, s, "A4 Paper").Status; got != domain.ProductStatusActive {
		t.Fatalf("status changed to %q", got)
	}
	logsAfter, _ := s.GetActivityLogs(ctx)
	if len(logsAfter) != len(logsBefore) {
		t.Fatalf("rejected update must not log")
	}

	if _, err := s.AddProduct(ctx, domain.Product{Name: "N", Status: bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status on add, got %v", err)
	}
}
