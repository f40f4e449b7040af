package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

func TestFeeds_CapNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)

	var ids []string
	for i := 0; i < 120; i++ {
		sup, err := s.AddSupplier(ctx, domain.Supplier{Name: fmt.Sprintf("S%03d", i)})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, sup.ID)
	}

	logs, _ := s.GetActivityLogs(ctx)
	if len(logs) != 100 {
		t.Fatalf("expected 100 logs, got %d", len(logs))
	}
	for i, l := range logs {
		if want := ids[len(ids)-1-i]; l.EntityID != want {
			t.Fatalf("log %d: entity %s, want %s", i, l.EntityID, want)
		}
	}

	notifications, _ := s.GetNotifications(ctx)
	if len(notifications) != 50 {
		t.Fatalf("expected 50 notifications, got %d", len(notifications))
	}
	if notifications[0].Message != "S119 has been added successfully" || notifications[49].Message != "S070 has been added successfully" {
		t.Fatalf("unexpected notification window: %q .. %q", notifications[0].Message, notifications[49].Message)
	}
}

func TestNotifications_MarkRead(t *testing.T) {
	ctx := context.Background()
	s := setupEmpty(t)
	_, _ = s.AddSupplier(ctx, domain.Supplier{Name: "A"})
	_, _ = s.AddSupplier(ctx, domain.Supplier{Name: "B"})

	list, _ := s.GetNotifications(ctx)
	if err := s.MarkNotificationAsRead(ctx, list[1].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := s.MarkNotificationAsRead(ctx, "missing"); err != nil {
		t.Fatalf("unknown id must be ignored: %v", err)
	}
	unread, _ := s.UnreadNotifications(ctx)
	if len(unread) != 1 || unread[0].ID != list[0].ID {
		t.Fatalf("unexpected unread: %+v", unread)
	}

	if err := s.MarkAllNotificationsAsRead(ctx); err != nil {
		t.Fatal(err)
	}
	unread, _ = s.UnreadNotifications(ctx)
	if len(unread) != 0 {
		t.Fatalf("expected all read")
	}
}

func TestGetCurrentUser(t *testing.T) {
	s := setupEmpty(t)
	u := s.GetCurrentUser()
	if u.Name == "" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected default user: %+v", u)
	}

	custom := NewInventoryStore(NewMemoryRepositories(nil, 0, 0), nil, nil,
		WithCurrentUser(domain.User{ID: "u1", Name: "Dana", Role: domain.RoleManager}))
	if custom.GetCurrentUser().Name != "Dana" {
		t.Fatalf("current user option ignored")
	}
}
