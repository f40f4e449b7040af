package service

import (
	"context"
	"errors"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

// GetActivityLogs журнал действий, новые первыми
func (s *InventoryStore) GetActivityLogs(ctx context.Context) ([]domain.ActivityLog, error) {
	return s.activity.List(ctx)
}

// GetNotifications уведомления, новые первыми
func (s *InventoryStore) GetNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}

// UnreadNotifications непрочитанные уведомления
func (s *InventoryStore) UnreadNotifications(ctx context.Context) ([]domain.Notification, error) {
	list, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(list))
	for _, n := range list {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkNotificationAsRead помечает уведомление прочитанным; неизвестный id игнорируется
func (s *InventoryStore) MarkNotificationAsRead(ctx context.Context, id string) error {
	err := s.notifications.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	s.hub.publish(Change{Topics: []Topic{TopicNotifications}, Action: "read", EntityID: id, At: s.clock.Now()})
	return nil
}

// MarkAllNotificationsAsRead помечает прочитанными все уведомления
func (s *InventoryStore) MarkAllNotificationsAsRead(ctx context.Context) error {
	if err := s.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	s.hub.publish(Change{Topics: []Topic{TopicNotifications}, Action: "read_all", At: s.clock.Now()})
	return nil
}
