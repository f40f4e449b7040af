package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

const DefaultPageSize = 10

var (
	// ErrInsufficientStock расход больше остатка или товар не найден
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
)

// Clock источник текущего времени; в тестах подменяется фиксированным
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Recorder получает счётчики мутаций (prometheus в проде)
type Recorder interface {
	Mutation(entity domain.EntityType, action string)
	InsufficientStock()
}

type nopRecorder struct{}

func (nopRecorder) Mutation(domain.EntityType, string) {}
func (nopRecorder) InsufficientStock()                 {}

// Repositories набор коллекций, которыми владеет InventoryStore
type Repositories struct {
	Suppliers     repository.SupplierRepository
	Products      repository.ProductRepository
	Orders        repository.OrderRepository
	Activity      repository.ActivityLogRepository
	Notifications repository.NotificationRepository
}

// NewMemoryRepositories собирает in-memory реализации поверх одного хранилища
func NewMemoryRepositories(store *repository.MemoryStore, activityLimit, notificationLimit int) Repositories {
	return Repositories{
		Suppliers:     repository.NewMemorySuppliers(store),
		Products:      repository.NewMemoryProducts(store),
		Orders:        repository.NewMemoryOrders(store),
		Activity:      repository.NewMemoryActivity(store, activityLimit),
		Notifications: repository.NewMemoryNotifications(store, notificationLimit),
	}
}

// InventoryStore состояние панели: поставщики, товары, заказы, журнал и уведомления.
// Все мутации проходят через TxManager, подписчики оповещаются после фиксации.
type InventoryStore struct {
	suppliers     repository.SupplierRepository
	products      repository.ProductRepository
	orders        repository.OrderRepository
	activity      repository.ActivityLogRepository
	notifications repository.NotificationRepository
	tx            repository.TxManager

	logger   *zap.Logger
	clock    Clock
	metrics  Recorder
	pageSize int
	user     domain.User

	hub *hub
}

type Option func(*InventoryStore)

func WithClock(c Clock) Option {
	return func(s *InventoryStore) { s.clock = c }
}

func WithPageSize(n int) Option {
	return func(s *InventoryStore) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func WithCurrentUser(u domain.User) Option {
	return func(s *InventoryStore) { s.user = u }
}

func WithRecorder(r Recorder) Option {
	return func(s *InventoryStore) {
		if r != nil {
			s.metrics = r
		}
	}
}

func NewInventoryStore(repos Repositories, tx repository.TxManager, logger *zap.Logger, opts ...Option) *InventoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &InventoryStore{
		suppliers:     repos.Suppliers,
		products:      repos.Products,
		orders:        repos.Orders,
		activity:      repos.Activity,
		notifications: repos.Notifications,
		tx:            tx,
		logger:        logger,
		clock:         realClock{},
		metrics:       nopRecorder{},
		pageSize:      DefaultPageSize,
		user:          repository.DemoUser(),
		hub:           newHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCurrentUser возвращает единственного текущего пользователя
func (s *InventoryStore) GetCurrentUser() domain.User {
	return s.user
}

func newID() string {
	return uuid.NewString()
}

// record добавляет запись в журнал; вызывается внутри транзакции
func (s *InventoryStore) record(ctx context.Context, action string, entity domain.EntityType, entityID, details string) error {
	return s.activity.Append(ctx, domain.ActivityLog{
		ID:         newID(),
		UserID:     s.user.ID,
		Action:     action,
		EntityType: entity,
		EntityID:   entityID,
		Timestamp:  s.clock.Now(),
		Details:    details,
	})
}

// notify добавляет уведомление; вызывается внутри транзакции
func (s *InventoryStore) notify(ctx context.Context, typ domain.NotificationType, title, message string) error {
	return s.notifications.Append(ctx, domain.Notification{
		ID:        newID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.clock.Now(),
	})
}

// committed фиксирует метрику и рассылает изменение подписчикам
func (s *InventoryStore) committed(entity domain.EntityType, action, entityID string, topics ...Topic) {
	s.metrics.Mutation(entity, action)
	s.logger.Debug("inventory mutation",
		zap.String("entity", string(entity)),
		zap.String("action", action),
		zap.String("entity_id", entityID),
	)
	s.hub.publish(Change{
		Topics:     topics,
		Action:     action,
		EntityType: entity,
		EntityID:   entityID,
		At:         s.clock.Now(),
	})
}
