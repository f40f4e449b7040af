package service

import (
	"sync"
	"time"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

// Topic коллекция или агрегат, затронутые мутацией
type Topic string

const (
	TopicSuppliers     Topic = "suppliers"
	TopicProducts      Topic = "products"
	TopicOrders        Topic = "orders"
	TopicActivity      Topic = "activity"
	TopicNotifications Topic = "notifications"
)

// Change событие для подписчиков; приходит только после завершения мутации
type Change struct {
	Topics     []Topic           `json:"topics"`
	Action     string            `json:"action"`
	EntityType domain.EntityType `json:"entity_type,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	At         time.Time         `json:"at"`
}

const subscriberBuffer = 64

type hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Change
}

func newHub() *hub {
	return &hub{subs: make(map[int]chan Change)}
}

// publish never blocks: a full subscriber buffer drops the event and the
// subscriber picks up current state on its next read.
func (h *hub) publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// Subscribe возвращает канал изменений и функцию отписки.
// После отписки канал закрывается.
func (s *InventoryStore) Subscribe() (<-chan Change, func()) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Change, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
