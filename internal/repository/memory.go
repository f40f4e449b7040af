package repository

import (
	"context"
	"sync"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

const (
	DefaultActivityLogLimit  = 100
	DefaultNotificationLimit = 50
)

// MemoryStore объединённое in-memory хранилище всех коллекций панели.
// Коллекции хранятся срезами, порядок вставки значим для выдачи и пагинации.
type MemoryStore struct {
	mu            sync.RWMutex
	suppliers     []domain.Supplier
	products      []domain.Product
	orders        []domain.Order
	logs          []domain.ActivityLog
	notifications []domain.Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		suppliers:     make([]domain.Supplier, 0),
		products:      make([]domain.Product, 0),
		orders:        make([]domain.Order, 0),
		logs:          make([]domain.ActivityLog, 0),
		notifications: make([]domain.Notification, 0),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var (
	_ SupplierRepository     = (*MemorySuppliers)(nil)
	_ ProductRepository      = (*MemoryProducts)(nil)
	_ OrderRepository        = (*MemoryOrders)(nil)
	_ ActivityLogRepository  = (*MemoryActivity)(nil)
	_ NotificationRepository = (*MemoryNotifications)(nil)
	_ TxManager              = (*MemoryTx)(nil)
)

// SupplierRepository implementation
type MemorySuppliers struct{ store *MemoryStore }

func NewMemorySuppliers(store *MemoryStore) *MemorySuppliers { return &MemorySuppliers{store: store} }

func (ms *MemorySuppliers) indexOf(id string) int {
	for i := range ms.store.suppliers {
		if ms.store.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

func (ms *MemorySuppliers) Create(ctx context.Context, s *domain.Supplier) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	ms.store.suppliers = append(ms.store.suppliers, *s)
	return nil
}

func (ms *MemorySuppliers) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	i := ms.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	// return copy
	cp := ms.store.suppliers[i]
	return &cp, nil
}

func (ms *MemorySuppliers) Update(ctx context.Context, s *domain.Supplier) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	i := ms.indexOf(s.ID)
	if i < 0 {
		return ErrNotFound
	}
	ms.store.suppliers[i] = *s
	return nil
}

func (ms *MemorySuppliers) Delete(ctx context.Context, id string) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	i := ms.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	ms.store.suppliers = append(ms.store.suppliers[:i], ms.store.suppliers[i+1:]...)
	return nil
}

func (ms *MemorySuppliers) List(ctx context.Context, f SupplierFilter) ([]domain.Supplier, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	out := make([]domain.Supplier, 0, len(ms.store.suppliers))
	for _, s := range ms.store.suppliers {
		if !matchesAny(f.Search, s.Name, s.Email, s.Category) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// ProductRepository implementation
type MemoryProducts struct{ store *MemoryStore }

func NewMemoryProducts(store *MemoryStore) *MemoryProducts { return &MemoryProducts{store: store} }

func (mp *MemoryProducts) indexOf(id string) int {
	for i := range mp.store.products {
		if mp.store.products[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneProduct отвязывает указатели, чтобы копия не меняла хранилище
func cloneProduct(p domain.Product) domain.Product {
	if p.MaxStockLevel != nil {
		v := *p.MaxStockLevel
		p.MaxStockLevel = &v
	}
	return p
}

func (mp *MemoryProducts) Create(ctx context.Context, p *domain.Product) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	mp.store.products = append(mp.store.products, cloneProduct(*p))
	return nil
}

func (mp *MemoryProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	mp.store.rlock(ctx)
	defer mp.store.runlock(ctx)
	i := mp.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	cp := cloneProduct(mp.store.products[i])
	return &cp, nil
}

func (mp *MemoryProducts) Update(ctx context.Context, p *domain.Product) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	i := mp.indexOf(p.ID)
	if i < 0 {
		return ErrNotFound
	}
	mp.store.products[i] = cloneProduct(*p)
	return nil
}

func (mp *MemoryProducts) Delete(ctx context.Context, id string) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	i := mp.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	mp.store.products = append(mp.store.products[:i], mp.store.products[i+1:]...)
	return nil
}

func (mp *MemoryProducts) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	mp.store.rlock(ctx)
	defer mp.store.runlock(ctx)
	out := make([]domain.Product, 0, len(mp.store.products))
	for _, p := range mp.store.products {
		if !matchesAny(f.Search, p.Name, p.SKU, p.Category) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	mo.store.orders = append(mo.store.orders, *o)
	return nil
}

func (mo *MemoryOrders) Count(ctx context.Context) (int, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	return len(mo.store.orders), nil
}

func (mo *MemoryOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	out := make([]domain.Order, 0, len(mo.store.orders))
	for _, o := range mo.store.orders {
		if !containsIgnoreCase(o.OrderNumber, f.Search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// MemoryActivity журнал действий с ограничением длины
type MemoryActivity struct {
	store *MemoryStore
	limit int
}

func NewMemoryActivity(store *MemoryStore, limit int) *MemoryActivity {
	if limit <= 0 {
		limit = DefaultActivityLogLimit
	}
	return &MemoryActivity{store: store, limit: limit}
}

func (ma *MemoryActivity) Append(ctx context.Context, l domain.ActivityLog) error {
	ma.store.wlock(ctx)
	defer ma.store.wunlock(ctx)
	ma.store.logs = prepend(ma.store.logs, l, ma.limit)
	return nil
}

func (ma *MemoryActivity) List(ctx context.Context) ([]domain.ActivityLog, error) {
	ma.store.rlock(ctx)
	defer ma.store.runlock(ctx)
	out := make([]domain.ActivityLog, len(ma.store.logs))
	copy(out, ma.store.logs)
	return out, nil
}

// MemoryNotifications лента уведомлений с ограничением длины
type MemoryNotifications struct {
	store *MemoryStore
	limit int
}

func NewMemoryNotifications(store *MemoryStore, limit int) *MemoryNotifications {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	return &MemoryNotifications{store: store, limit: limit}
}

func (mn *MemoryNotifications) Append(ctx context.Context, n domain.Notification) error {
	mn.store.wlock(ctx)
	defer mn.store.wunlock(ctx)
	mn.store.notifications = prepend(mn.store.notifications, n, mn.limit)
	return nil
}

func (mn *MemoryNotifications) List(ctx context.Context) ([]domain.Notification, error) {
	mn.store.rlock(ctx)
	defer mn.store.runlock(ctx)
	out := make([]domain.Notification, len(mn.store.notifications))
	copy(out, mn.store.notifications)
	return out, nil
}

func (mn *MemoryNotifications) MarkRead(ctx context.Context, id string) error {
	mn.store.wlock(ctx)
	defer mn.store.wunlock(ctx)
	for i := range mn.store.notifications {
		if mn.store.notifications[i].ID == id {
			mn.store.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (mn *MemoryNotifications) MarkAllRead(ctx context.Context) error {
	mn.store.wlock(ctx)
	defer mn.store.wunlock(ctx)
	for i := range mn.store.notifications {
		mn.store.notifications[i].Read = true
	}
	return nil
}

// prepend кладёт запись в начало и отбрасывает самые старые сверх limit
func prepend[T any](list []T, item T, limit int) []T {
	n := len(list) + 1
	if n > limit {
		n = limit
	}
	out := make([]T, n)
	out[0] = item
	copy(out[1:], list)
	return out
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
