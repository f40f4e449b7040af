package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

const namespace = "stockflow"

// Source живые агрегаты, которые отдаются как gauge
type Source interface {
	TotalInventoryValue(ctx context.Context) (float64, error)
	LowStockAlerts(ctx context.Context) ([]domain.Product, error)
	UnreadNotifications(ctx context.Context) ([]domain.Notification, error)
}

// Metrics счётчики мутаций склада на собственном реестре
type Metrics struct {
	reg               *prometheus.Registry
	mutations         *prometheus.CounterVec
	insufficientStock prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Committed inventory mutations by entity and action.",
		}, []string{"entity", "action"}),
		insufficientStock: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insufficient_stock_total",
			Help:      "OUT orders rejected for lack of stock.",
		}),
	}
	m.reg.MustRegister(
		m.mutations,
		m.insufficientStock,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Mutation(entity domain.EntityType, action string) {
	m.mutations.WithLabelValues(string(entity), action).Inc()
}

func (m *Metrics) InsufficientStock() {
	m.insufficientStock.Inc()
}

// Watch регистрирует gauge, которые читают состояние при каждом scrape.
// Ошибка чтения отдаётся как 0.
func (m *Metrics) Watch(src Source) {
	ctx := context.Background()
	m.reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_value",
			Help:      "Sum of cost price times stock level.",
		}, func() float64 {
			v, err := src.TotalInventoryValue(ctx)
			if err != nil {
				return 0
			}
			return v
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "low_stock_products",
			Help:      "Products at or below their minimum stock level.",
		}, func() float64 {
			list, err := src.LowStockAlerts(ctx)
			if err != nil {
				return 0
			}
			return float64(len(list))
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unread_notifications",
			Help:      "Notifications not yet marked as read.",
		}, func() float64 {
			list, err := src.UnreadNotifications(ctx)
			if err != nil {
				return 0
			}
			return float64(len(list))
		}),
	)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
