package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

const trendMonths = 12

// SalesTrend сумма заказов по месяцам, от старого к текущему
type SalesTrend struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// InventoryDistribution стоимость запасов по категориям
type InventoryDistribution struct {
	Categories  []string  `json:"categories"`
	Values      []float64 `json:"values"`
	Percentages []int     `json:"percentages"`
}

// DashboardSummary агрегаты для главной страницы панели
type DashboardSummary struct {
	TotalRevenue        float64        `json:"total_revenue"`
	TotalProducts       int            `json:"total_products"`
	TotalInventoryValue float64        `json:"total_inventory_value"`
	LowStockCount       int            `json:"low_stock_count"`
	UnreadCount         int            `json:"unread_notifications"`
	RecentOrders        []domain.Order `json:"recent_orders"`
}

func stockValue(p domain.Product) decimal.Decimal {
	return decimal.NewFromFloat(p.CostPrice).Mul(decimal.NewFromInt(p.StockLevel))
}

// TotalRevenue сумма завершённых расходных заказов
func (s *InventoryStore) TotalRevenue(ctx context.Context) (float64, error) {
	orders, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return 0, err
	}
	sum := decimal.Zero
	for _, o := range orders {
		if o.Type == domain.OrderTypeOut && o.Status == domain.OrderStatusCompleted {
			sum = sum.Add(decimal.NewFromFloat(o.TotalValue))
		}
	}
	return sum.InexactFloat64(), nil
}

// TotalProducts число товаров без учёта статуса
func (s *InventoryStore) TotalProducts(ctx context.Context) (int, error) {
	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// LowStockAlerts товары с остатком не выше минимального
func (s *InventoryStore) LowStockAlerts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

// TotalInventoryValue сумма себестоимости остатков
func (s *InventoryStore) TotalInventoryValue(ctx context.Context) (float64, error) {
	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, err
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(stockValue(p))
	}
	return sum.InexactFloat64(), nil
}

// SalesTrend суммирует TotalValue всех заказов (любого типа и статуса)
// по календарным месяцам за последние 12 месяцев включая текущий.
func (s *InventoryStore) SalesTrend(ctx context.Context) (SalesTrend, error) {
	orders, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return SalesTrend{}, err
	}
	now := s.clock.Now()
	loc := now.Location()
	start := time.Date(now.Year(), now.Month()-(trendMonths-1), 1, 0, 0, 0, 0, loc)

	sums := make([]decimal.Decimal, trendMonths)
	trend := SalesTrend{
		Labels: make([]string, trendMonths),
		Values: make([]float64, trendMonths),
	}
	for i := range sums {
		sums[i] = decimal.Zero
		trend.Labels[i] = start.AddDate(0, i, 0).Format("Jan")
	}
	for _, o := range orders {
		t := o.CreatedAt.In(loc)
		idx := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
		if idx < 0 || idx >= trendMonths {
			continue
		}
		sums[idx] = sums[idx].Add(decimal.NewFromFloat(o.TotalValue))
	}
	for i, v := range sums {
		trend.Values[i] = v.InexactFloat64()
	}
	return trend, nil
}

// InventoryDistribution группирует стоимость остатков по категориям в порядке
// первого появления. Проценты округляются до целого; при нулевой сумме 0.
func (s *InventoryStore) InventoryDistribution(ctx context.Context) (InventoryDistribution, error) {
	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return InventoryDistribution{}, err
	}
	index := make(map[string]int)
	var values []decimal.Decimal
	dist := InventoryDistribution{
		Categories:  []string{},
		Values:      []float64{},
		Percentages: []int{},
	}
	total := decimal.Zero
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(values)
			index[p.Category] = i
			values = append(values, decimal.Zero)
			dist.Categories = append(dist.Categories, p.Category)
		}
		v := stockValue(p)
		values[i] = values[i].Add(v)
		total = total.Add(v)
	}
	hundred := decimal.NewFromInt(100)
	for _, v := range values {
		dist.Values = append(dist.Values, v.InexactFloat64())
		pct := 0
		if !total.IsZero() {
			pct = int(v.Div(total).Mul(hundred).Round(0).IntPart())
		}
		dist.Percentages = append(dist.Percentages, pct)
	}
	return dist, nil
}

// DashboardSummary собирает основные агрегаты за один вызов
func (s *InventoryStore) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var out DashboardSummary
	var err error
	if out.TotalRevenue, err = s.TotalRevenue(ctx); err != nil {
		return out, err
	}
	if out.TotalProducts, err = s.TotalProducts(ctx); err != nil {
		return out, err
	}
	if out.TotalInventoryValue, err = s.TotalInventoryValue(ctx); err != nil {
		return out, err
	}
	low, err := s.LowStockAlerts(ctx)
	if err != nil {
		return out, err
	}
	out.LowStockCount = len(low)
	unread, err := s.UnreadNotifications(ctx)
	if err != nil {
		return out, err
	}
	out.UnreadCount = len(unread)
	if out.RecentOrders, err = s.RecentOrders(ctx); err != nil {
		return out, err
	}
	return out, nil
}
