package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alphadriven28/Stockflow/internal/report"
	"github.com/Alphadriven28/Stockflow/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) dashboardSummary(c *gin.Context) {
	sum, err := s.store.DashboardSummary(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) lowStock(c *gin.Context) {
	list, err := s.store.LowStockAlerts(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) salesTrend(c *gin.Context) {
	trend, err := s.store.SalesTrend(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (s *Server) inventoryDistribution(c *gin.Context) {
	dist, err := s.store.InventoryDistribution(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// inventoryReport отдаёт xlsx со всеми товарами и сводкой
func (s *Server) inventoryReport(c *gin.Context) {
	sum, err := s.store.DashboardSummary(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	limit := sum.TotalProducts
	if limit < 1 {
		limit = 1
	}
	page, err := s.store.GetProducts(c, service.ListParams{Limit: limit})
	if err != nil {
		s.writeError(c, err)
		return
	}

	now := time.Now()
	buf := &bytes.Buffer{}
	err = report.InventoryWorkbook(buf, report.Inventory{
		Products:            page.Data,
		TotalInventoryValue: sum.TotalInventoryValue,
		TotalRevenue:        sum.TotalRevenue,
		LowStockCount:       sum.LowStockCount,
		GeneratedAt:         now,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	fileName := fmt.Sprintf("inventory_%s.xlsx", now.Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
