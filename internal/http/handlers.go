package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alphadriven28/Stockflow/internal/repository"
	"github.com/Alphadriven28/Stockflow/internal/service"
)

type Server struct {
	engine  *gin.Engine
	store   *service.InventoryStore
	logger  *zap.Logger
	metrics http.Handler
}

// NewServer собирает gin-движок. metrics == nil отключает /metrics.
func NewServer(store *service.InventoryStore, logger *zap.Logger, metrics http.Handler) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	s := &Server{engine: r, store: store, logger: logger, metrics: metrics}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics))
	}

	v1 := s.engine.Group("/api/v1")
	{
		suppliers := v1.Group("/suppliers")
		suppliers.GET("", s.listSuppliers)
		suppliers.POST("", s.createSupplier)
		suppliers.GET(":id", s.getSupplier)
		suppliers.PATCH(":id", s.updateSupplier)
		suppliers.DELETE(":id", s.deleteSupplier)

		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.POST("", s.createProduct)
		products.POST("/bulk-delete", s.bulkDeleteProducts)
		products.POST("/bulk-status", s.bulkUpdateProductStatus)
		products.GET(":id", s.getProduct)
		products.PATCH(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)

		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)

		v1.GET("/activity-logs", s.listActivityLogs)

		notifications := v1.Group("/notifications")
		notifications.GET("", s.listNotifications)
		notifications.POST("/read-all", s.markAllNotificationsRead)
		notifications.POST(":id/read", s.markNotificationRead)

		v1.GET("/me", s.currentUser)

		dashboard := v1.Group("/dashboard")
		dashboard.GET("", s.dashboardSummary)
		dashboard.GET("/low-stock", s.lowStock)
		dashboard.GET("/sales-trend", s.salesTrend)
		dashboard.GET("/inventory-distribution", s.inventoryDistribution)

		v1.GET("/reports/inventory.xlsx", s.inventoryReport)
		v1.GET("/events", s.events)
	}
}

// requestLogger пишет одну строку на запрос
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

type listQuery struct {
	Q     string `form:"q"`
	Page  int    `form:"page" binding:"omitempty,min=1,max=1000000"`
	Limit int    `form:"limit" binding:"omitempty,max=100"`
}

func (q listQuery) params() service.ListParams {
	return service.ListParams{Search: q.Q, Page: q.Page, Limit: q.Limit}
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
