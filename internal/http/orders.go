package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/service"
)

type createOrderReq struct {
	Type        domain.OrderType   `json:"type" binding:"required,oneof=IN OUT"`
	ProductID   string             `json:"product_id" binding:"required"`
	Quantity    int64              `json:"quantity" binding:"required,gt=0"`
	TotalValue  *float64           `json:"total_value" binding:"omitempty,gte=0"`
	Status      domain.OrderStatus `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Notes       string             `json:"notes"`
	ProcessedBy string             `json:"processed_by"`
}

func (s *Server) listOrders(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}
	page, err := s.store.GetOrders(c, q.params())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// createOrder: 201 с заказом, 204 если IN-заказ пропущен (товар не найден),
// 409 при нехватке остатка
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	o, err := s.store.AddOrder(c, service.NewOrder{
		Type:        req.Type,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		TotalValue:  req.TotalValue,
		Status:      req.Status,
		Notes:       req.Notes,
		ProcessedBy: req.ProcessedBy,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	if o == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, o)
}
