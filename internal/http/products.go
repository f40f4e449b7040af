package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

type createProductReq struct {
	Name          string               `json:"name" binding:"required"`
	SKU           string               `json:"sku" binding:"required"`
	Description   string               `json:"description"`
	CostPrice     float64              `json:"cost_price" binding:"gte=0"`
	SellingPrice  float64              `json:"selling_price" binding:"gte=0"`
	StockLevel    int64                `json:"stock_level" binding:"gte=0"`
	MinStockLevel int64                `json:"min_stock_level" binding:"gte=0"`
	MaxStockLevel *int64               `json:"max_stock_level" binding:"omitempty,gte=0"`
	SupplierID    string               `json:"supplier_id"`
	Category      string               `json:"category"`
	Unit          string               `json:"unit"`
	Barcode       string               `json:"barcode"`
	Status        domain.ProductStatus `json:"status" binding:"omitempty,oneof=active discontinued"`
}

type bulkDeleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type bulkStatusReq struct {
	IDs    []string             `json:"ids" binding:"required,min=1"`
	Status domain.ProductStatus `json:"status" binding:"required,oneof=active discontinued"`
}

func (s *Server) listProducts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}
	page, err := s.store.GetProducts(c, q.params())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := s.store.AddProduct(c, domain.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		StockLevel:    req.StockLevel,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		SupplierID:    req.SupplierID,
		Category:      req.Category,
		Unit:          req.Unit,
		Barcode:       req.Barcode,
		Status:        req.Status,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.store.GetProduct(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid json")
		return
	}
	p, err := s.store.UpdateProduct(c, c.Param("id"), patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if p == nil {
		s.writeError(c, fmt.Errorf("product %s: %w", c.Param("id"), repository.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.store.DeleteProduct(c, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) bulkDeleteProducts(c *gin.Context) {
	var req bulkDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := s.store.BulkDeleteProducts(c, req.IDs); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) bulkUpdateProductStatus(c *gin.Context) {
	var req bulkStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := s.store.BulkUpdateProductStatus(c, req.IDs, req.Status); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
