package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alphadriven28/Stockflow/internal/domain"
	"github.com/Alphadriven28/Stockflow/internal/repository"
)

type createSupplierReq struct {
	Name          string                `json:"name" binding:"required"`
	Email         string                `json:"email" binding:"omitempty,email"`
	Phone         string                `json:"phone"`
	Address       string                `json:"address"`
	Category      string                `json:"category"`
	Status        domain.SupplierStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	ContactPerson string                `json:"contact_person"`
}

func (s *Server) listSuppliers(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}
	page, err := s.store.GetSuppliers(c, q.params())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) createSupplier(c *gin.Context) {
	var req createSupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sup, err := s.store.AddSupplier(c, domain.Supplier{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Category:      req.Category,
		Status:        req.Status,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sup)
}

func (s *Server) getSupplier(c *gin.Context) {
	sup, err := s.store.GetSupplier(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sup)
}

func (s *Server) updateSupplier(c *gin.Context) {
	var patch domain.SupplierPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid json")
		return
	}
	sup, err := s.store.UpdateSupplier(c, c.Param("id"), patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if sup == nil {
		s.writeError(c, fmt.Errorf("supplier %s: %w", c.Param("id"), repository.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, sup)
}

func (s *Server) deleteSupplier(c *gin.Context) {
	if err := s.store.DeleteSupplier(c, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
