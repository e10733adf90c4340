package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/perkstack/loyalty/internal/server/http/dto"
)

// CustomerHandler serves member profiles.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Me handles GET /api/customers/me.
func (h *CustomerHandler) Me(c *gin.Context) {
	claims := CurrentClaims(c)
	customer, err := h.facade.Customer(c.Request.Context(), claims.CustomerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Get handles GET /api/admin/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// GetByBarcode handles GET /api/admin/customers/barcode/:barcode.
func (h *CustomerHandler) GetByBarcode(c *gin.Context) {
	customer, err := h.facade.CustomerByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List handles GET /api/admin/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	customers, total, err := h.facade.Customers(c.Request.Context(), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := dto.CustomerListResponse{Customers: make([]dto.CustomerResponse, 0, len(customers)), Total: total}
	for i := range customers {
		resp.Customers = append(resp.Customers, dto.ToCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, resp)
}
