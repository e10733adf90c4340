package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/server/http/dto"
)

// PointsHandler manages ledger-related endpoints.
type PointsHandler struct {
	facade PointsFacade
}

// NewPointsHandler constructs PointsHandler.
func NewPointsHandler(facade PointsFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// History handles GET /api/points/history.
func (h *PointsHandler) History(c *gin.Context) {
	claims := CurrentClaims(c)

	filter := model.LedgerFilter{}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if raw := c.Query("direction"); raw != "" {
		direction := model.Direction(raw)
		if !direction.Valid() {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.Direction = &direction
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.To = &to
	}

	entries, total, err := h.facade.History(c.Request.Context(), claims.CustomerID, filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := dto.HistoryResponse{Entries: make([]dto.LedgerEntryResponse, 0, len(entries)), Total: total}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToLedgerEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Record handles POST /api/admin/points.
func (h *PointsHandler) Record(c *gin.Context) {
	var req dto.RecordPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, customer, err := h.facade.RecordPoints(
		c.Request.Context(),
		req.CustomerID,
		model.Direction(req.Direction),
		req.Amount,
		model.Reason(req.Reason),
		req.Description,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PointsResponse{
		Entry:    dto.ToLedgerEntryResponse(entry),
		Customer: dto.ToCustomerResponse(customer),
	})
}

// Purchase handles POST /api/admin/points/purchase.
func (h *PointsHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, customer, err := h.facade.EarnFromPurchase(c.Request.Context(), req.CustomerID, req.Total)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PointsResponse{
		Entry:    dto.ToLedgerEntryResponse(entry),
		Customer: dto.ToCustomerResponse(customer),
	})
}

// Scan handles POST /api/admin/points/scan: the point-of-sale path keyed by
// the card barcode instead of a customer identifier.
func (h *PointsHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, customer, err := h.facade.EarnByBarcode(c.Request.Context(), req.Barcode, req.Total)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PointsResponse{
		Entry:    dto.ToLedgerEntryResponse(entry),
		Customer: dto.ToCustomerResponse(customer),
	})
}

// Expiring handles GET /api/admin/points/expiring: a read-only preview of
// what the next expiry run will enforce.
func (h *PointsHandler) Expiring(c *gin.Context) {
	lapsed, err := h.facade.ExpiringPoints(c.Request.Context(), time.Now())
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]dto.ExpiringPointsResponse, 0, len(lapsed))
	for _, item := range lapsed {
		preview := dto.ExpiringPointsResponse{
			EntryID:    item.Entry.ID,
			CustomerID: item.Entry.CustomerID,
			Amount:     item.Amount,
		}
		if item.Entry.ExpiresAt != nil {
			preview.ExpiresAt = *item.Entry.ExpiresAt
		}
		resp = append(resp, preview)
	}
	c.JSON(http.StatusOK, resp)
}
