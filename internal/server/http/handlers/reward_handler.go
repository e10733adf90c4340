package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/server/http/dto"
)

// RewardHandler manages catalog and redemption endpoints.
type RewardHandler struct {
	facade RewardFacade
}

// NewRewardHandler constructs RewardHandler.
func NewRewardHandler(facade RewardFacade) *RewardHandler {
	return &RewardHandler{facade: facade}
}

// List handles GET /api/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	filter := model.RewardFilter{}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	filter.OnlyAvailable = c.Query("available") == "true"
	if raw := c.Query("category"); raw != "" {
		category := model.RewardCategory(raw)
		filter.Category = &category
	}

	rewards, total, err := h.facade.Rewards(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now()
	resp := dto.RewardListResponse{Rewards: make([]dto.RewardResponse, 0, len(rewards)), Total: total}
	for i := range rewards {
		resp.Rewards = append(resp.Rewards, dto.ToRewardResponse(&rewards[i], now))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/rewards/:id.
func (h *RewardHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reward, err := h.facade.Reward(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRewardResponse(reward, time.Now()))
}

// Redeem handles POST /api/rewards/:id/redeem.
func (h *RewardHandler) Redeem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	claims := CurrentClaims(c)
	result, err := h.facade.Redeem(c.Request.Context(), claims.CustomerID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedemptionResponse{
		Entry:    dto.ToLedgerEntryResponse(result.Entry),
		Customer: dto.ToCustomerResponse(result.Customer),
		Reward:   dto.ToRewardResponse(result.Reward, time.Now()),
	})
}

// Create handles POST /api/admin/rewards.
func (h *RewardHandler) Create(c *gin.Context) {
	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateReward(c.Request.Context(), req.ToReward())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRewardResponse(created, time.Now()))
}

// Update handles PUT /api/admin/rewards/:id.
func (h *RewardHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reward := req.ToReward()
	reward.ID = id

	updated, err := h.facade.UpdateReward(c.Request.Context(), reward)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRewardResponse(updated, time.Now()))
}

// Delete handles DELETE /api/admin/rewards/:id.
func (h *RewardHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteReward(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
