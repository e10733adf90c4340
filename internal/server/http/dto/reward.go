package dto

import (
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// RewardRequest describes the admin payload for creating or updating a reward.
type RewardRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	PointsCost     int64      `json:"points_cost"`
	Category       string     `json:"category"`
	Active         bool       `json:"active"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	RequiredTier   *string    `json:"required_tier,omitempty"`
	MaxRedemptions *int64     `json:"max_redemptions,omitempty"`
}

// ToReward maps the request onto a domain reward.
func (r *RewardRequest) ToReward() *model.Reward {
	reward := &model.Reward{
		Title:          r.Title,
		Description:    r.Description,
		PointsCost:     r.PointsCost,
		Category:       model.RewardCategory(r.Category),
		Active:         r.Active,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		MaxRedemptions: r.MaxRedemptions,
	}
	if r.RequiredTier != nil {
		tier := model.Tier(*r.RequiredTier)
		reward.RequiredTier = &tier
	}
	return reward
}

// RewardResponse represents a catalog item.
type RewardResponse struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	PointsCost         int64      `json:"points_cost"`
	Category           string     `json:"category"`
	Active             bool       `json:"active"`
	Available          bool       `json:"available"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	RequiredTier       *string    `json:"required_tier,omitempty"`
	MaxRedemptions     *int64     `json:"max_redemptions,omitempty"`
	CurrentRedemptions int64      `json:"current_redemptions"`
}

// ToRewardResponse maps the domain reward onto its wire form, deriving the
// availability flag at response time.
func ToRewardResponse(r *model.Reward, now time.Time) RewardResponse {
	resp := RewardResponse{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        r.Description,
		PointsCost:         r.PointsCost,
		Category:           string(r.Category),
		Active:             r.Active,
		Available:          r.Available(now),
		ValidFrom:          r.ValidFrom,
		ValidUntil:         r.ValidUntil,
		MaxRedemptions:     r.MaxRedemptions,
		CurrentRedemptions: r.CurrentRedemptions,
	}
	if r.RequiredTier != nil {
		tier := string(*r.RequiredTier)
		resp.RequiredTier = &tier
	}
	return resp
}

// RewardListResponse is a paginated catalog page.
type RewardListResponse struct {
	Rewards []RewardResponse `json:"rewards"`
	Total   int64            `json:"total"`
}

// RedemptionResponse reports a committed redemption.
type RedemptionResponse struct {
	Entry    LedgerEntryResponse `json:"entry"`
	Customer CustomerResponse    `json:"customer"`
	Reward   RewardResponse      `json:"reward"`
}
