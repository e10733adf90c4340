package model

import "time"

// RewardCategory groups rewards for catalog browsing.
type RewardCategory string

const (
	CategoryDiscount   RewardCategory = "discount"
	CategoryProduct    RewardCategory = "product"
	CategoryExperience RewardCategory = "experience"
	CategoryMembership RewardCategory = "membership"
)

var knownCategories = map[RewardCategory]struct{}{
	CategoryDiscount:   {},
	CategoryProduct:    {},
	CategoryExperience: {},
	CategoryMembership: {},
}

// Valid reports whether category is a known value.
func (c RewardCategory) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

// Reward is a redeemable catalog item with a bounded redemption counter.
type Reward struct {
	ID                 int64
	Title              string
	Description        string
	PointsCost         int64
	Category           RewardCategory
	Active             bool
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	RequiredTier       *Tier
	MaxRedemptions     *int64
	CurrentRedemptions int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Available evaluates the derived availability predicate: active, inside the
// validity window, and not capped out. It is computed, never stored.
func (r *Reward) Available(now time.Time) bool {
	if !r.Active {
		return false
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return false
	}
	if r.MaxRedemptions != nil && r.CurrentRedemptions >= *r.MaxRedemptions {
		return false
	}
	return true
}

// RewardFilter narrows catalog listings.
type RewardFilter struct {
	Category      *RewardCategory
	OnlyAvailable bool
	Page          int
	PageSize      int
}
