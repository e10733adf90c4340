package dto

import (
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// TierThresholdsPayload carries the tier cutoffs.
type TierThresholdsPayload struct {
	Silver   int64 `json:"silver"`
	Gold     int64 `json:"gold"`
	Platinum int64 `json:"platinum"`
}

// NotificationsPayload carries member messaging switches.
type NotificationsPayload struct {
	PointsEarned   bool `json:"points_earned"`
	PointsExpiring bool `json:"points_expiring"`
	TierChange     bool `json:"tier_change"`
	SpecialOffers  bool `json:"special_offers"`
}

// SettingsRequest describes the admin payload for updating settings.
type SettingsRequest struct {
	PointsPerDollar  int64                 `json:"points_per_dollar"`
	MinimumPurchase  int64                 `json:"minimum_purchase"`
	PointsExpiryDays int64                 `json:"points_expiry_days"`
	Tiers            TierThresholdsPayload `json:"tiers"`
	Notifications    NotificationsPayload  `json:"notifications"`
}

// ToSettings maps the request onto the domain settings record.
func (r *SettingsRequest) ToSettings() *model.Settings {
	return &model.Settings{
		PointsPerDollar:  r.PointsPerDollar,
		MinimumPurchase:  r.MinimumPurchase,
		PointsExpiryDays: r.PointsExpiryDays,
		Tiers: model.TierThresholds{
			Silver:   r.Tiers.Silver,
			Gold:     r.Tiers.Gold,
			Platinum: r.Tiers.Platinum,
		},
		Notifications: model.NotificationFlags{
			PointsEarned:   r.Notifications.PointsEarned,
			PointsExpiring: r.Notifications.PointsExpiring,
			TierChange:     r.Notifications.TierChange,
			SpecialOffers:  r.Notifications.SpecialOffers,
		},
	}
}

// SettingsResponse represents the live program configuration.
type SettingsResponse struct {
	PointsPerDollar  int64                 `json:"points_per_dollar"`
	MinimumPurchase  int64                 `json:"minimum_purchase"`
	PointsExpiryDays int64                 `json:"points_expiry_days"`
	Tiers            TierThresholdsPayload `json:"tiers"`
	Notifications    NotificationsPayload  `json:"notifications"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// ToSettingsResponse maps the domain record onto its wire form.
func ToSettingsResponse(s *model.Settings) SettingsResponse {
	return SettingsResponse{
		PointsPerDollar:  s.PointsPerDollar,
		MinimumPurchase:  s.MinimumPurchase,
		PointsExpiryDays: s.PointsExpiryDays,
		Tiers: TierThresholdsPayload{
			Silver:   s.Tiers.Silver,
			Gold:     s.Tiers.Gold,
			Platinum: s.Tiers.Platinum,
		},
		Notifications: NotificationsPayload{
			PointsEarned:   s.Notifications.PointsEarned,
			PointsExpiring: s.Notifications.PointsExpiring,
			TierChange:     s.Notifications.TierChange,
			SpecialOffers:  s.Notifications.SpecialOffers,
		},
		UpdatedAt: s.UpdatedAt,
	}
}
