package model

import "time"

// NotificationFlags control member messaging, outside core point mechanics.
type NotificationFlags struct {
	PointsEarned   bool
	PointsExpiring bool
	TierChange     bool
	SpecialOffers  bool
}

// Settings is the single live program configuration record.
type Settings struct {
	PointsPerDollar  int64
	MinimumPurchase  int64
	PointsExpiryDays int64
	Tiers            TierThresholds
	Notifications    NotificationFlags
	UpdatedAt        time.Time
}

// DefaultSettings returns the configuration created lazily on first read.
func DefaultSettings() *Settings {
	return &Settings{
		PointsPerDollar:  10,
		MinimumPurchase:  5,
		PointsExpiryDays: 365,
		Tiers: TierThresholds{
			Silver:   1000,
			Gold:     5000,
			Platinum: 10000,
		},
		Notifications: NotificationFlags{
			PointsEarned:   true,
			PointsExpiring: true,
			TierChange:     true,
			SpecialOffers:  false,
		},
	}
}
