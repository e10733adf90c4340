package model

import (
	"testing"
	"time"
)

func TestTierRanks(t *testing.T) {
	cases := []struct {
		tier Tier
		rank int
	}{
		{TierBronze, 0},
		{TierSilver, 1},
		{TierGold, 2},
		{TierPlatinum, 3},
		{Tier("diamond"), -1},
	}

	for _, tc := range cases {
		t.Run(string(tc.tier), func(t *testing.T) {
			if got := tc.tier.Rank(); got != tc.rank {
				t.Fatalf("expected rank %d, got %d", tc.rank, got)
			}
		})
	}
}

func TestTierThresholdsValid(t *testing.T) {
	if !(TierThresholds{Silver: 1000, Gold: 5000, Platinum: 10000}).Valid() {
		t.Fatal("expected default ordering to be valid")
	}
	if (TierThresholds{Silver: 5000, Gold: 5000, Platinum: 10000}).Valid() {
		t.Fatal("equal silver/gold must be invalid")
	}
	if (TierThresholds{Silver: -1, Gold: 5, Platinum: 10}).Valid() {
		t.Fatal("negative threshold must be invalid")
	}
}

func TestDirectionAndReasonValues(t *testing.T) {
	if string(DirectionEarned) != "earned" || string(DirectionSpent) != "spent" {
		t.Fatal("unexpected direction values")
	}
	if Direction("refunded").Valid() {
		t.Fatal("unknown direction must be invalid")
	}

	for _, r := range []Reason{ReasonPurchase, ReasonRewardRedemption, ReasonBonus, ReasonReferral, ReasonOther, ReasonAdjustment} {
		if !r.Valid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Reason("chargeback").Valid() {
		t.Fatal("unknown reason must be invalid")
	}
}

func TestLedgerEntrySigned(t *testing.T) {
	earned := LedgerEntry{Direction: DirectionEarned, Amount: 100}
	spent := LedgerEntry{Direction: DirectionSpent, Amount: 40}
	if earned.Signed() != 100 {
		t.Fatalf("expected +100, got %d", earned.Signed())
	}
	if spent.Signed() != -40 {
		t.Fatalf("expected -40, got %d", spent.Signed())
	}
}

func TestRewardAvailable(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	cap1 := int64(1)

	cases := []struct {
		name   string
		reward Reward
		want   bool
	}{
		{"active unbounded", Reward{Active: true}, true},
		{"inactive", Reward{Active: false}, false},
		{"before window", Reward{Active: true, ValidFrom: &future}, false},
		{"after window", Reward{Active: true, ValidUntil: &past}, false},
		{"inside window", Reward{Active: true, ValidFrom: &past, ValidUntil: &future}, true},
		{"capped out", Reward{Active: true, MaxRedemptions: &cap1, CurrentRedemptions: 1}, false},
		{"under cap", Reward{Active: true, MaxRedemptions: &cap1, CurrentRedemptions: 0}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.reward.Available(now); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.PointsPerDollar != 10 || s.MinimumPurchase != 5 || s.PointsExpiryDays != 365 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if !s.Tiers.Valid() {
		t.Fatal("default thresholds must be valid")
	}
	if !s.Notifications.PointsEarned || s.Notifications.SpecialOffers {
		t.Fatalf("unexpected notification defaults: %+v", s.Notifications)
	}
}

func TestCustomerFullName(t *testing.T) {
	c := Customer{FirstName: "Ada", LastName: "Lovelace"}
	if c.FullName() != "Ada Lovelace" {
		t.Fatalf("unexpected full name: %q", c.FullName())
	}
}
