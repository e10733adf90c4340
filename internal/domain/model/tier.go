package model

import domainErrors "github.com/perkstack/loyalty/internal/domain/errors"

// Tier describes membership rank derived from customer balance.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

var tierRanks = map[Tier]int{
	TierBronze:   0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
}

// Rank returns ordinal position of tier, -1 for unknown values.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}
	return rank
}

// Valid reports whether tier is one of the known ranks.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// TierThresholds holds minimum balances for each paid tier.
// Bronze is implicit: any balance below Silver.
type TierThresholds struct {
	Silver   int64
	Gold     int64
	Platinum int64
}

// Valid reports whether thresholds are non-negative and strictly increasing.
func (t TierThresholds) Valid() bool {
	return t.Silver >= 0 && t.Silver < t.Gold && t.Gold < t.Platinum
}

// ClassifyTier returns the highest tier whose threshold does not exceed
// balance. Monotonic in balance for any fixed valid table; fails on a table
// that violates the strict ordering invariant.
func ClassifyTier(balance int64, thresholds TierThresholds) (Tier, error) {
	if !thresholds.Valid() {
		return "", domainErrors.ErrInvalidThresholds
	}
	switch {
	case balance >= thresholds.Platinum:
		return TierPlatinum, nil
	case balance >= thresholds.Gold:
		return TierGold, nil
	case balance >= thresholds.Silver:
		return TierSilver, nil
	default:
		return TierBronze, nil
	}
}
