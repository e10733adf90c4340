package model

import "time"

// Direction describes whether a ledger entry earns or spends points.
type Direction string

const (
	DirectionEarned Direction = "earned"
	DirectionSpent  Direction = "spent"
)

// Valid reports whether direction is a known value.
func (d Direction) Valid() bool {
	return d == DirectionEarned || d == DirectionSpent
}

// Reason describes the business origin of a point movement.
type Reason string

const (
	ReasonPurchase         Reason = "purchase"
	ReasonRewardRedemption Reason = "reward_redemption"
	ReasonBonus            Reason = "bonus"
	ReasonReferral         Reason = "referral"
	ReasonOther            Reason = "other"
	ReasonAdjustment       Reason = "adjustment"
)

var knownReasons = map[Reason]struct{}{
	ReasonPurchase:         {},
	ReasonRewardRedemption: {},
	ReasonBonus:            {},
	ReasonReferral:         {},
	ReasonOther:            {},
	ReasonAdjustment:       {},
}

// Valid reports whether reason is a known value.
func (r Reason) Valid() bool {
	_, ok := knownReasons[r]
	return ok
}

// LedgerEntry is an immutable record of a single point movement.
// Corrections are modeled as new offsetting entries; ExpiredAt is
// enforcement bookkeeping stamped once by the expiry sweep.
type LedgerEntry struct {
	ID          int64
	CustomerID  int64
	Direction   Direction
	Amount      int64
	Reason      Reason
	Description string
	ExpiresAt   *time.Time
	ExpiredAt   *time.Time
	CreatedAt   time.Time
}

// Signed returns the balance delta this entry contributes.
func (e *LedgerEntry) Signed() int64 {
	if e.Direction == DirectionSpent {
		return -e.Amount
	}
	return e.Amount
}

// LedgerFilter narrows ledger history queries.
type LedgerFilter struct {
	Direction *Direction
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}
