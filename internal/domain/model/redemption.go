package model

// RedemptionResult carries the effects of a committed redemption.
type RedemptionResult struct {
	Entry    *LedgerEntry
	Customer *Customer
	Reward   *Reward
}

// ExpiredPoints identifies an earned ledger entry whose points lapsed and the
// amount actually expirable after capping at the customer's unspent balance.
type ExpiredPoints struct {
	Entry  LedgerEntry
	Amount int64
}
