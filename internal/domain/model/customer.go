package model

import "time"

// Customer represents a registered member of the loyalty program.
// Balance and Tier are derived from ledger history and mutated only by the
// storage layer within ledger transactions, never by callers directly.
type Customer struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	Phone           string
	Barcode         string
	Balance         int64
	Tier            Tier
	RedemptionCount int64
	JoinedAt        time.Time
	LastActivityAt  time.Time
}

// FullName joins first and last names for display purposes.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
