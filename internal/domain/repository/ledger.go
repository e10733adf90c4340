package repository

import (
	"context"
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// LedgerRepository manages the append-only point-movement ledger.
//
// Append is the only primitive that creates entries. It inserts the entry and
// applies the signed balance delta to the owning customer inside one database
// transaction, so either both are visible or neither is.
//
// Expire stamps a source entry as expired and appends the compensating debit
// in the same transaction: the customer is charged exactly once per expired
// entry no matter how often the enforcement job retries. An already stamped
// entry returns ErrNotFound and writes nothing.
type LedgerRepository interface {
	Append(ctx context.Context, entry *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error)
	ListByCustomer(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error)
	ExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.LedgerEntry, error)
	Expire(ctx context.Context, sourceID int64, at time.Time, debit *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error)
}
