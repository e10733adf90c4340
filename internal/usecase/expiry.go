package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// ExpiryUseCase identifies lapsed points and writes the compensating ledger
// entries that remove them from balances.
type ExpiryUseCase struct {
	ledger    repository.LedgerRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	logger    *slog.Logger
}

// NewExpiryUseCase constructs ExpiryUseCase.
func NewExpiryUseCase(
	ledger repository.LedgerRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	logger *slog.Logger,
) *ExpiryUseCase {
	return &ExpiryUseCase{ledger: ledger, customers: customers, settings: settings, logger: logger}
}

// Sweep returns the earned entries whose points lapse as of now, with each
// amount capped so a customer never expires more than their unspent balance.
// Entries are consumed oldest first per customer. Sweep reads only; nothing
// is written.
func (u *ExpiryUseCase) Sweep(ctx context.Context, now time.Time) ([]model.ExpiredPoints, error) {
	entries, err := u.ledger.ExpiringBefore(ctx, now)
	if err != nil {
		return nil, err
	}

	remaining := make(map[int64]int64)
	var expired []model.ExpiredPoints

	for _, entry := range entries {
		balance, ok := remaining[entry.CustomerID]
		if !ok {
			customer, err := u.customers.GetByID(ctx, entry.CustomerID)
			if err != nil {
				return nil, err
			}
			balance = customer.Balance
			remaining[entry.CustomerID] = balance
		}

		if balance <= 0 {
			continue
		}

		amount := entry.Amount
		if amount > balance {
			amount = balance
		}
		remaining[entry.CustomerID] = balance - amount

		expired = append(expired, model.ExpiredPoints{Entry: entry, Amount: amount})
	}

	return expired, nil
}

// Enforce sweeps and then materializes each lapse through the atomic Expire
// primitive: the expired stamp and the compensating spent entry commit
// together, so a failed or repeated run never debits the same entry twice.
// Entries whose debit races a concurrent spend are skipped and picked up by
// the next run.
func (u *ExpiryUseCase) Enforce(ctx context.Context, now time.Time) (int64, error) {
	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return 0, err
	}

	lapsed, err := u.Sweep(ctx, now)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, item := range lapsed {
		debit := &model.LedgerEntry{
			CustomerID:  item.Entry.CustomerID,
			Direction:   model.DirectionSpent,
			Amount:      item.Amount,
			Reason:      model.ReasonOther,
			Description: "Points expired",
		}

		if _, _, err := u.ledger.Expire(ctx, item.Entry.ID, now, debit, cfg.Tiers); err != nil {
			u.logger.Warn("skipping expiry for entry",
				slog.Int64("entry_id", item.Entry.ID),
				slog.Int64("customer_id", item.Entry.CustomerID),
				slog.String("error", err.Error()),
			)
			continue
		}

		total += item.Amount
	}

	if total > 0 {
		u.logger.Info("expired points enforced",
			slog.Int("entries", len(lapsed)),
			slog.Int64("points", total),
		)
	}

	return total, nil
}
