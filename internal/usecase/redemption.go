package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// RedemptionUseCase orchestrates the all-or-nothing exchange of points for a
// reward. The flow validates eligibility, reserves catalog capacity, then
// debits the balance and records the ledger entry in a single transaction.
// A failed debit releases the reservation, so a customer is never charged
// without capacity and capacity is never consumed without a charge.
type RedemptionUseCase struct {
	customers repository.CustomerRepository
	rewards   repository.RewardRepository
	ledger    repository.LedgerRepository
	settings  repository.SettingsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewRedemptionUseCase constructs RedemptionUseCase.
func NewRedemptionUseCase(
	customers repository.CustomerRepository,
	rewards repository.RewardRepository,
	ledger repository.LedgerRepository,
	settings repository.SettingsRepository,
	logger *slog.Logger,
) *RedemptionUseCase {
	return &RedemptionUseCase{
		customers: customers,
		rewards:   rewards,
		ledger:    ledger,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// Redeem exchanges points for a reward on behalf of a customer.
//
// Pre-checks against a snapshot reject obviously ineligible requests early,
// but the authoritative checks are the conditional reserve and the
// conditional debit: under concurrent redemptions either may still fail, and
// those failures surface as the same business errors as the pre-checks.
func (u *RedemptionUseCase) Redeem(ctx context.Context, customerID, rewardID int64) (*model.RedemptionResult, error) {
	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	reward, err := u.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	if !reward.Available(u.now()) {
		return nil, domainErrors.ErrRewardUnavailable
	}
	if reward.RequiredTier != nil && customer.Tier.Rank() < reward.RequiredTier.Rank() {
		return nil, domainErrors.ErrTierNotEligible
	}
	if customer.Balance < reward.PointsCost {
		return nil, domainErrors.ErrInsufficientPoints
	}

	reserved, err := u.rewards.Reserve(ctx, rewardID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrCapacityExceeded) {
			return nil, domainErrors.ErrRewardUnavailable
		}
		return nil, err
	}

	u.logger.Debug("reward capacity reserved",
		slog.Int64("customer_id", customerID),
		slog.Int64("reward_id", rewardID),
		slog.Int64("current_redemptions", reserved.CurrentRedemptions),
	)

	entry := &model.LedgerEntry{
		CustomerID:  customerID,
		Direction:   model.DirectionSpent,
		Amount:      reward.PointsCost,
		Reason:      model.ReasonRewardRedemption,
		Description: fmt.Sprintf("Redeemed reward: %s", reward.Title),
	}

	created, updated, err := u.ledger.Append(ctx, entry, cfg.Tiers)
	if err != nil {
		u.rollbackReservation(ctx, rewardID, customerID)
		if errors.Is(err, domainErrors.ErrInsufficientBalance) {
			return nil, domainErrors.ErrInsufficientPoints
		}
		return nil, err
	}

	// The redemption is committed at this point. The per-customer counter is
	// statistics, not money: a failure here is logged and never unwinds the
	// redemption.
	if err := u.customers.IncrementRedemptions(ctx, customerID); err != nil {
		u.logger.Error("failed to increment redemption counter",
			slog.Int64("customer_id", customerID),
			slog.Int64("reward_id", rewardID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("reward redeemed",
		slog.Int64("customer_id", customerID),
		slog.Int64("reward_id", rewardID),
		slog.Int64("points", reward.PointsCost),
		slog.Int64("balance", updated.Balance),
	)

	return &model.RedemptionResult{Entry: created, Customer: updated, Reward: reserved}, nil
}

// rollbackReservation compensates a failed debit. The release must run even
// when the request context was cancelled mid-flight, otherwise the reserved
// capacity slot is lost until an operator intervenes.
func (u *RedemptionUseCase) rollbackReservation(ctx context.Context, rewardID, customerID int64) {
	if err := u.rewards.Release(context.WithoutCancel(ctx), rewardID); err != nil {
		u.logger.Error("failed to release reward reservation",
			slog.Int64("customer_id", customerID),
			slog.Int64("reward_id", rewardID),
			slog.String("error", err.Error()),
		)
	}
}
