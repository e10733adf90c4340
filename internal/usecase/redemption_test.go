package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	testhelpers "github.com/perkstack/loyalty/internal/test"
)

type redemptionFixture struct {
	customers *testhelpers.CustomerRepositoryStub
	rewards   *testhelpers.RewardRepositoryStub
	ledger    *testhelpers.LedgerRepositoryStub
	uc        *RedemptionUseCase
}

func newRedemptionFixture() *redemptionFixture {
	gold := model.TierGold
	capacity := int64(10)
	f := &redemptionFixture{
		customers: &testhelpers.CustomerRepositoryStub{
			Customers: []model.Customer{
				{ID: 1, Balance: 1500, Tier: model.TierSilver},
				{ID: 2, Balance: 50, Tier: model.TierBronze},
				{ID: 3, Balance: 20000, Tier: model.TierPlatinum},
			},
		},
		rewards: &testhelpers.RewardRepositoryStub{
			Rewards: []model.Reward{
				{ID: 1, Title: "Free Coffee", PointsCost: 300, Category: model.CategoryProduct, Active: true, MaxRedemptions: &capacity},
				{ID: 2, Title: "VIP Dinner", PointsCost: 1000, Category: model.CategoryExperience, Active: true, RequiredTier: &gold},
				{ID: 3, Title: "Retired", PointsCost: 100, Category: model.CategoryDiscount, Active: false},
			},
		},
		ledger: &testhelpers.LedgerRepositoryStub{},
	}
	f.ledger.AppendFn = func(ctx context.Context, entry *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
		customer, err := f.customers.ApplyDelta(ctx, entry.CustomerID, entry.Signed(), thresholds)
		if err != nil {
			return nil, nil, err
		}
		created := *entry
		created.ID = int64(len(f.ledger.Appended) + 1)
		f.ledger.Appended = append(f.ledger.Appended, created)
		return &created, customer, nil
	}
	f.uc = NewRedemptionUseCase(f.customers, f.rewards, f.ledger, &testhelpers.SettingsRepositoryStub{}, discardLogger())
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedeemSuccess(t *testing.T) {
	f := newRedemptionFixture()

	result, err := f.uc.Redeem(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("redeem returned error: %v", err)
	}
	if result.Customer.Balance != 1200 {
		t.Fatalf("expected balance 1200, got %d", result.Customer.Balance)
	}
	if result.Entry.Direction != model.DirectionSpent || result.Entry.Reason != model.ReasonRewardRedemption {
		t.Fatalf("unexpected ledger entry: %+v", result.Entry)
	}
	if result.Entry.Description != "Redeemed reward: Free Coffee" {
		t.Fatalf("unexpected description: %q", result.Entry.Description)
	}
	if result.Reward.CurrentRedemptions != 1 {
		t.Fatalf("expected counter 1, got %d", result.Reward.CurrentRedemptions)
	}
	if len(f.customers.IncrementCalls) != 1 || f.customers.IncrementCalls[0] != 1 {
		t.Fatalf("expected redemption counter increment for customer 1, got %v", f.customers.IncrementCalls)
	}
}

func TestRedeemInsufficientPoints(t *testing.T) {
	f := newRedemptionFixture()

	if _, err := f.uc.Redeem(context.Background(), 2, 1); err != domainErrors.ErrInsufficientPoints {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if len(f.rewards.ReserveCalls) != 0 {
		t.Fatal("no reservation should happen when the balance pre-check fails")
	}
	if len(f.ledger.Appended) != 0 {
		t.Fatal("no ledger entry should be written")
	}
}

func TestRedeemTierNotEligible(t *testing.T) {
	f := newRedemptionFixture()

	if _, err := f.uc.Redeem(context.Background(), 1, 2); err != domainErrors.ErrTierNotEligible {
		t.Fatalf("expected ErrTierNotEligible, got %v", err)
	}

	// A platinum member clears a gold requirement.
	if _, err := f.uc.Redeem(context.Background(), 3, 2); err != nil {
		t.Fatalf("expected higher tier to qualify, got %v", err)
	}
}

func TestRedeemUnavailableReward(t *testing.T) {
	f := newRedemptionFixture()

	if _, err := f.uc.Redeem(context.Background(), 1, 3); err != domainErrors.ErrRewardUnavailable {
		t.Fatalf("expected ErrRewardUnavailable for inactive reward, got %v", err)
	}
}

func TestRedeemCapacityRace(t *testing.T) {
	f := newRedemptionFixture()
	f.rewards.ReserveFn = func(context.Context, int64) (*model.Reward, error) {
		return nil, domainErrors.ErrCapacityExceeded
	}

	if _, err := f.uc.Redeem(context.Background(), 1, 1); err != domainErrors.ErrRewardUnavailable {
		t.Fatalf("expected ErrRewardUnavailable on capacity race, got %v", err)
	}
	if len(f.ledger.Appended) != 0 {
		t.Fatal("no points should be debited when reservation fails")
	}
}

func TestRedeemBalanceRaceReleasesReservation(t *testing.T) {
	f := newRedemptionFixture()
	f.ledger.AppendFn = func(context.Context, *model.LedgerEntry, model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
		return nil, nil, domainErrors.ErrInsufficientBalance
	}

	if _, err := f.uc.Redeem(context.Background(), 1, 1); err != domainErrors.ErrInsufficientPoints {
		t.Fatalf("expected ErrInsufficientPoints on debit race, got %v", err)
	}
	if len(f.rewards.ReleaseCalls) != 1 || f.rewards.ReleaseCalls[0] != 1 {
		t.Fatalf("expected reservation released, got %v", f.rewards.ReleaseCalls)
	}
	if len(f.customers.IncrementCalls) != 0 {
		t.Fatal("counter must not be incremented on failure")
	}
}

func TestRedeemDebitErrorRollsBack(t *testing.T) {
	f := newRedemptionFixture()
	f.ledger.AppendFn = func(context.Context, *model.LedgerEntry, model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
		return nil, nil, fmt.Errorf("connection reset")
	}

	if _, err := f.uc.Redeem(context.Background(), 1, 1); err == nil {
		t.Fatal("expected append error to propagate")
	}
	if len(f.rewards.ReleaseCalls) != 1 {
		t.Fatalf("expected reservation released, got %v", f.rewards.ReleaseCalls)
	}
}

func TestRedeemReleasesReservationAfterContextCancellation(t *testing.T) {
	f := newRedemptionFixture()

	ctx, cancel := context.WithCancel(context.Background())
	f.ledger.AppendFn = func(ctx context.Context, _ *model.LedgerEntry, _ model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
		// The caller goes away while the debit is in flight.
		cancel()
		return nil, nil, ctx.Err()
	}
	var releaseCtxErr error = fmt.Errorf("release never ran")
	f.rewards.ReleaseFn = func(ctx context.Context, _ int64) error {
		releaseCtxErr = ctx.Err()
		return nil
	}

	if _, err := f.uc.Redeem(ctx, 1, 1); err == nil {
		t.Fatal("expected cancellation to propagate")
	}
	if len(f.rewards.ReleaseCalls) != 1 || f.rewards.ReleaseCalls[0] != 1 {
		t.Fatalf("expected reservation released, got %v", f.rewards.ReleaseCalls)
	}
	if releaseCtxErr != nil {
		t.Fatalf("release must run on a live context, got %v", releaseCtxErr)
	}
}

func TestRedeemCounterFailureDoesNotUnwind(t *testing.T) {
	f := newRedemptionFixture()
	f.customers.IncrementRedemptionsFn = func(context.Context, int64) error {
		return fmt.Errorf("counter unavailable")
	}

	result, err := f.uc.Redeem(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("redeem must succeed despite counter failure, got %v", err)
	}
	if result.Customer.Balance != 1200 {
		t.Fatalf("expected committed balance 1200, got %d", result.Customer.Balance)
	}
	if len(f.rewards.ReleaseCalls) != 0 {
		t.Fatal("reservation must not be released after commit")
	}
}

func TestRedeemUnknownCustomerOrReward(t *testing.T) {
	f := newRedemptionFixture()
	ctx := context.Background()

	if _, err := f.uc.Redeem(ctx, 99, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for customer, got %v", err)
	}
	if _, err := f.uc.Redeem(ctx, 1, 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for reward, got %v", err)
	}
}

func TestRedeemDemotesTierWhenBalanceDrops(t *testing.T) {
	f := newRedemptionFixture()

	// Balance 1500 silver, cost 1000 drops below the silver threshold.
	big := model.Reward{ID: 4, Title: "Grand Prize", PointsCost: 1000, Category: model.CategoryExperience, Active: true}
	f.rewards.Rewards = append(f.rewards.Rewards, big)

	result, err := f.uc.Redeem(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("redeem returned error: %v", err)
	}
	if result.Customer.Balance != 500 {
		t.Fatalf("expected balance 500, got %d", result.Customer.Balance)
	}
	if result.Customer.Tier != model.TierBronze {
		t.Fatalf("expected demotion to bronze, got %s", result.Customer.Tier)
	}
}
