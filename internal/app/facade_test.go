package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/perkstack/loyalty/internal/config"
	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	testhelpers "github.com/perkstack/loyalty/internal/test"
	"github.com/perkstack/loyalty/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type facadeFixture struct {
	customers *testhelpers.CustomerRepositoryStub
	ledger    *testhelpers.LedgerRepositoryStub
	rewards   *testhelpers.RewardRepositoryStub
	settings  *testhelpers.SettingsRepositoryStub
	facade    *LoyaltyFacade
}

func newFacadeFixture() *facadeFixture {
	capacity := int64(10)
	customers := &testhelpers.CustomerRepositoryStub{
		Customers: []model.Customer{
			{ID: 1, Email: "ann@example.com", Barcode: "799273987138", Balance: 1500, Tier: model.TierSilver},
		},
	}
	ledger := &testhelpers.LedgerRepositoryStub{}
	rewards := &testhelpers.RewardRepositoryStub{
		Rewards: []model.Reward{
			{ID: 1, Title: "Free Coffee", PointsCost: 300, Category: model.CategoryProduct, Active: true, MaxRedemptions: &capacity},
		},
	}
	settings := &testhelpers.SettingsRepositoryStub{}
	ledger.AppendFn = func(ctx context.Context, entry *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
		customer, err := customers.ApplyDelta(ctx, entry.CustomerID, entry.Signed(), thresholds)
		if err != nil {
			return nil, nil, err
		}
		created := *entry
		created.ID = int64(len(ledger.Appended) + 1)
		ledger.Appended = append(ledger.Appended, created)
		return &created, customer, nil
	}
	logger := discardLogger()
	cfg := &config.Config{AdminEmail: "admin@example.com"}

	return &facadeFixture{
		customers: customers,
		ledger:    ledger,
		rewards:   rewards,
		settings:  settings,
		facade: NewLoyaltyFacade(
			usecase.NewAuthUseCase(customers, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, cfg),
			usecase.NewCustomerUseCase(customers),
			usecase.NewLedgerUseCase(ledger, customers, settings),
			usecase.NewRewardUseCase(rewards),
			usecase.NewRedemptionUseCase(customers, rewards, ledger, settings, logger),
			usecase.NewSettingsUseCase(settings),
			usecase.NewExpiryUseCase(ledger, customers, settings, logger),
		),
	}
}

func TestFacadeRegisterAndAuthenticate(t *testing.T) {
	fixture := newFacadeFixture()
	ctx := context.Background()

	customer, token, err := fixture.facade.Register(ctx, usecase.RegisterInput{
		FirstName: "Bob",
		Email:     "bob@example.com",
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" || customer.Tier != model.TierBronze {
		t.Fatalf("unexpected registration result: %+v token=%q", customer, token)
	}

	authed, _, err := fixture.facade.Authenticate(ctx, "bob@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != customer.ID {
		t.Fatalf("expected same member, got %d and %d", authed.ID, customer.ID)
	}
}

func TestFacadeHistoryMasksMissingLedger(t *testing.T) {
	fixture := newFacadeFixture()
	fixture.ledger.ListByCustomerFn = func(context.Context, int64, model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
		return nil, 0, domainErrors.ErrNotFound
	}

	entries, total, err := fixture.facade.History(context.Background(), 1, model.LedgerFilter{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if entries == nil || len(entries) != 0 || total != 0 {
		t.Fatalf("expected empty page, got %v total=%d", entries, total)
	}
}

func TestFacadeRedeemFlow(t *testing.T) {
	fixture := newFacadeFixture()

	result, err := fixture.facade.Redeem(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if result.Customer.Balance != 1200 {
		t.Fatalf("expected balance 1200, got %d", result.Customer.Balance)
	}
	if result.Entry.Direction != model.DirectionSpent || result.Entry.Amount != 300 {
		t.Fatalf("unexpected ledger entry: %+v", result.Entry)
	}
}

func TestFacadeSettingsRoundTrip(t *testing.T) {
	fixture := newFacadeFixture()
	ctx := context.Background()

	current, err := fixture.facade.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if current.PointsPerDollar != 10 {
		t.Fatalf("expected defaults, got %+v", current)
	}

	current.PointsPerDollar = 5
	updated, err := fixture.facade.UpdateSettings(ctx, current)
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.PointsPerDollar != 5 {
		t.Fatalf("expected update to persist, got %+v", updated)
	}
}

func TestFacadeExpiryDelegation(t *testing.T) {
	fixture := newFacadeFixture()

	lapsed, err := fixture.facade.ExpiringPoints(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("expiring points: %v", err)
	}
	if len(lapsed) != 0 {
		t.Fatalf("expected nothing to expire, got %v", lapsed)
	}

	total, err := fixture.facade.EnforceExpiry(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("enforce expiry: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no expired points, got %d", total)
	}
}
