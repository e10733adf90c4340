package app

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/usecase"
)

// LoyaltyFacade is the single application surface consumed by the HTTP layer
// and the expiry worker. It delegates to the use cases and owns no business
// rules of its own.
type LoyaltyFacade struct {
	auth       *usecase.AuthUseCase
	customers  *usecase.CustomerUseCase
	ledger     *usecase.LedgerUseCase
	rewards    *usecase.RewardUseCase
	redemption *usecase.RedemptionUseCase
	settings   *usecase.SettingsUseCase
	expiry     *usecase.ExpiryUseCase
}

// NewLoyaltyFacade constructs LoyaltyFacade.
func NewLoyaltyFacade(
	auth *usecase.AuthUseCase,
	customers *usecase.CustomerUseCase,
	ledger *usecase.LedgerUseCase,
	rewards *usecase.RewardUseCase,
	redemption *usecase.RedemptionUseCase,
	settings *usecase.SettingsUseCase,
	expiry *usecase.ExpiryUseCase,
) *LoyaltyFacade {
	return &LoyaltyFacade{
		auth:       auth,
		customers:  customers,
		ledger:     ledger,
		rewards:    rewards,
		redemption: redemption,
		settings:   settings,
		expiry:     expiry,
	}
}

// Register creates a new member and returns the profile with an auth token.
func (f *LoyaltyFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.Customer, string, error) {
	return f.auth.Register(ctx, input)
}

// Authenticate validates credentials and returns the profile with an auth token.
func (f *LoyaltyFacade) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

// ParseToken extracts identity claims from a token.
func (f *LoyaltyFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

// Customer fetches a member profile.
func (f *LoyaltyFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.GetByID(ctx, id)
}

// CustomerByBarcode resolves a scanned member card to its owner.
func (f *LoyaltyFacade) CustomerByBarcode(ctx context.Context, barcode string) (*model.Customer, error) {
	return f.customers.GetByBarcode(ctx, barcode)
}

// Customers returns a page of the member directory.
func (f *LoyaltyFacade) Customers(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	return f.customers.List(ctx, page, pageSize)
}

// History returns a page of the member's ledger. A member with no movements
// yet gets an empty page, not an error.
func (f *LoyaltyFacade) History(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
	entries, total, err := f.ledger.History(ctx, customerID, filter)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return []model.LedgerEntry{}, 0, nil
		}
		return nil, 0, err
	}
	return entries, total, nil
}

// RecordPoints appends a manual point movement.
func (f *LoyaltyFacade) RecordPoints(ctx context.Context, customerID int64, direction model.Direction, amount int64, reason model.Reason, description string) (*model.LedgerEntry, *model.Customer, error) {
	return f.ledger.Record(ctx, customerID, direction, amount, reason, description)
}

// EarnFromPurchase credits a purchase to a member account.
func (f *LoyaltyFacade) EarnFromPurchase(ctx context.Context, customerID int64, total float64) (*model.LedgerEntry, *model.Customer, error) {
	return f.ledger.EarnFromPurchase(ctx, customerID, total)
}

// EarnByBarcode credits a purchase through a scanned card barcode.
func (f *LoyaltyFacade) EarnByBarcode(ctx context.Context, barcode string, total float64) (*model.LedgerEntry, *model.Customer, error) {
	return f.ledger.EarnByBarcode(ctx, barcode, total)
}

// ExpiringPoints previews the lapses the next expiry run will enforce.
func (f *LoyaltyFacade) ExpiringPoints(ctx context.Context, now time.Time) ([]model.ExpiredPoints, error) {
	return f.expiry.Sweep(ctx, now)
}

// EnforceExpiry materializes all currently lapsed points.
func (f *LoyaltyFacade) EnforceExpiry(ctx context.Context, now time.Time) (int64, error) {
	return f.expiry.Enforce(ctx, now)
}

// Rewards returns a page of the catalog.
func (f *LoyaltyFacade) Rewards(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error) {
	return f.rewards.List(ctx, filter)
}

// Reward fetches a single catalog item.
func (f *LoyaltyFacade) Reward(ctx context.Context, id int64) (*model.Reward, error) {
	return f.rewards.GetByID(ctx, id)
}

// CreateReward stores a new catalog item.
func (f *LoyaltyFacade) CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	return f.rewards.Create(ctx, reward)
}

// UpdateReward persists catalog item changes.
func (f *LoyaltyFacade) UpdateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	return f.rewards.Update(ctx, reward)
}

// DeleteReward removes a catalog item.
func (f *LoyaltyFacade) DeleteReward(ctx context.Context, id int64) error {
	return f.rewards.Delete(ctx, id)
}

// Redeem exchanges points for a reward on behalf of a member.
func (f *LoyaltyFacade) Redeem(ctx context.Context, customerID, rewardID int64) (*model.RedemptionResult, error) {
	return f.redemption.Redeem(ctx, customerID, rewardID)
}

// Settings returns the live program configuration.
func (f *LoyaltyFacade) Settings(ctx context.Context) (*model.Settings, error) {
	return f.settings.Get(ctx)
}

// UpdateSettings validates and persists new program configuration.
func (f *LoyaltyFacade) UpdateSettings(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	return f.settings.Update(ctx, settings)
}
