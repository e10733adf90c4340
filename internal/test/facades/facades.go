package facades

import (
	"context"
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.Customer, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.Customer, string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
}

// Register returns a default member for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.Customer, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.Customer{ID: 1, FirstName: input.FirstName, Email: input.Email, Tier: model.TierBronze}, "token", nil
}

// Authenticate returns a default member for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.Customer{ID: 1, Email: email, Tier: model.TierBronze}, "token", nil
}

// ParseToken returns stored claims for the authenticated member.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{CustomerID: 1, Role: pkgAuth.RoleCustomer}, nil
}

// CustomerFacadeStub serves configurable member profiles.
type CustomerFacadeStub struct {
	CustomerFn  func(context.Context, int64) (*model.Customer, error)
	ByBarcodeFn func(context.Context, string) (*model.Customer, error)
	CustomersFn func(context.Context, int, int) ([]model.Customer, int64, error)
}

// Customer returns the configured profile or a default one.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Tier: model.TierBronze}, nil
}

// CustomerByBarcode resolves the configured profile by card.
func (s CustomerFacadeStub) CustomerByBarcode(ctx context.Context, barcode string) (*model.Customer, error) {
	if s.ByBarcodeFn != nil {
		return s.ByBarcodeFn(ctx, barcode)
	}
	return &model.Customer{ID: 1, Barcode: barcode, Tier: model.TierBronze}, nil
}

// Customers returns the configured directory page.
func (s CustomerFacadeStub) Customers(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, page, pageSize)
	}
	return []model.Customer{{ID: 1, Tier: model.TierBronze}}, 1, nil
}

// PointsFacadeStub simulates ledger operations.
type PointsFacadeStub struct {
	HistoryFn          func(context.Context, int64, model.LedgerFilter) ([]model.LedgerEntry, int64, error)
	RecordPointsFn     func(context.Context, int64, model.Direction, int64, model.Reason, string) (*model.LedgerEntry, *model.Customer, error)
	EarnFromPurchaseFn func(context.Context, int64, float64) (*model.LedgerEntry, *model.Customer, error)
	EarnByBarcodeFn    func(context.Context, string, float64) (*model.LedgerEntry, *model.Customer, error)
	ExpiringPointsFn   func(context.Context, time.Time) ([]model.ExpiredPoints, error)
}

// History returns the configured ledger page.
func (s PointsFacadeStub) History(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, customerID, filter)
	}
	return []model.LedgerEntry{{ID: 1, CustomerID: customerID, Direction: model.DirectionEarned, Amount: 10, Reason: model.ReasonBonus}}, 1, nil
}

// RecordPoints delegates to the override or echoes the movement.
func (s PointsFacadeStub) RecordPoints(ctx context.Context, customerID int64, direction model.Direction, amount int64, reason model.Reason, description string) (*model.LedgerEntry, *model.Customer, error) {
	if s.RecordPointsFn != nil {
		return s.RecordPointsFn(ctx, customerID, direction, amount, reason, description)
	}
	entry := &model.LedgerEntry{ID: 1, CustomerID: customerID, Direction: direction, Amount: amount, Reason: reason, Description: description}
	return entry, &model.Customer{ID: customerID, Balance: entry.Signed()}, nil
}

// EarnFromPurchase delegates to the override or credits at the default rate.
func (s PointsFacadeStub) EarnFromPurchase(ctx context.Context, customerID int64, total float64) (*model.LedgerEntry, *model.Customer, error) {
	if s.EarnFromPurchaseFn != nil {
		return s.EarnFromPurchaseFn(ctx, customerID, total)
	}
	amount := int64(total * 10)
	entry := &model.LedgerEntry{ID: 1, CustomerID: customerID, Direction: model.DirectionEarned, Amount: amount, Reason: model.ReasonPurchase}
	return entry, &model.Customer{ID: customerID, Balance: amount}, nil
}

// EarnByBarcode delegates to the override or credits a default member.
func (s PointsFacadeStub) EarnByBarcode(ctx context.Context, barcode string, total float64) (*model.LedgerEntry, *model.Customer, error) {
	if s.EarnByBarcodeFn != nil {
		return s.EarnByBarcodeFn(ctx, barcode, total)
	}
	amount := int64(total * 10)
	entry := &model.LedgerEntry{ID: 1, CustomerID: 1, Direction: model.DirectionEarned, Amount: amount, Reason: model.ReasonPurchase}
	return entry, &model.Customer{ID: 1, Barcode: barcode, Balance: amount}, nil
}

// ExpiringPoints returns the configured preview.
func (s PointsFacadeStub) ExpiringPoints(ctx context.Context, now time.Time) ([]model.ExpiredPoints, error) {
	if s.ExpiringPointsFn != nil {
		return s.ExpiringPointsFn(ctx, now)
	}
	return nil, nil
}

// RewardFacadeStub simulates catalog and redemption operations.
type RewardFacadeStub struct {
	RewardsFn      func(context.Context, model.RewardFilter) ([]model.Reward, int64, error)
	RewardFn       func(context.Context, int64) (*model.Reward, error)
	CreateRewardFn func(context.Context, *model.Reward) (*model.Reward, error)
	UpdateRewardFn func(context.Context, *model.Reward) (*model.Reward, error)
	DeleteRewardFn func(context.Context, int64) error
	RedeemFn       func(context.Context, int64, int64) (*model.RedemptionResult, error)
}

// Rewards returns the configured catalog page.
func (s RewardFacadeStub) Rewards(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error) {
	if s.RewardsFn != nil {
		return s.RewardsFn(ctx, filter)
	}
	return []model.Reward{{ID: 1, Title: "Free Coffee", PointsCost: 300, Category: model.CategoryProduct, Active: true}}, 1, nil
}

// Reward returns the configured catalog item.
func (s RewardFacadeStub) Reward(ctx context.Context, id int64) (*model.Reward, error) {
	if s.RewardFn != nil {
		return s.RewardFn(ctx, id)
	}
	return &model.Reward{ID: id, Title: "Free Coffee", PointsCost: 300, Category: model.CategoryProduct, Active: true}, nil
}

// CreateReward delegates to the override or assigns an identifier.
func (s RewardFacadeStub) CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.CreateRewardFn != nil {
		return s.CreateRewardFn(ctx, reward)
	}
	created := *reward
	created.ID = 1
	return &created, nil
}

// UpdateReward delegates to the override or echoes the reward.
func (s RewardFacadeStub) UpdateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.UpdateRewardFn != nil {
		return s.UpdateRewardFn(ctx, reward)
	}
	return reward, nil
}

// DeleteReward delegates to the override.
func (s RewardFacadeStub) DeleteReward(ctx context.Context, id int64) error {
	if s.DeleteRewardFn != nil {
		return s.DeleteRewardFn(ctx, id)
	}
	return nil
}

// Redeem delegates to the override or returns a committed result.
func (s RewardFacadeStub) Redeem(ctx context.Context, customerID, rewardID int64) (*model.RedemptionResult, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, customerID, rewardID)
	}
	return &model.RedemptionResult{
		Entry:    &model.LedgerEntry{ID: 1, CustomerID: customerID, Direction: model.DirectionSpent, Amount: 300, Reason: model.ReasonRewardRedemption},
		Customer: &model.Customer{ID: customerID, Balance: 700, Tier: model.TierBronze},
		Reward:   &model.Reward{ID: rewardID, Title: "Free Coffee", PointsCost: 300, Category: model.CategoryProduct, Active: true, CurrentRedemptions: 1},
	}, nil
}

// SettingsFacadeStub serves configurable program settings.
type SettingsFacadeStub struct {
	SettingsFn       func(context.Context) (*model.Settings, error)
	UpdateSettingsFn func(context.Context, *model.Settings) (*model.Settings, error)
}

// Settings returns the configured record or defaults.
func (s SettingsFacadeStub) Settings(ctx context.Context) (*model.Settings, error) {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx)
	}
	return model.DefaultSettings(), nil
}

// UpdateSettings delegates to the override or echoes the record.
func (s SettingsFacadeStub) UpdateSettings(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if s.UpdateSettingsFn != nil {
		return s.UpdateSettingsFn(ctx, settings)
	}
	return settings, nil
}

// LoyaltyFacadeStub aggregates facade dependencies for HTTP layer tests.
type LoyaltyFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
	PointsFacadeStub
	RewardFacadeStub
	SettingsFacadeStub
}
