package handlers

import (
	"context"
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.Customer, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CustomerFacade serves member profiles and the admin directory.
type CustomerFacade interface {
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	CustomerByBarcode(ctx context.Context, barcode string) (*model.Customer, error)
	Customers(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error)
}

// PointsFacade exposes ledger operations via HTTP.
type PointsFacade interface {
	History(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error)
	RecordPoints(ctx context.Context, customerID int64, direction model.Direction, amount int64, reason model.Reason, description string) (*model.LedgerEntry, *model.Customer, error)
	EarnFromPurchase(ctx context.Context, customerID int64, total float64) (*model.LedgerEntry, *model.Customer, error)
	EarnByBarcode(ctx context.Context, barcode string, total float64) (*model.LedgerEntry, *model.Customer, error)
	ExpiringPoints(ctx context.Context, now time.Time) ([]model.ExpiredPoints, error)
}

// RewardFacade provides catalog and redemption operations.
type RewardFacade interface {
	Rewards(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error)
	Reward(ctx context.Context, id int64) (*model.Reward, error)
	CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	UpdateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	DeleteReward(ctx context.Context, id int64) error
	Redeem(ctx context.Context, customerID, rewardID int64) (*model.RedemptionResult, error)
}

// SettingsFacade manages the live program configuration.
type SettingsFacade interface {
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	AuthFacade
	CustomerFacade
	PointsFacade
	RewardFacade
	SettingsFacade
}
