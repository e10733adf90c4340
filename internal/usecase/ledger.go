package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// LedgerUseCase records point movements and serves ledger history.
type LedgerUseCase struct {
	ledger    repository.LedgerRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	now       func() time.Time
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger repository.LedgerRepository, customers repository.CustomerRepository, settings repository.SettingsRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger, customers: customers, settings: settings, now: time.Now}
}

// Record appends a point movement and applies it to the customer balance in
// one transaction. Earned entries are stamped with an expiry date derived
// from the current program settings.
func (u *LedgerUseCase) Record(ctx context.Context, customerID int64, direction model.Direction, amount int64, reason model.Reason, description string) (*model.LedgerEntry, *model.Customer, error) {
	if amount <= 0 {
		return nil, nil, domainErrors.ErrInvalidAmount
	}
	if !direction.Valid() || !reason.Valid() {
		return nil, nil, domainErrors.ErrInvalidAmount
	}

	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	entry := &model.LedgerEntry{
		CustomerID:  customerID,
		Direction:   direction,
		Amount:      amount,
		Reason:      reason,
		Description: description,
	}
	if direction == model.DirectionEarned {
		expires := u.now().AddDate(0, 0, int(cfg.PointsExpiryDays))
		entry.ExpiresAt = &expires
	}

	created, customer, err := u.ledger.Append(ctx, entry, cfg.Tiers)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInsufficientBalance) {
			return nil, nil, domainErrors.ErrInsufficientPoints
		}
		return nil, nil, err
	}

	return created, customer, nil
}

// EarnFromPurchase converts a purchase total into earned points using the
// configured rate, rejecting purchases below the program minimum.
func (u *LedgerUseCase) EarnFromPurchase(ctx context.Context, customerID int64, purchaseTotal float64) (*model.LedgerEntry, *model.Customer, error) {
	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	if purchaseTotal <= 0 {
		return nil, nil, domainErrors.ErrInvalidAmount
	}
	if purchaseTotal < float64(cfg.MinimumPurchase) {
		return nil, nil, domainErrors.ErrBelowMinimumPurchase
	}

	points := int64(math.Floor(purchaseTotal * float64(cfg.PointsPerDollar)))
	if points <= 0 {
		return nil, nil, domainErrors.ErrInvalidAmount
	}

	description := fmt.Sprintf("Purchase of $%.2f", purchaseTotal)
	return u.Record(ctx, customerID, model.DirectionEarned, points, model.ReasonPurchase, description)
}

// EarnByBarcode resolves a scanned member barcode and credits the purchase.
// This is the point-of-sale path: the cashier scans the card instead of the
// customer authenticating.
func (u *LedgerUseCase) EarnByBarcode(ctx context.Context, barcode string, purchaseTotal float64) (*model.LedgerEntry, *model.Customer, error) {
	if !ValidateBarcode(barcode) {
		return nil, nil, domainErrors.ErrInvalidBarcode
	}

	customer, err := u.customers.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, nil, err
	}

	return u.EarnFromPurchase(ctx, customer.ID, purchaseTotal)
}

// History returns a page of the customer's ledger, newest first.
func (u *LedgerUseCase) History(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return u.ledger.ListByCustomer(ctx, customerID, filter)
}
