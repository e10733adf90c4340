package usecase

import (
	"context"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// SettingsUseCase manages the live program configuration.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get returns the current program settings, creating defaults when absent.
func (u *SettingsUseCase) Get(ctx context.Context) (*model.Settings, error) {
	return u.settings.Get(ctx)
}

// Update validates and persists new program settings. Threshold changes take
// effect for subsequent operations only; existing tiers are not recomputed.
func (u *SettingsUseCase) Update(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if settings == nil {
		return nil, domainErrors.ErrInvalidSettings
	}
	if settings.PointsPerDollar <= 0 || settings.MinimumPurchase < 0 || settings.PointsExpiryDays <= 0 {
		return nil, domainErrors.ErrInvalidSettings
	}
	if !settings.Tiers.Valid() {
		return nil, domainErrors.ErrInvalidThresholds
	}
	return u.settings.Update(ctx, settings)
}
