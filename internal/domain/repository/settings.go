package repository

import (
	"context"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// SettingsRepository manages the singleton program configuration record.
// Get creates the record with defaults when absent.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}
