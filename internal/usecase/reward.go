package usecase

import (
	"context"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// RewardUseCase manages the reward catalog.
type RewardUseCase struct {
	rewards repository.RewardRepository
	now     func() time.Time
}

// NewRewardUseCase constructs RewardUseCase.
func NewRewardUseCase(rewards repository.RewardRepository) *RewardUseCase {
	return &RewardUseCase{rewards: rewards, now: time.Now}
}

// Create validates and stores a new catalog item.
func (u *RewardUseCase) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	reward.CurrentRedemptions = 0
	return u.rewards.Create(ctx, reward)
}

// Update validates and persists changes to an existing catalog item. The
// redemption counter is owned by the redeem path and is never updated here.
func (u *RewardUseCase) Update(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if reward == nil || reward.ID == 0 {
		return nil, domainErrors.ErrInvalidReward
	}
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	return u.rewards.Update(ctx, reward)
}

// Delete removes a catalog item.
func (u *RewardUseCase) Delete(ctx context.Context, id int64) error {
	return u.rewards.Delete(ctx, id)
}

// GetByID fetches a single catalog item.
func (u *RewardUseCase) GetByID(ctx context.Context, id int64) (*model.Reward, error) {
	return u.rewards.GetByID(ctx, id)
}

// List returns a page of catalog items.
func (u *RewardUseCase) List(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, 0, domainErrors.ErrInvalidReward
	}
	return u.rewards.List(ctx, filter)
}

// CheckAvailability returns the reward when it can currently be redeemed.
func (u *RewardUseCase) CheckAvailability(ctx context.Context, id int64) (*model.Reward, error) {
	reward, err := u.rewards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reward.Available(u.now()) {
		return nil, domainErrors.ErrRewardUnavailable
	}
	return reward, nil
}

func validateReward(reward *model.Reward) error {
	if reward == nil {
		return domainErrors.ErrInvalidReward
	}
	if reward.Title == "" || reward.PointsCost <= 0 {
		return domainErrors.ErrInvalidReward
	}
	if !reward.Category.Valid() {
		return domainErrors.ErrInvalidReward
	}
	if reward.RequiredTier != nil && !reward.RequiredTier.Valid() {
		return domainErrors.ErrInvalidReward
	}
	if reward.MaxRedemptions != nil && *reward.MaxRedemptions <= 0 {
		return domainErrors.ErrInvalidReward
	}
	if reward.ValidFrom != nil && reward.ValidUntil != nil && reward.ValidUntil.Before(*reward.ValidFrom) {
		return domainErrors.ErrInvalidReward
	}
	return nil
}
