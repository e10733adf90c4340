package repository

import (
	"context"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// RewardRepository describes persistence operations for the reward catalog.
//
// Reserve increments current_redemptions only while the post-increment value
// stays within max_redemptions; Release is the compensating decrement used by
// redemption rollback. Both are single conditional statements on the storage
// side, never read-then-write.
type RewardRepository interface {
	Create(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	Update(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Reward, error)
	List(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error)
	Reserve(ctx context.Context, id int64) (*model.Reward, error)
	Release(ctx context.Context, id int64) error
}
