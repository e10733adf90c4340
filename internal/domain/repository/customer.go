package repository

import (
	"context"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
//
// ApplyDelta is the balance engine primitive: the non-negativity check and
// the mutation are a single conditional update on the storage side, and the
// tier is re-derived from the post-update balance in the same transaction.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.Customer, error)
	List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error)
	ApplyDelta(ctx context.Context, customerID, delta int64, thresholds model.TierThresholds) (*model.Customer, error)
	IncrementRedemptions(ctx context.Context, customerID int64) error
}
