package usecase

import (
	"context"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// CustomerUseCase serves member profiles and directory listings.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// GetByID fetches a customer profile.
func (u *CustomerUseCase) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// GetByBarcode resolves a scanned member card to its owner.
func (u *CustomerUseCase) GetByBarcode(ctx context.Context, barcode string) (*model.Customer, error) {
	if !ValidateBarcode(barcode) {
		return nil, domainErrors.ErrInvalidBarcode
	}
	return u.customers.GetByBarcode(ctx, barcode)
}

// List returns a page of members for the admin directory.
func (u *CustomerUseCase) List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return u.customers.List(ctx, page, pageSize)
}
