package test

import (
	"context"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
)

// CustomerRepositoryStub lets tests control customer persistence.
type CustomerRepositoryStub struct {
	CreateFn               func(context.Context, *model.Customer) (*model.Customer, error)
	GetByIDFn              func(context.Context, int64) (*model.Customer, error)
	GetByEmailFn           func(context.Context, string) (*model.Customer, error)
	GetByBarcodeFn         func(context.Context, string) (*model.Customer, error)
	ListFn                 func(context.Context, int, int) ([]model.Customer, int64, error)
	ApplyDeltaFn           func(context.Context, int64, int64, model.TierThresholds) (*model.Customer, error)
	IncrementRedemptionsFn func(context.Context, int64) error

	Customers      []model.Customer
	IncrementCalls []int64
}

// Create delegates to override or assigns the next identifier.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customer)
	}
	created := *customer
	created.ID = int64(len(s.Customers) + 1)
	created.JoinedAt = time.Now()
	s.Customers = append(s.Customers, created)
	return &created, nil
}

// GetByID returns a stored customer or not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, c := range s.Customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail returns a stored customer or not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	for _, c := range s.Customers {
		if c.Email == email {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByBarcode returns a stored customer or not found.
func (s *CustomerRepositoryStub) GetByBarcode(ctx context.Context, barcode string) (*model.Customer, error) {
	if s.GetByBarcodeFn != nil {
		return s.GetByBarcodeFn(ctx, barcode)
	}
	for _, c := range s.Customers {
		if c.Barcode == barcode {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the stored slice.
func (s *CustomerRepositoryStub) List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, page, pageSize)
	}
	return s.Customers, int64(len(s.Customers)), nil
}

// ApplyDelta delegates to override or mutates the stored customer.
func (s *CustomerRepositoryStub) ApplyDelta(ctx context.Context, customerID, delta int64, thresholds model.TierThresholds) (*model.Customer, error) {
	if s.ApplyDeltaFn != nil {
		return s.ApplyDeltaFn(ctx, customerID, delta, thresholds)
	}
	for i := range s.Customers {
		if s.Customers[i].ID != customerID {
			continue
		}
		if s.Customers[i].Balance+delta < 0 {
			return nil, domainErrors.ErrInsufficientBalance
		}
		s.Customers[i].Balance += delta
		tier, err := model.ClassifyTier(s.Customers[i].Balance, thresholds)
		if err != nil {
			return nil, err
		}
		s.Customers[i].Tier = tier
		customer := s.Customers[i]
		return &customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// IncrementRedemptions records invocations.
func (s *CustomerRepositoryStub) IncrementRedemptions(ctx context.Context, customerID int64) error {
	s.IncrementCalls = append(s.IncrementCalls, customerID)
	if s.IncrementRedemptionsFn != nil {
		return s.IncrementRedemptionsFn(ctx, customerID)
	}
	for i := range s.Customers {
		if s.Customers[i].ID == customerID {
			s.Customers[i].RedemptionCount++
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// LedgerRepositoryStub lets tests control the ledger.
type LedgerRepositoryStub struct {
	AppendFn         func(context.Context, *model.LedgerEntry, model.TierThresholds) (*model.LedgerEntry, *model.Customer, error)
	ListByCustomerFn func(context.Context, int64, model.LedgerFilter) ([]model.LedgerEntry, int64, error)
	ExpiringBeforeFn func(context.Context, time.Time) ([]model.LedgerEntry, error)
	ExpireFn         func(context.Context, int64, time.Time, *model.LedgerEntry, model.TierThresholds) (*model.LedgerEntry, *model.Customer, error)

	Entries      []model.LedgerEntry
	Appended     []model.LedgerEntry
	MarkedIDs    []int64
	AppendResult *model.Customer
}

// Append records the entry and returns the configured customer snapshot.
func (s *LedgerRepositoryStub) Append(ctx context.Context, entry *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, entry, thresholds)
	}
	created := *entry
	created.ID = int64(len(s.Appended) + 1)
	created.CreatedAt = time.Now()
	s.Appended = append(s.Appended, created)
	customer := s.AppendResult
	if customer == nil {
		customer = &model.Customer{ID: entry.CustomerID, Balance: created.Signed()}
	}
	return &created, customer, nil
}

// ListByCustomer returns the stored slice.
func (s *LedgerRepositoryStub) ListByCustomer(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID, filter)
	}
	return s.Entries, int64(len(s.Entries)), nil
}

// ExpiringBefore returns the stored slice.
func (s *LedgerRepositoryStub) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.LedgerEntry, error) {
	if s.ExpiringBeforeFn != nil {
		return s.ExpiringBeforeFn(ctx, cutoff)
	}
	return s.Entries, nil
}

// Expire stamps the source entry and records the compensating debit, both or
// neither, mirroring the transactional repository.
func (s *LedgerRepositoryStub) Expire(ctx context.Context, sourceID int64, at time.Time, debit *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, sourceID, at, debit, thresholds)
	}
	for _, id := range s.MarkedIDs {
		if id == sourceID {
			return nil, nil, domainErrors.ErrNotFound
		}
	}
	created, customer, err := s.Append(ctx, debit, thresholds)
	if err != nil {
		return nil, nil, err
	}
	s.MarkedIDs = append(s.MarkedIDs, sourceID)
	return created, customer, nil
}

// RewardRepositoryStub lets tests control the catalog.
type RewardRepositoryStub struct {
	CreateFn  func(context.Context, *model.Reward) (*model.Reward, error)
	UpdateFn  func(context.Context, *model.Reward) (*model.Reward, error)
	DeleteFn  func(context.Context, int64) error
	GetByIDFn func(context.Context, int64) (*model.Reward, error)
	ListFn    func(context.Context, model.RewardFilter) ([]model.Reward, int64, error)
	ReserveFn func(context.Context, int64) (*model.Reward, error)
	ReleaseFn func(context.Context, int64) error

	Rewards      []model.Reward
	ReserveCalls []int64
	ReleaseCalls []int64
}

// Create delegates to override or assigns the next identifier.
func (s *RewardRepositoryStub) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, reward)
	}
	created := *reward
	created.ID = int64(len(s.Rewards) + 1)
	s.Rewards = append(s.Rewards, created)
	return &created, nil
}

// Update delegates to override or replaces the stored reward.
func (s *RewardRepositoryStub) Update(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, reward)
	}
	for i := range s.Rewards {
		if s.Rewards[i].ID == reward.ID {
			s.Rewards[i] = *reward
			updated := s.Rewards[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the stored reward.
func (s *RewardRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Rewards {
		if s.Rewards[i].ID == id {
			s.Rewards = append(s.Rewards[:i], s.Rewards[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetByID returns the stored reward or not found.
func (s *RewardRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Reward, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, r := range s.Rewards {
		if r.ID == id {
			reward := r
			return &reward, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the stored slice.
func (s *RewardRepositoryStub) List(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Rewards, int64(len(s.Rewards)), nil
}

// Reserve records the call and increments the counter while capacity allows.
func (s *RewardRepositoryStub) Reserve(ctx context.Context, id int64) (*model.Reward, error) {
	s.ReserveCalls = append(s.ReserveCalls, id)
	if s.ReserveFn != nil {
		return s.ReserveFn(ctx, id)
	}
	for i := range s.Rewards {
		if s.Rewards[i].ID != id {
			continue
		}
		if s.Rewards[i].MaxRedemptions != nil && s.Rewards[i].CurrentRedemptions >= *s.Rewards[i].MaxRedemptions {
			return nil, domainErrors.ErrCapacityExceeded
		}
		s.Rewards[i].CurrentRedemptions++
		reward := s.Rewards[i]
		return &reward, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Release records the call and decrements the counter.
func (s *RewardRepositoryStub) Release(ctx context.Context, id int64) error {
	s.ReleaseCalls = append(s.ReleaseCalls, id)
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, id)
	}
	for i := range s.Rewards {
		if s.Rewards[i].ID == id && s.Rewards[i].CurrentRedemptions > 0 {
			s.Rewards[i].CurrentRedemptions--
			return nil
		}
	}
	return nil
}

// SettingsRepositoryStub serves configurable program settings.
type SettingsRepositoryStub struct {
	GetFn    func(context.Context) (*model.Settings, error)
	UpdateFn func(context.Context, *model.Settings) (*model.Settings, error)

	Current *model.Settings
}

// Get returns the configured settings or program defaults.
func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.Settings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	if s.Current == nil {
		s.Current = model.DefaultSettings()
	}
	return s.Current, nil
}

// Update replaces the stored settings.
func (s *SettingsRepositoryStub) Update(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, settings)
	}
	updated := *settings
	updated.UpdatedAt = time.Now()
	s.Current = &updated
	return s.Current, nil
}
