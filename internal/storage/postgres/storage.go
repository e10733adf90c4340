package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Kept narrow
// so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type ledgerRepository struct {
	storage *Storage
}

type rewardRepository struct {
	storage *Storage
}

type settingsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Ledger() repository.LedgerRepository {
	return &ledgerRepository{storage: s}
}

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
            id SMALLINT PRIMARY KEY CHECK (id = 1),
            points_per_dollar BIGINT NOT NULL,
            minimum_purchase BIGINT NOT NULL,
            points_expiry_days BIGINT NOT NULL,
            tier_silver BIGINT NOT NULL,
            tier_gold BIGINT NOT NULL,
            tier_platinum BIGINT NOT NULL,
            notify_points_earned BOOLEAN NOT NULL,
            notify_points_expiring BOOLEAN NOT NULL,
            notify_tier_change BOOLEAN NOT NULL,
            notify_special_offers BOOLEAN NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            barcode TEXT UNIQUE NOT NULL,
            balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
            tier TEXT NOT NULL DEFAULT 'bronze',
            redemption_count BIGINT NOT NULL DEFAULT 0,
            joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_activity_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS ledger_entries (
            id BIGSERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            direction TEXT NOT NULL,
            amount BIGINT NOT NULL CHECK (amount > 0),
            reason TEXT NOT NULL,
            description TEXT NOT NULL,
            expires_at TIMESTAMPTZ,
            expired_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS rewards (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            points_cost BIGINT NOT NULL CHECK (points_cost >= 0),
            category TEXT NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            valid_from TIMESTAMPTZ,
            valid_until TIMESTAMPTZ,
            required_tier TEXT,
            max_redemptions BIGINT,
            current_redemptions BIGINT NOT NULL DEFAULT 0 CHECK (current_redemptions >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_customer ON ledger_entries(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_expiring ON ledger_entries(expires_at) WHERE direction = 'earned' AND expired_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_cost ON rewards(points_cost)`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_active ON rewards(active)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CustomerRepository implementation ---

const customerColumns = `id, first_name, last_name, email, password_hash, phone, barcode,
           balance, tier, redemption_count, joined_at, last_activity_at`

func scanCustomer(row pgx.Row, c *model.Customer) error {
	return row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PasswordHash, &c.Phone,
		&c.Barcode, &c.Balance, &c.Tier, &c.RedemptionCount, &c.JoinedAt, &c.LastActivityAt)
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (first_name, last_name, email, password_hash, phone, barcode, tier)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, balance, redemption_count, joined_at, last_activity_at`
	created := *customer
	if created.Tier == "" {
		created.Tier = model.TierBronze
	}
	err := r.storage.pool.QueryRow(ctx, query,
		created.FirstName, created.LastName, created.Email, created.PasswordHash,
		created.Phone, created.Barcode, string(created.Tier),
	).Scan(&created.ID, &created.Balance, &created.RedemptionCount, &created.JoinedAt, &created.LastActivityAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return r.getBy(ctx, "id=$1", id)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.getBy(ctx, "email=$1", email)
}

func (r *customerRepository) GetByBarcode(ctx context.Context, barcode string) (*model.Customer, error) {
	return r.getBy(ctx, "barcode=$1", barcode)
}

func (r *customerRepository) getBy(ctx context.Context, predicate string, arg any) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + predicate
	var c model.Customer
	err := scanCustomer(r.storage.pool.QueryRow(ctx, query, arg), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY joined_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// applyDeltaTx adds delta to the customer balance only when the result stays
// non-negative. Guard and mutation are one statement so two concurrent spends
// can never both pass the check. Tier is re-derived from the returned balance
// within the same transaction.
func (s *Storage) applyDeltaTx(ctx context.Context, tx pgx.Tx, customerID, delta int64, thresholds model.TierThresholds) (*model.Customer, error) {
	const update = `UPDATE customers
                    SET balance = balance + $2, last_activity_at = NOW()
                    WHERE id = $1 AND balance + $2 >= 0
                    RETURNING ` + customerColumns

	var c model.Customer
	err := scanCustomer(tx.QueryRow(ctx, update, customerID, delta), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if probeErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id=$1)`, customerID).Scan(&exists); probeErr != nil {
				return nil, probeErr
			}
			if !exists {
				return nil, domainErrors.ErrNotFound
			}
			return nil, domainErrors.ErrInsufficientBalance
		}
		return nil, err
	}

	tier, err := model.ClassifyTier(c.Balance, thresholds)
	if err != nil {
		return nil, err
	}
	if tier != c.Tier {
		if _, err := tx.Exec(ctx, `UPDATE customers SET tier=$2 WHERE id=$1`, customerID, string(tier)); err != nil {
			return nil, err
		}
		c.Tier = tier
	}

	return &c, nil
}

func (r *customerRepository) ApplyDelta(ctx context.Context, customerID, delta int64, thresholds model.TierThresholds) (*model.Customer, error) {
	var customer *model.Customer
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		customer, txErr = r.storage.applyDeltaTx(ctx, tx, customerID, delta, thresholds)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepository) IncrementRedemptions(ctx context.Context, customerID int64) error {
	const query = `UPDATE customers SET redemption_count = redemption_count + 1, last_activity_at = NOW() WHERE id = $1`
	tag, err := r.storage.pool.Exec(ctx, query, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- LedgerRepository implementation ---

const ledgerColumns = `id, customer_id, direction, amount, reason, description, expires_at, expired_at, created_at`

func scanLedgerEntry(row pgx.Row, e *model.LedgerEntry) error {
	return row.Scan(&e.ID, &e.CustomerID, &e.Direction, &e.Amount, &e.Reason,
		&e.Description, &e.ExpiresAt, &e.ExpiredAt, &e.CreatedAt)
}

func (r *ledgerRepository) Append(ctx context.Context, entry *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
	appended := *entry
	var customer *model.Customer

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		customer, txErr = r.storage.applyDeltaTx(ctx, tx, appended.CustomerID, appended.Signed(), thresholds)
		if txErr != nil {
			return txErr
		}

		const insert = `INSERT INTO ledger_entries (customer_id, direction, amount, reason, description, expires_at)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING id, created_at`
		return tx.QueryRow(ctx, insert,
			appended.CustomerID, string(appended.Direction), appended.Amount,
			string(appended.Reason), appended.Description, appended.ExpiresAt,
		).Scan(&appended.ID, &appended.CreatedAt)
	})
	if err != nil {
		return nil, nil, err
	}
	return &appended, customer, nil
}

func (r *ledgerRepository) ListByCustomer(ctx context.Context, customerID int64, filter model.LedgerFilter) ([]model.LedgerEntry, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	conditions := []string{"customer_id=$1"}
	args := []any{customerID}
	if filter.Direction != nil {
		args = append(args, string(*filter.Direction))
		conditions = append(conditions, fmt.Sprintf("direction=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		ledgerColumns, where, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := scanLedgerEntry(rows, &e); err != nil {
			return nil, 0, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *ledgerRepository) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
              FROM ledger_entries
              WHERE direction = 'earned' AND expired_at IS NULL AND expires_at IS NOT NULL AND expires_at <= $1
              ORDER BY expires_at ASC, id ASC`
	rows, err := r.storage.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := scanLedgerEntry(rows, &e); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Expire stamps the source entry and writes the compensating debit in one
// transaction. The stamp is conditional on expired_at IS NULL, so a raced or
// repeated enforcement run rolls back before any debit is inserted.
func (r *ledgerRepository) Expire(ctx context.Context, sourceID int64, at time.Time, debit *model.LedgerEntry, thresholds model.TierThresholds) (*model.LedgerEntry, *model.Customer, error) {
	appended := *debit
	var customer *model.Customer

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const stamp = `UPDATE ledger_entries SET expired_at = $2 WHERE id = $1 AND expired_at IS NULL`
		tag, txErr := tx.Exec(ctx, stamp, sourceID, at)
		if txErr != nil {
			return txErr
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		customer, txErr = r.storage.applyDeltaTx(ctx, tx, appended.CustomerID, appended.Signed(), thresholds)
		if txErr != nil {
			return txErr
		}

		const insert = `INSERT INTO ledger_entries (customer_id, direction, amount, reason, description, expires_at)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING id, created_at`
		return tx.QueryRow(ctx, insert,
			appended.CustomerID, string(appended.Direction), appended.Amount,
			string(appended.Reason), appended.Description, appended.ExpiresAt,
		).Scan(&appended.ID, &appended.CreatedAt)
	})
	if err != nil {
		return nil, nil, err
	}
	return &appended, customer, nil
}

// --- RewardRepository implementation ---

const rewardColumns = `id, title, description, points_cost, category, active, valid_from, valid_until,
           required_tier, max_redemptions, current_redemptions, created_at, updated_at`

func scanReward(row pgx.Row, rw *model.Reward) error {
	var requiredTier *string
	err := row.Scan(&rw.ID, &rw.Title, &rw.Description, &rw.PointsCost, &rw.Category, &rw.Active,
		&rw.ValidFrom, &rw.ValidUntil, &requiredTier, &rw.MaxRedemptions, &rw.CurrentRedemptions,
		&rw.CreatedAt, &rw.UpdatedAt)
	if err != nil {
		return err
	}
	if requiredTier != nil {
		tier := model.Tier(*requiredTier)
		rw.RequiredTier = &tier
	}
	return nil
}

func requiredTierArg(rw *model.Reward) *string {
	if rw.RequiredTier == nil {
		return nil
	}
	s := string(*rw.RequiredTier)
	return &s
}

func (r *rewardRepository) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	const query = `INSERT INTO rewards (title, description, points_cost, category, active, valid_from, valid_until, required_tier, max_redemptions)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, current_redemptions, created_at, updated_at`
	created := *reward
	err := r.storage.pool.QueryRow(ctx, query,
		created.Title, created.Description, created.PointsCost, string(created.Category), created.Active,
		created.ValidFrom, created.ValidUntil, requiredTierArg(&created), created.MaxRedemptions,
	).Scan(&created.ID, &created.CurrentRedemptions, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *rewardRepository) Update(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	const query = `UPDATE rewards
                   SET title=$2, description=$3, points_cost=$4, category=$5, active=$6,
                       valid_from=$7, valid_until=$8, required_tier=$9, max_redemptions=$10,
                       updated_at=NOW()
                   WHERE id=$1
                   RETURNING current_redemptions, created_at, updated_at`
	updated := *reward
	err := r.storage.pool.QueryRow(ctx, query,
		updated.ID, updated.Title, updated.Description, updated.PointsCost, string(updated.Category),
		updated.Active, updated.ValidFrom, updated.ValidUntil, requiredTierArg(&updated), updated.MaxRedemptions,
	).Scan(&updated.CurrentRedemptions, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *rewardRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM rewards WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *rewardRepository) GetByID(ctx context.Context, id int64) (*model.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id=$1`
	var rw model.Reward
	err := scanReward(r.storage.pool.QueryRow(ctx, query, id), &rw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rw, nil
}

func (r *rewardRepository) List(ctx context.Context, filter model.RewardFilter) ([]model.Reward, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	conditions := []string{"TRUE"}
	var args []any
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.OnlyAvailable {
		conditions = append(conditions,
			"active",
			"(valid_from IS NULL OR valid_from <= NOW())",
			"(valid_until IS NULL OR valid_until >= NOW())",
			"(max_redemptions IS NULL OR current_redemptions < max_redemptions)")
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rewards WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM rewards WHERE %s ORDER BY points_cost ASC, id ASC LIMIT $%d OFFSET $%d`,
		rewardColumns, where, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Reward
	for rows.Next() {
		var rw model.Reward
		if err := scanReward(rows, &rw); err != nil {
			return nil, 0, err
		}
		result = append(result, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// Reserve increments the redemption counter only while the cap allows it.
// The cap check lives in the WHERE clause, so concurrent reservations cannot
// push current_redemptions past max_redemptions.
func (r *rewardRepository) Reserve(ctx context.Context, id int64) (*model.Reward, error) {
	const query = `UPDATE rewards
                   SET current_redemptions = current_redemptions + 1, updated_at = NOW()
                   WHERE id = $1 AND (max_redemptions IS NULL OR current_redemptions < max_redemptions)
                   RETURNING ` + rewardColumns

	var rw model.Reward
	err := scanReward(r.storage.pool.QueryRow(ctx, query, id), &rw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if probeErr := r.storage.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rewards WHERE id=$1)`, id).Scan(&exists); probeErr != nil {
				return nil, probeErr
			}
			if !exists {
				return nil, domainErrors.ErrNotFound
			}
			return nil, domainErrors.ErrCapacityExceeded
		}
		return nil, err
	}
	return &rw, nil
}

// Release rolls back a reservation. The counter never goes below zero.
func (r *rewardRepository) Release(ctx context.Context, id int64) error {
	const query = `UPDATE rewards
                   SET current_redemptions = current_redemptions - 1, updated_at = NOW()
                   WHERE id = $1 AND current_redemptions > 0`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SettingsRepository implementation ---

const settingsColumns = `points_per_dollar, minimum_purchase, points_expiry_days,
           tier_silver, tier_gold, tier_platinum,
           notify_points_earned, notify_points_expiring, notify_tier_change, notify_special_offers,
           updated_at`

func scanSettings(row pgx.Row, s *model.Settings) error {
	return row.Scan(&s.PointsPerDollar, &s.MinimumPurchase, &s.PointsExpiryDays,
		&s.Tiers.Silver, &s.Tiers.Gold, &s.Tiers.Platinum,
		&s.Notifications.PointsEarned, &s.Notifications.PointsExpiring,
		&s.Notifications.TierChange, &s.Notifications.SpecialOffers,
		&s.UpdatedAt)
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	defaults := model.DefaultSettings()
	const insert = `INSERT INTO settings (id, points_per_dollar, minimum_purchase, points_expiry_days,
                        tier_silver, tier_gold, tier_platinum,
                        notify_points_earned, notify_points_expiring, notify_tier_change, notify_special_offers)
                    VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                    ON CONFLICT (id) DO NOTHING`
	if _, err := r.storage.pool.Exec(ctx, insert,
		defaults.PointsPerDollar, defaults.MinimumPurchase, defaults.PointsExpiryDays,
		defaults.Tiers.Silver, defaults.Tiers.Gold, defaults.Tiers.Platinum,
		defaults.Notifications.PointsEarned, defaults.Notifications.PointsExpiring,
		defaults.Notifications.TierChange, defaults.Notifications.SpecialOffers,
	); err != nil {
		return nil, err
	}

	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id=1`
	var s model.Settings
	if err := scanSettings(r.storage.pool.QueryRow(ctx, query), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	const query = `INSERT INTO settings (id, points_per_dollar, minimum_purchase, points_expiry_days,
                       tier_silver, tier_gold, tier_platinum,
                       notify_points_earned, notify_points_expiring, notify_tier_change, notify_special_offers,
                       updated_at)
                   VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
                   ON CONFLICT (id) DO UPDATE
                   SET points_per_dollar = EXCLUDED.points_per_dollar,
                       minimum_purchase = EXCLUDED.minimum_purchase,
                       points_expiry_days = EXCLUDED.points_expiry_days,
                       tier_silver = EXCLUDED.tier_silver,
                       tier_gold = EXCLUDED.tier_gold,
                       tier_platinum = EXCLUDED.tier_platinum,
                       notify_points_earned = EXCLUDED.notify_points_earned,
                       notify_points_expiring = EXCLUDED.notify_points_expiring,
                       notify_tier_change = EXCLUDED.notify_tier_change,
                       notify_special_offers = EXCLUDED.notify_special_offers,
                       updated_at = NOW()
                   RETURNING updated_at`
	updated := *settings
	err := r.storage.pool.QueryRow(ctx, query,
		updated.PointsPerDollar, updated.MinimumPurchase, updated.PointsExpiryDays,
		updated.Tiers.Silver, updated.Tiers.Gold, updated.Tiers.Platinum,
		updated.Notifications.PointsEarned, updated.Notifications.PointsExpiring,
		updated.Notifications.TierChange, updated.Notifications.SpecialOffers,
	).Scan(&updated.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
