package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Ledger() LedgerRepository
	Rewards() RewardRepository
	Settings() SettingsRepository
}
