package errors

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidBarcode       = errors.New("invalid barcode")
	ErrInvalidReward        = errors.New("invalid reward")
	ErrInvalidSettings      = errors.New("invalid settings")
	ErrInvalidThresholds    = errors.New("tier thresholds must be strictly increasing")
	ErrBelowMinimumPurchase = errors.New("purchase below program minimum")

	// Business-rule rejections surfaced by the redemption orchestrator.
	ErrRewardUnavailable  = errors.New("reward unavailable")
	ErrTierNotEligible    = errors.New("customer tier not eligible")
	ErrInsufficientPoints = errors.New("insufficient points")

	// Concurrency-race rejections raised by conditional storage updates.
	// The orchestrator translates them into the business-rule errors above.
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCapacityExceeded    = errors.New("redemption capacity exceeded")
)
