package dto

import (
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// LedgerEntryResponse represents one point movement.
type LedgerEntryResponse struct {
	ID          int64      `json:"id"`
	Direction   string     `json:"direction"`
	Amount      int64      `json:"amount"`
	Reason      string     `json:"reason"`
	Description string     `json:"description,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToLedgerEntryResponse maps the domain entry onto its wire form.
func ToLedgerEntryResponse(e *model.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Direction:   string(e.Direction),
		Amount:      e.Amount,
		Reason:      string(e.Reason),
		Description: e.Description,
		ExpiresAt:   e.ExpiresAt,
		CreatedAt:   e.CreatedAt,
	}
}

// HistoryResponse is a paginated slice of the ledger.
type HistoryResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int64                 `json:"total"`
}

// RecordPointsRequest is the admin payload for a manual movement.
type RecordPointsRequest struct {
	CustomerID  int64  `json:"customer_id"`
	Direction   string `json:"direction"`
	Amount      int64  `json:"amount"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

// PurchaseRequest credits a purchase to an authenticated member account.
type PurchaseRequest struct {
	CustomerID int64   `json:"customer_id"`
	Total      float64 `json:"total"`
}

// ScanRequest credits a purchase through a scanned card barcode.
type ScanRequest struct {
	Barcode string  `json:"barcode"`
	Total   float64 `json:"total"`
}

// PointsResponse reports the movement and the resulting account state.
type PointsResponse struct {
	Entry    LedgerEntryResponse `json:"entry"`
	Customer CustomerResponse    `json:"customer"`
}

// ExpiringPointsResponse previews one lapse the next sweep will enforce.
type ExpiringPointsResponse struct {
	EntryID    int64     `json:"entry_id"`
	CustomerID int64     `json:"customer_id"`
	Amount     int64     `json:"amount"`
	ExpiresAt  time.Time `json:"expires_at"`
}
