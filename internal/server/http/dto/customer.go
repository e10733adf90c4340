package dto

import (
	"time"

	"github.com/perkstack/loyalty/internal/domain/model"
)

// CustomerResponse represents a member profile.
type CustomerResponse struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Barcode         string    `json:"barcode"`
	Balance         int64     `json:"balance"`
	Tier            string    `json:"tier"`
	RedemptionCount int64     `json:"redemption_count"`
	JoinedAt        time.Time `json:"joined_at"`
	LastActivityAt  time.Time `json:"last_activity_at"`
}

// ToCustomerResponse maps the domain customer onto its wire form.
func ToCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		Phone:           c.Phone,
		Barcode:         c.Barcode,
		Balance:         c.Balance,
		Tier:            string(c.Tier),
		RedemptionCount: c.RedemptionCount,
		JoinedAt:        c.JoinedAt,
		LastActivityAt:  c.LastActivityAt,
	}
}

// CustomerListResponse is a paginated member directory page.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
}
