package auth

import "time"

// Role names the access level encoded in an auth token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether role is a known value.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Claims carry the authenticated identity extracted from a token.
type Claims struct {
	CustomerID int64
	Role       Role
}

// Strategy issues and verifies auth tokens.
type Strategy interface {
	IssueToken(customerID int64, role Role) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
