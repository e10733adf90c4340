package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/perkstack/loyalty/internal/config"
	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	"github.com/perkstack/loyalty/internal/domain/repository"
	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
)

// AuthUseCase handles member signup, login and token management.
type AuthUseCase struct {
	customers  repository.CustomerRepository
	hasher     pkgAuth.PasswordHasher
	tokens     pkgAuth.Strategy
	adminEmail string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(customers repository.CustomerRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, cfg *config.Config) *AuthUseCase {
	return &AuthUseCase{customers: customers, hasher: hasher, tokens: strategy, adminEmail: strings.ToLower(cfg.AdminEmail)}
}

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Register creates a new member with a freshly generated card barcode and
// returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*model.Customer, string, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" || strings.TrimSpace(input.FirstName) == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	barcode, err := GenerateBarcode()
	if err != nil {
		return nil, "", err
	}

	customer := &model.Customer{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Barcode:      barcode,
		Tier:         model.TierBronze,
	}

	created, err := u.customers.Create(ctx, customer)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(created.ID, u.roleFor(created.Email))
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	customer, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(customer.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(customer.ID, u.roleFor(customer.Email))
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

// ParseToken extracts identity claims from provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a member by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

func (u *AuthUseCase) roleFor(email string) pkgAuth.Role {
	if u.adminEmail != "" && strings.ToLower(email) == u.adminEmail {
		return pkgAuth.RoleAdmin
	}
	return pkgAuth.RoleCustomer
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
