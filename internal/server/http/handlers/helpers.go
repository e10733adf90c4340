package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/server/http/middleware"
)

// CurrentClaims extracts authenticated identity claims from context.
func CurrentClaims(c *gin.Context) pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return pkgAuth.Claims{}
	}
	claims, _ := val.(pkgAuth.Claims)
	return claims
}

// statusFromError maps domain errors onto HTTP status codes shared by the
// points and reward endpoints.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidBarcode),
		errors.Is(err, domainErrors.ErrInvalidReward),
		errors.Is(err, domainErrors.ErrInvalidSettings),
		errors.Is(err, domainErrors.ErrInvalidThresholds),
		errors.Is(err, domainErrors.ErrBelowMinimumPurchase):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInsufficientPoints):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrTierNotEligible):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrRewardUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		c.Status(status)
		return
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
