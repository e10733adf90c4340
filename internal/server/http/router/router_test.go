package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/server/http/handlers"
	facades "github.com/perkstack/loyalty/internal/test/facades"
)

var _ handlers.LoyaltyFacade = (*facades.LoyaltyFacadeStub)(nil)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := Setup(&facades.LoyaltyFacadeStub{}, discardLogger())

	body, _ := json.Marshal(map[string]string{
		"first_name": "Alice",
		"email":      "alice@example.com",
		"password":   "secret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from register, got %d", resp.Code)
	}
}

func TestSetupAuthedRoutes(t *testing.T) {
	engine := Setup(&facades.LoyaltyFacadeStub{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/customers/me", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}
}

func TestSetupAdminRoutes(t *testing.T) {
	customer := &facades.LoyaltyFacadeStub{}
	customer.ParseFn = func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{CustomerID: 1, Role: pkgAuth.RoleCustomer}, nil
	}

	engine := Setup(customer, discardLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer role, got %d", resp.Code)
	}

	admin := &facades.LoyaltyFacadeStub{}
	admin.ParseFn = func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{CustomerID: 1, Role: pkgAuth.RoleAdmin}, nil
	}

	engine = Setup(admin, discardLogger())
	req = httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp.Code)
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := Setup(&facades.LoyaltyFacadeStub{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/rewards", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer reader.Close()
	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Contains(decoded, []byte("Free Coffee")) {
		t.Fatalf("unexpected catalog body: %s", decoded)
	}
}
