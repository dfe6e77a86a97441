package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/zaiqaeats/storefront/internal/cart"
	checkoutsvc "github.com/zaiqaeats/storefront/internal/checkout"
	"github.com/zaiqaeats/storefront/internal/menu"
	"github.com/zaiqaeats/storefront/pkg/config"
	"github.com/zaiqaeats/storefront/pkg/db/models"
	"github.com/zaiqaeats/storefront/pkg/enums"
)

type stubMenuRepo struct {
	items []models.MenuItem
}

func (s *stubMenuRepo) List(ctx context.Context, category *enums.MenuCategory) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *stubMenuRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, context.Canceled
}

type stubCartService struct {
	snapshot cartsvc.Snapshot
}

func (s *stubCartService) Get(ctx context.Context, sessionID string) (cartsvc.Snapshot, error) {
	return s.snapshot, nil
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, itemID uuid.UUID, sizeValue string) (cartsvc.Snapshot, error) {
	return s.snapshot, nil
}

func (s *stubCartService) AdjustQuantity(ctx context.Context, sessionID string, index, delta int) (cartsvc.Snapshot, error) {
	return s.snapshot, nil
}

func (s *stubCartService) RemoveLine(ctx context.Context, sessionID string, index int) (cartsvc.Snapshot, error) {
	return s.snapshot, nil
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	return nil
}

type stubCheckoutService struct {
	lastSession string
}

func (s *stubCheckoutService) Submit(ctx context.Context, sessionID string, fields checkoutsvc.Fields) (*checkoutsvc.Confirmation, error) {
	s.lastSession = sessionID
	return &checkoutsvc.Confirmation{OrderID: 54321, State: "confirmed"}, nil
}

func newTestRouter(checkout *stubCheckoutService) http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"

	menuService := menu.NewService(&stubMenuRepo{})
	cartService := &stubCartService{snapshot: cartsvc.Snapshot{Lines: []cartsvc.Line{}, Subtotal: decimal.Zero}}

	return NewRouter(cfg, nil, nil, nil, menuService, cartService, checkout, nil)
}

func TestRouterServesHealthLive(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubCheckoutService{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Zaiqa-Env") != "test" {
		t.Fatal("expected env header on health response")
	}
}

func TestRouterServesMenu(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubCheckoutService{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterMintsSessionOnCartRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubCheckoutService{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatal("expected cart routes to establish a session")
	}
}

func TestRouterCheckoutCarriesSession(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckoutService{}
	router := newTestRouter(checkout)

	sessionID := uuid.NewString()
	body := `{"name":"Ali Khan","email":"ali@example.com","phone":"0300 1234567","address":"House 12, Street 4, Gulberg III, Lahore","payment_method":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if checkout.lastSession != sessionID {
		t.Fatalf("expected session %s to reach checkout, got %s", sessionID, checkout.lastSession)
	}

	var envelope struct {
		Data checkoutsvc.Confirmation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if envelope.Data.OrderID != 54321 {
		t.Fatalf("unexpected confirmation %+v", envelope.Data)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubCheckoutService{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
