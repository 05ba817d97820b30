package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/api/middleware"
	inventorysvc "github.com/oohdesk/oohdesk-backend/internal/inventory"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubInventoryService struct {
	actor      inventorysvc.Actor
	listFilter inventorysvc.ListInventoryFilter
	items      []inventorysvc.InventoryItemDTO
	item       *inventorysvc.InventoryItemDTO
	err        error
}

func (s *stubInventoryService) Create(ctx context.Context, actor inventorysvc.Actor, input inventorysvc.CreateInventoryItemInput) (*inventorysvc.InventoryItemDTO, error) {
	s.actor = actor
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubInventoryService) GetByID(ctx context.Context, actor inventorysvc.Actor, id uuid.UUID) (*inventorysvc.InventoryItemDTO, error) {
	s.actor = actor
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubInventoryService) List(ctx context.Context, actor inventorysvc.Actor, filter inventorysvc.ListInventoryFilter) ([]inventorysvc.InventoryItemDTO, error) {
	s.actor = actor
	s.listFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubInventoryService) Update(ctx context.Context, actor inventorysvc.Actor, id uuid.UUID, input inventorysvc.UpdateInventoryItemInput) (*inventorysvc.InventoryItemDTO, error) {
	s.actor = actor
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubInventoryService) Delete(ctx context.Context, actor inventorysvc.Actor, id uuid.UUID) error {
	s.actor = actor
	return s.err
}

func supplierActorContext(userID, supplierID uuid.UUID) context.Context {
	ctx := middleware.WithUserID(context.Background(), userID.String())
	ctx = middleware.WithRole(ctx, string(enums.RoleSupplierAdmin))
	ctx = middleware.WithSupplierID(ctx, supplierID.String())
	return ctx
}

func TestListInventory(t *testing.T) {
	logg := testLogger()

	t.Run("passes the actor through", func(t *testing.T) {
		userID := uuid.New()
		supplierID := uuid.New()
		stub := &stubInventoryService{items: []inventorysvc.InventoryItemDTO{}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil).
			WithContext(supplierActorContext(userID, supplierID))
		rec := httptest.NewRecorder()
		ListInventory(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.actor.UserID != userID {
			t.Fatalf("expected actor user %s, got %s", userID, stub.actor.UserID)
		}
		if stub.actor.Role != enums.RoleSupplierAdmin {
			t.Fatalf("expected supplier_admin actor, got %s", stub.actor.Role)
		}
		if stub.actor.SupplierID == nil || *stub.actor.SupplierID != supplierID {
			t.Fatalf("expected actor supplier %s, got %v", supplierID, stub.actor.SupplierID)
		}
	})

	t.Run("missing identity context", func(t *testing.T) {
		stub := &stubInventoryService{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
		rec := httptest.NewRecorder()
		ListInventory(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("query filters forwarded", func(t *testing.T) {
		userID := uuid.New()
		ctx := middleware.WithUserID(context.Background(), userID.String())
		ctx = middleware.WithRole(ctx, string(enums.RoleCampaignPlanner))
		stub := &stubInventoryService{items: []inventorysvc.InventoryItemDTO{}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?region=Gauteng&digital=true&limit=5", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		ListInventory(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.listFilter.Region == nil || *stub.listFilter.Region != "Gauteng" {
			t.Fatalf("expected region filter, got %v", stub.listFilter.Region)
		}
		if stub.listFilter.Digital == nil || !*stub.listFilter.Digital {
			t.Fatalf("expected digital filter, got %v", stub.listFilter.Digital)
		}
		if stub.listFilter.Limit != 5 {
			t.Fatalf("expected limit 5, got %d", stub.listFilter.Limit)
		}
	})

	t.Run("invalid screen_type filter", func(t *testing.T) {
		userID := uuid.New()
		ctx := middleware.WithUserID(context.Background(), userID.String())
		ctx = middleware.WithRole(ctx, string(enums.RoleCampaignPlanner))
		stub := &stubInventoryService{}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?screen_type=hologram", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		ListInventory(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCreateInventoryItem(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()
	supplierID := uuid.New()

	body := `{
		"screen_name": "N1 Western Bypass Billboard",
		"screen_type": "billboard",
		"location": "N1 Western Bypass, Randburg",
		"region": "Gauteng",
		"daily_rate": "1500.00",
		"weekly_rate": "9000.00",
		"monthly_rate": "32000.00"
	}`

	t.Run("creates with actor scope", func(t *testing.T) {
		stub := &stubInventoryService{item: &inventorysvc.InventoryItemDTO{ID: uuid.New(), SupplierID: supplierID}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(body)).
			WithContext(supplierActorContext(userID, supplierID))
		rec := httptest.NewRecorder()
		CreateInventoryItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if stub.actor.SupplierID == nil || *stub.actor.SupplierID != supplierID {
			t.Fatalf("expected actor supplier %s, got %v", supplierID, stub.actor.SupplierID)
		}
	})

	t.Run("rejects malformed rate", func(t *testing.T) {
		stub := &stubInventoryService{}
		bad := strings.Replace(body, `"1500.00"`, `"lots"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(bad)).
			WithContext(supplierActorContext(userID, supplierID))
		rec := httptest.NewRecorder()
		CreateInventoryItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("no affiliation maps to 403", func(t *testing.T) {
		stub := &stubInventoryService{err: pkgerrors.New(pkgerrors.CodeForbidden, "account has no supplier affiliation")}
		ctx := middleware.WithUserID(context.Background(), userID.String())
		ctx = middleware.WithRole(ctx, string(enums.RoleSupplierUser))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		CreateInventoryItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestGetInventoryItem(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()
	supplierID := uuid.New()
	itemID := uuid.New()

	t.Run("foreign row reads as 404", func(t *testing.T) {
		stub := &stubInventoryService{err: pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")}
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", itemID.String())
		ctx := context.WithValue(supplierActorContext(userID, supplierID), chi.RouteCtxKey, routeCtx)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/"+itemID.String(), nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		GetInventoryItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		stub := &stubInventoryService{}
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", "not-a-uuid")
		ctx := context.WithValue(supplierActorContext(userID, supplierID), chi.RouteCtxKey, routeCtx)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/not-a-uuid", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		GetInventoryItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
