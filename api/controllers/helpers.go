package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/api/middleware"
	"github.com/oohdesk/oohdesk-backend/internal/inventory"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid identifier").
			WithDetails(map[string]string{param: "must be a UUID"})
	}
	return id, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid amount").
			WithDetails(map[string]string{field: "must be a decimal number"})
	}
	return value, nil
}

func parseOptionalAmount(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := parseAmount(field, *raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// actorFromContext reconstructs the authenticated actor placed in the request
// context by the auth middleware.
func actorFromContext(r *http.Request) (inventory.Actor, error) {
	ctx := r.Context()

	userRaw := middleware.UserIDFromContext(ctx)
	if userRaw == "" {
		return inventory.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	userID, err := uuid.Parse(userRaw)
	if err != nil {
		return inventory.Actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}

	role, err := enums.ParseRole(middleware.RoleFromContext(ctx))
	if err != nil {
		return inventory.Actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid role context")
	}

	actor := inventory.Actor{UserID: userID, Role: role}
	if supplierRaw := middleware.SupplierIDFromContext(ctx); supplierRaw != "" {
		supplierID, err := uuid.Parse(supplierRaw)
		if err != nil {
			return inventory.Actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid supplier context")
		}
		actor.SupplierID = &supplierID
	}
	return actor, nil
}

func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return id, nil
}
