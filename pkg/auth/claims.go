package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID     uuid.UUID
	Role       enums.Role
	SupplierID *uuid.UUID
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID     uuid.UUID  `json:"user_id"`
	Role       enums.Role `json:"role"`
	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	jwt.RegisteredClaims
}
