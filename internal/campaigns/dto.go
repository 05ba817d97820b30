package campaigns

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// CampaignDTO exposes campaign data in API responses. Budget serializes as a
// quoted decimal string so the value survives JSON round-trips exactly.
type CampaignDTO struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      enums.CampaignStatus `json:"status"`
	Budget      decimal.Decimal      `json:"budget"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Region      string               `json:"region"`
	TargetReach int64                `json:"target_reach"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// CreateCampaignInput holds the data required to plan a campaign.
type CreateCampaignInput struct {
	Name        string
	Description string
	Budget      decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Region      string
	TargetReach int64
	CreatedBy   uuid.UUID
}

// UpdateCampaignInput captures the mutable campaign fields.
type UpdateCampaignInput struct {
	Name        *string
	Description *string
	Status      *enums.CampaignStatus
	Budget      *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Region      *string
	TargetReach *int64
}

// ListCampaignsFilter narrows campaign listings.
type ListCampaignsFilter struct {
	Status    *enums.CampaignStatus
	Region    *string
	CreatedBy *uuid.UUID
	Limit     int
}

// FromModel maps the persisted campaign into a DTO.
func FromModel(m *models.Campaign) *CampaignDTO {
	if m == nil {
		return nil
	}
	return &CampaignDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		Budget:      m.Budget,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Region:      m.Region,
		TargetReach: m.TargetReach,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation input. New campaigns always
// start in draft.
func (c CreateCampaignInput) ToModel() *models.Campaign {
	return &models.Campaign{
		Name:        c.Name,
		Description: c.Description,
		Status:      enums.CampaignStatusDraft,
		Budget:      c.Budget,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Region:      c.Region,
		TargetReach: c.TargetReach,
		CreatedBy:   c.CreatedBy,
	}
}
