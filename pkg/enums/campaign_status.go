package enums

import "fmt"

// CampaignStatus represents the lifecycle stage of a campaign. Any value may
// follow any other; the set is validated but transitions are not.
type CampaignStatus string

const (
	CampaignStatusDraft           CampaignStatus = "draft"
	CampaignStatusPendingApproval CampaignStatus = "pending_approval"
	CampaignStatusApproved        CampaignStatus = "approved"
	CampaignStatusInProgress      CampaignStatus = "in_progress"
	CampaignStatusCompleted       CampaignStatus = "completed"
	CampaignStatusCancelled       CampaignStatus = "cancelled"
)

var validCampaignStatuses = []CampaignStatus{
	CampaignStatusDraft,
	CampaignStatusPendingApproval,
	CampaignStatusApproved,
	CampaignStatusInProgress,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
}

// String implements fmt.Stringer.
func (c CampaignStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CampaignStatus.
func (c CampaignStatus) IsValid() bool {
	for _, candidate := range validCampaignStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCampaignStatus converts raw input into a CampaignStatus.
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	for _, candidate := range validCampaignStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid campaign status %q", value)
}
