package enums

import "fmt"

// InventoryStatus represents the availability of an inventory item. Any value
// may follow any other.
type InventoryStatus string

const (
	InventoryStatusAvailable   InventoryStatus = "available"
	InventoryStatusBooked      InventoryStatus = "booked"
	InventoryStatusMaintenance InventoryStatus = "maintenance"
	InventoryStatusReserved    InventoryStatus = "reserved"
)

var validInventoryStatuses = []InventoryStatus{
	InventoryStatusAvailable,
	InventoryStatusBooked,
	InventoryStatusMaintenance,
	InventoryStatusReserved,
}

// String implements fmt.Stringer.
func (i InventoryStatus) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InventoryStatus.
func (i InventoryStatus) IsValid() bool {
	for _, candidate := range validInventoryStatuses {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInventoryStatus converts raw input into an InventoryStatus.
func ParseInventoryStatus(value string) (InventoryStatus, error) {
	for _, candidate := range validInventoryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inventory status %q", value)
}
