package enums

import "fmt"

// ScreenType categorizes the physical form of an inventory item.
type ScreenType string

const (
	ScreenTypeBillboard        ScreenType = "billboard"
	ScreenTypeDigitalBillboard ScreenType = "digital_billboard"
	ScreenTypeLEDScreen        ScreenType = "led_screen"
	ScreenTypeStreetFurniture  ScreenType = "street_furniture"
	ScreenTypeTransit          ScreenType = "transit"
	ScreenTypeOther            ScreenType = "other"
)

var validScreenTypes = []ScreenType{
	ScreenTypeBillboard,
	ScreenTypeDigitalBillboard,
	ScreenTypeLEDScreen,
	ScreenTypeStreetFurniture,
	ScreenTypeTransit,
	ScreenTypeOther,
}

// String implements fmt.Stringer.
func (s ScreenType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ScreenType.
func (s ScreenType) IsValid() bool {
	for _, candidate := range validScreenTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseScreenType converts raw input into a ScreenType.
func ParseScreenType(value string) (ScreenType, error) {
	for _, candidate := range validScreenTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid screen type %q", value)
}
