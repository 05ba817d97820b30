package enums

import "fmt"

// MediaType categorizes the physical medium a booking occupies.
type MediaType string

const (
	MediaTypeBillboard       MediaType = "billboard"
	MediaTypeDigitalScreen   MediaType = "digital_screen"
	MediaTypeStreetFurniture MediaType = "street_furniture"
	MediaTypeTransit         MediaType = "transit"
	MediaTypeOther           MediaType = "other"
)

var validMediaTypes = []MediaType{
	MediaTypeBillboard,
	MediaTypeDigitalScreen,
	MediaTypeStreetFurniture,
	MediaTypeTransit,
	MediaTypeOther,
}

// String implements fmt.Stringer.
func (m MediaType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MediaType.
func (m MediaType) IsValid() bool {
	for _, candidate := range validMediaTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMediaType converts raw input into a MediaType.
func ParseMediaType(value string) (MediaType, error) {
	for _, candidate := range validMediaTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid media type %q", value)
}
