package enums

import "fmt"

// DocumentStatus represents the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "uploaded"
	DocumentStatusValidated DocumentStatus = "validated"
	DocumentStatusRejected  DocumentStatus = "rejected"
)

var validDocumentStatuses = []DocumentStatus{
	DocumentStatusUploaded,
	DocumentStatusValidated,
	DocumentStatusRejected,
}

// String implements fmt.Stringer.
func (d DocumentStatus) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DocumentStatus.
func (d DocumentStatus) IsValid() bool {
	for _, candidate := range validDocumentStatuses {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentStatus converts raw input into a DocumentStatus.
func ParseDocumentStatus(value string) (DocumentStatus, error) {
	for _, candidate := range validDocumentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document status %q", value)
}
