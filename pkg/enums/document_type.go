package enums

import "fmt"

// DocumentType categorizes uploaded campaign and booking paperwork.
type DocumentType string

const (
	DocumentTypeArtwork          DocumentType = "artwork"
	DocumentTypeProofOfFlighting DocumentType = "proof_of_flighting"
	DocumentTypeComplianceSBD    DocumentType = "compliance_sbd"
	DocumentTypeComplianceCSO    DocumentType = "compliance_cso"
	DocumentTypeInvoice          DocumentType = "invoice"
	DocumentTypeOther            DocumentType = "other"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeArtwork,
	DocumentTypeProofOfFlighting,
	DocumentTypeComplianceSBD,
	DocumentTypeComplianceCSO,
	DocumentTypeInvoice,
	DocumentTypeOther,
}

// String implements fmt.Stringer.
func (d DocumentType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DocumentType.
func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
