package models

import (
	"strconv"
	"time"
)

// DocumentType determines how a document number is masked for display.
type DocumentType string

const (
	// DocumentTypeAadhaar is a 12-digit national-ID-style number.
	DocumentTypeAadhaar DocumentType = "aadhaar"

	// DocumentTypePAN is a 10-character alphanumeric tax-ID-style number.
	DocumentTypePAN DocumentType = "pan"

	DocumentTypeDrivingLicense DocumentType = "driving_license"
	DocumentTypePassport       DocumentType = "passport"
)

// Document is a stored identity document. The document number is kept in
// plaintext; redaction is a display-time concern handled by
// [MaskDocumentNumber]. Image payloads are opaque references (blob id or
// URL), not inline binary.
type Document struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	Type           DocumentType `json:"type"`
	Name           string       `json:"name"`
	DocumentNumber string       `json:"documentNumber"`
	ExpiryDate     string       `json:"expiryDate,omitempty"`
	FrontImage     string       `json:"frontImage,omitempty"`
	BackImage      string       `json:"backImage,omitempty"`
	IsPrimary      bool         `json:"isPrimary"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// FieldMap flattens the document into the backend field shape.
func (d Document) FieldMap() map[string]string {
	return map[string]string{
		FieldDocumentType:   string(d.Type),
		FieldName:           d.Name,
		FieldDocumentNumber: d.DocumentNumber,
		FieldExpiryDate:     d.ExpiryDate,
		FieldFrontImage:     d.FrontImage,
		FieldBackImage:      d.BackImage,
		FieldIsPrimary:      strconv.FormatBool(d.IsPrimary),
	}
}

// DocumentFromRecord builds the typed view from a record.
func DocumentFromRecord(r Record) Document {
	isPrimary, _ := strconv.ParseBool(r.Field(FieldIsPrimary))
	return Document{
		ID:             r.ID,
		UserID:         r.UserID,
		Type:           DocumentType(r.Field(FieldDocumentType)),
		Name:           r.Field(FieldName),
		DocumentNumber: r.Field(FieldDocumentNumber),
		ExpiryDate:     r.Field(FieldExpiryDate),
		FrontImage:     r.Field(FieldFrontImage),
		BackImage:      r.Field(FieldBackImage),
		IsPrimary:      isPrimary,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
