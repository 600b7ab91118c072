package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		visible bool
		want    string
	}{
		{
			name: "fourteen digits keeps last four",
			in:   "12345678901234",
			want: "**********1234",
		},
		{
			name: "grouping characters preserved",
			in:   "4111 1111 1111 1111",
			want: "**** **** **** 1111",
		},
		{
			name: "exactly four digits untouched",
			in:   "1234",
			want: "1234",
		},
		{
			name: "shorter than four digits untouched",
			in:   "12",
			want: "12",
		},
		{
			name:    "visible returns input unchanged",
			in:      "12345678901234",
			visible: true,
			want:    "12345678901234",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskAccountNumber(tt.in, tt.visible)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.in), "masked output must keep input length")
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 9012", MaskCardNumber("4532 1234 5678 9012", false))
	assert.Equal(t, "4532 1234 5678 9012", MaskCardNumber("4532 1234 5678 9012", true))
}

func TestMaskDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		docType DocumentType
		want    string
	}{
		{
			name:    "aadhaar masks all but last four digits",
			number:  "123456789012",
			docType: DocumentTypeAadhaar,
			want:    "********9012",
		},
		{
			name:    "aadhaar with grouping",
			number:  "1234 5678 9012",
			docType: DocumentTypeAadhaar,
			want:    "**** **** 9012",
		},
		{
			name:    "pan reveals prefix and suffix",
			number:  "ABCDE1234F",
			docType: DocumentTypePAN,
			want:    "AB***1234F",
		},
		{
			name:    "passport masks all but last four characters",
			number:  "M1234567",
			docType: DocumentTypePassport,
			want:    "****4567",
		},
		{
			name:    "driving license masks all but last four characters",
			number:  "DL-0120211234567",
			docType: DocumentTypeDrivingLicense,
			want:    "************4567",
		},
		{
			name:    "short pan still gets the middle mask",
			number:  "AB",
			docType: DocumentTypePAN,
			want:    "AB***",
		},
		{
			name:    "short default-type number returned unchanged",
			number:  "A12",
			docType: DocumentTypePassport,
			want:    "A12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskDocumentNumber(tt.number, tt.docType))
		})
	}
}
