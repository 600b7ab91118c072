package models

import "strings"

// Masking helpers provide display-time partial redaction of sensitive
// plaintext. They never touch the stored ciphertext; callers mask the
// decrypted value just before rendering.

// MaskAccountNumber redacts an account number for display. When visible is
// true the value is returned untouched. Otherwise every digit except the
// trailing four is replaced with '*'; non-digit grouping characters
// (spaces, dashes) are preserved, so the output always has the same length
// as the input.
func MaskAccountNumber(accountNumber string, visible bool) string {
	if visible {
		return accountNumber
	}
	return maskDigitsButLastFour(accountNumber)
}

// MaskCardNumber redacts a card number the same way as
// [MaskAccountNumber]: only the last four digits stay visible, spacing is
// preserved.
func MaskCardNumber(cardNumber string, visible bool) string {
	if visible {
		return cardNumber
	}
	return maskDigitsButLastFour(cardNumber)
}

// MaskDocumentNumber redacts a document number according to its type:
//
//   - aadhaar: a 12-digit national id — all digits but the last four are
//     masked, grouping preserved;
//   - pan: a 10-character alphanumeric tax id — the first two characters
//     and the suffix after position five stay visible, the middle is
//     replaced with "***";
//   - anything else: only the trailing four characters stay visible, and
//     inputs of four characters or fewer are returned unchanged.
//
// The pan mask applies even to short inputs, so "AB" becomes "AB***".
func MaskDocumentNumber(number string, docType DocumentType) string {
	switch docType {
	case DocumentTypeAadhaar:
		return maskDigitsButLastFour(number)
	case DocumentTypePAN:
		head := number
		if len(head) > 2 {
			head = head[:2]
		}
		tail := ""
		if len(number) > 5 {
			tail = number[5:]
		}
		return head + "***" + tail
	default:
		if len(number) <= 4 {
			return number
		}
		return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
	}
}

// maskDigitsButLastFour replaces every digit that has at least four more
// digits after it with '*'. Non-digit characters pass through untouched.
func maskDigitsButLastFour(s string) string {
	total := 0
	for _, c := range []byte(s) {
		if c >= '0' && c <= '9' {
			total++
		}
	}

	out := []byte(s)
	seen := 0
	for i, c := range out {
		if c >= '0' && c <= '9' {
			seen++
			if total-seen >= 4 {
				out[i] = '*'
			}
		}
	}
	return string(out)
}
