package models

import (
	"strconv"
	"time"
)

// BankDetail is the decrypted view of a stored bank account. The account
// number is always encrypted at rest; customer id, PIN and net banking
// credentials are optional and encrypted only when present, so an absent
// value round-trips as absent rather than as an encrypted empty string.
type BankDetail struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	BankName           string    `json:"bankName"`
	AccountHolderName  string    `json:"accountHolderName"`
	AccountNumber      string    `json:"accountNumber"`
	IFSCCode           string    `json:"ifscCode"`
	AccountType        string    `json:"accountType,omitempty"`
	CustomerID         string    `json:"customerId,omitempty"`
	PIN                string    `json:"pin,omitempty"`
	NetBankingID       string    `json:"netBankingId,omitempty"`
	NetBankingPassword string    `json:"netBankingPassword,omitempty"`
	// IsPrimary is advisory only: the store does not enforce
	// at-most-one-primary-per-type.
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FieldMap flattens the bank detail into the backend field shape.
func (b BankDetail) FieldMap() map[string]string {
	return map[string]string{
		FieldBankName:           b.BankName,
		FieldAccountHolderName:  b.AccountHolderName,
		FieldAccountNumber:      b.AccountNumber,
		FieldIFSCCode:           b.IFSCCode,
		FieldAccountType:        b.AccountType,
		FieldCustomerID:         b.CustomerID,
		FieldPIN:                b.PIN,
		FieldNetBankingID:       b.NetBankingID,
		FieldNetBankingPassword: b.NetBankingPassword,
		FieldIsPrimary:          strconv.FormatBool(b.IsPrimary),
	}
}

// BankDetailFromRecord builds the typed view from a decrypted record.
func BankDetailFromRecord(r Record) BankDetail {
	isPrimary, _ := strconv.ParseBool(r.Field(FieldIsPrimary))
	return BankDetail{
		ID:                 r.ID,
		UserID:             r.UserID,
		BankName:           r.Field(FieldBankName),
		AccountHolderName:  r.Field(FieldAccountHolderName),
		AccountNumber:      r.Field(FieldAccountNumber),
		IFSCCode:           r.Field(FieldIFSCCode),
		AccountType:        r.Field(FieldAccountType),
		CustomerID:         r.Field(FieldCustomerID),
		PIN:                r.Field(FieldPIN),
		NetBankingID:       r.Field(FieldNetBankingID),
		NetBankingPassword: r.Field(FieldNetBankingPassword),
		IsPrimary:          isPrimary,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
