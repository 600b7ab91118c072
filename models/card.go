package models

import "time"

// CardType distinguishes credit from debit cards.
type CardType string

const (
	CardTypeCredit CardType = "credit"
	CardTypeDebit  CardType = "debit"
)

// CardVariant is the payment network of a card.
type CardVariant string

const (
	CardVariantVisa       CardVariant = "visa"
	CardVariantMastercard CardVariant = "mastercard"
	CardVariantRupay      CardVariant = "rupay"
)

// BankCard is the decrypted view of a stored payment card. CardNumber and
// CVV are encrypted at rest; everything else is descriptive plaintext.
type BankCard struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	Type           CardType    `json:"type,omitempty"`
	BankName       string      `json:"bankName"`
	CardName       string      `json:"cardName"`
	CardHolderName string      `json:"cardHolderName"`
	Variant        CardVariant `json:"variant,omitempty"`
	CardNumber     string      `json:"cardNumber"`
	CVV            string      `json:"cvv"`
	ValidFrom      string      `json:"validFrom,omitempty"`
	ValidTo        string      `json:"validTo,omitempty"`
	Color          string      `json:"color,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// FieldMap flattens the card into the backend field shape.
func (c BankCard) FieldMap() map[string]string {
	return map[string]string{
		FieldCardType:       string(c.Type),
		FieldBankName:       c.BankName,
		FieldCardName:       c.CardName,
		FieldCardHolderName: c.CardHolderName,
		FieldCardVariant:    string(c.Variant),
		FieldCardNumber:     c.CardNumber,
		FieldCVV:            c.CVV,
		FieldValidFrom:      c.ValidFrom,
		FieldValidTo:        c.ValidTo,
		FieldCardColor:      c.Color,
	}
}

// BankCardFromRecord builds the typed view from a decrypted record.
func BankCardFromRecord(r Record) BankCard {
	return BankCard{
		ID:             r.ID,
		UserID:         r.UserID,
		Type:           CardType(r.Field(FieldCardType)),
		BankName:       r.Field(FieldBankName),
		CardName:       r.Field(FieldCardName),
		CardHolderName: r.Field(FieldCardHolderName),
		Variant:        CardVariant(r.Field(FieldCardVariant)),
		CardNumber:     r.Field(FieldCardNumber),
		CVV:            r.Field(FieldCVV),
		ValidFrom:      r.Field(FieldValidFrom),
		ValidTo:        r.Field(FieldValidTo),
		Color:          r.Field(FieldCardColor),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
