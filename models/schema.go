package models

// Collection names as they appear in the persistence backend. The four item
// collections plus the account directory.
const (
	CollectionCredentials = "credentials"
	CollectionCards       = "cards"
	CollectionBankDetails = "bankDetails"
	CollectionDocuments   = "documents"
	CollectionUsers       = "users"
)

// Schema declares, per collection, which fields must be present on create
// and which fields are sensitive (encrypted at rest). The record store is
// parameterized by a Schema and applies the crypto codec only to the
// Sensitive list; optional sensitive fields are skipped entirely when empty.
type Schema struct {
	// Collection is the backend collection name.
	Collection string

	// Required lists the fields that must be non-empty on create.
	Required []string

	// Sensitive lists the fields passed through the crypto codec on
	// write and read. Never persisted in plaintext.
	Sensitive []string
}

// IsSensitive reports whether the named field is subject to encryption.
func (s Schema) IsSensitive(field string) bool {
	for _, f := range s.Sensitive {
		if f == field {
			return true
		}
	}
	return false
}

// CredentialsSchema describes the login-credential collection.
var CredentialsSchema = Schema{
	Collection: CollectionCredentials,
	Required:   []string{FieldTitle, FieldUsername, FieldPassword},
	Sensitive:  []string{FieldPassword},
}

// CardsSchema describes the bank-card collection. Card number and CVV are
// the sensitive pair.
var CardsSchema = Schema{
	Collection: CollectionCards,
	Required:   []string{FieldBankName, FieldCardName, FieldCardHolderName, FieldCardNumber, FieldCVV},
	Sensitive:  []string{FieldCardNumber, FieldCVV},
}

// BankDetailsSchema describes the bank-account collection. Only the account
// number is mandatory among the sensitive fields; customer id, PIN and net
// banking credentials are optional and encrypted only when present.
var BankDetailsSchema = Schema{
	Collection: CollectionBankDetails,
	Required:   []string{FieldBankName, FieldAccountHolderName, FieldAccountNumber, FieldIFSCCode},
	Sensitive: []string{
		FieldAccountNumber,
		FieldCustomerID,
		FieldPIN,
		FieldNetBankingID,
		FieldNetBankingPassword,
	},
}

// DocumentsSchema describes the identity-document collection. The document
// number is stored in plaintext; redaction happens at display time via
// [MaskDocumentNumber].
var DocumentsSchema = Schema{
	Collection: CollectionDocuments,
	Required:   []string{FieldDocumentType, FieldName, FieldDocumentNumber},
	Sensitive:  nil,
}

// UsersSchema describes the account directory. The password never reaches
// the backend in any reversible form: the user directory replaces it with a
// one-way hash before storage, so the schema carries no sensitive fields.
var UsersSchema = Schema{
	Collection: CollectionUsers,
	Required:   []string{FieldName, FieldEmail, FieldHashedPassword},
	Sensitive:  nil,
}

// Field name constants shared by schemas, typed entities and validators.
const (
	FieldTitle    = "title"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldURL      = "url"
	FieldNotes    = "notes"
	FieldFolderID = "folderId"
	FieldStrength = "strength"

	FieldCardType       = "type"
	FieldBankName       = "bankName"
	FieldCardName       = "cardName"
	FieldCardHolderName = "cardHolderName"
	FieldCardVariant    = "variant"
	FieldCardNumber     = "cardNumber"
	FieldCVV            = "cvv"
	FieldValidFrom      = "validFrom"
	FieldValidTo        = "validTo"
	FieldCardColor      = "color"

	FieldAccountHolderName  = "accountHolderName"
	FieldAccountNumber      = "accountNumber"
	FieldIFSCCode           = "ifscCode"
	FieldAccountType        = "accountType"
	FieldCustomerID         = "customerId"
	FieldPIN                = "pin"
	FieldNetBankingID       = "netBankingId"
	FieldNetBankingPassword = "netBankingPassword"
	FieldIsPrimary          = "isPrimary"

	FieldDocumentType   = "type"
	FieldName           = "name"
	FieldDocumentNumber = "documentNumber"
	FieldExpiryDate     = "expiryDate"
	FieldFrontImage     = "frontImage"
	FieldBackImage      = "backImage"

	FieldEmail          = "email"
	FieldHashedPassword = "hashedPassword"
)
