package models

import "time"

// Credential is the decrypted view of a stored login credential. The
// password is the only encrypted-at-rest field; Strength is derived from
// the plaintext password at write time and stored alongside the record.
type Credential struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	FolderID  string    `json:"folderId,omitempty"`
	Strength  Strength  `json:"strength"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FieldMap flattens the credential into the backend field shape. The
// derived strength is recomputed by the service layer, not taken from the
// caller.
func (c Credential) FieldMap() map[string]string {
	return map[string]string{
		FieldTitle:    c.Title,
		FieldUsername: c.Username,
		FieldPassword: c.Password,
		FieldURL:      c.URL,
		FieldNotes:    c.Notes,
		FieldFolderID: c.FolderID,
	}
}

// CredentialFromRecord builds the typed view from a decrypted record.
func CredentialFromRecord(r Record) Credential {
	return Credential{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Field(FieldTitle),
		Username:  r.Field(FieldUsername),
		Password:  r.Field(FieldPassword),
		URL:       r.Field(FieldURL),
		Notes:     r.Field(FieldNotes),
		FolderID:  r.Field(FieldFolderID),
		Strength:  Strength(r.Field(FieldStrength)),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
