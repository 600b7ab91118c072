package models

// RegisterRequest is the JSON body of the account-creation endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of the authentication endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login on success. The
// session token is also duplicated in the Authorization response header.
type AuthResponse struct {
	User  UserIdentity `json:"user"`
	Token string       `json:"token"`
}

// ErrorResponse is the JSON error envelope used by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`

	// MissingFields lists the offending field names for validation
	// failures so form UIs can highlight them.
	MissingFields []string `json:"missingFields,omitempty"`
}
