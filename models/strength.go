package models

// Strength is the derived password-strength classification stored with a
// credential.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordStrength classifies a password purely by length: fewer than 8
// characters is weak, fewer than 12 is medium, everything else is strong.
// No entropy or character-set analysis is applied.
func PasswordStrength(password string) Strength {
	switch {
	case len(password) < 8:
		return StrengthWeak
	case len(password) < 12:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
