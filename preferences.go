package expense

import "fmt"

// Theme is the user's appearance preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeSystem, ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme: %q", s)
	}
}

// Preferences is process-wide configuration persisted alongside the ledger.
// It is not part of the balance invariants: the store records the fields and
// leaves conventions (e.g. a passcode accompanying an enabled app lock) to
// the presentation layer.
type Preferences struct {
	Theme          Theme  `json:"theme"`
	AppLockEnabled bool   `json:"appLockEnabled"`
	LastAccountID  string `json:"lastAccountId,omitempty"`
	Passcode       string `json:"passcode,omitempty"`
	Language       string `json:"language"`
}

// DefaultPreferences returns the preferences of a fresh ledger.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeSystem,
		Language: "en",
	}
}
