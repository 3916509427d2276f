package consent

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Preferences records a visitor's cookie-consent choices. Necessary is
// always true; only analytics and marketing are optional.
type Preferences struct {
	Necessary bool      `json:"necessary"`
	Analytics bool      `json:"analytics"`
	Marketing bool      `json:"marketing"`
	Timestamp time.Time `json:"timestamp"`
}

// EncodeParam serializes preferences into a URL-safe token so consent can
// follow the visitor across storefront domains as a query parameter.
func EncodeParam(p Preferences) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeParam reverses EncodeParam. Callers treat any error as "no consent
// carried over" rather than failing the request.
func DecodeParam(param string) (Preferences, error) {
	raw, err := base64.RawURLEncoding.DecodeString(param)
	if err != nil {
		return Preferences{}, fmt.Errorf("invalid consent parameter: %w", err)
	}
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, fmt.Errorf("invalid consent parameter: %w", err)
	}
	return p, nil
}
