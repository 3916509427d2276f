package tenant

// Config describes one themed storefront sharing this backend. Tenants are
// distinguished by domain; everything else (branding, phrase set, messaging)
// hangs off that lookup.
type Config struct {
	ID             string   `json:"id"`
	Domain         string   `json:"domain"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	AccentColor    string   `json:"accent_color"`
	Philosophy     string   `json:"philosophy"`
	Manifesto      string   `json:"manifesto"`
	Phrases        []string `json:"phrases"`
	LedgerProtocol bool     `json:"ledger_protocol"`
	LedgerMessage  string   `json:"ledger_message,omitempty"`
}
