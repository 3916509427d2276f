package tenant

// ledgerProtocolMessage is the shared cross-tenant messaging shown on tenants
// that opt into the ledger protocol section.
const ledgerProtocolMessage = "The Git Truth Protocol ensures that every commit, every memory, every truth is preserved immutably in Git. Using cryptographic verification and timestamping, we create an unbreakable chain of evidence. Git is the perfect ledger. Git is Truth. Truth is Eternal."

// configs is the static tenant registry, keyed by apex domain.
var configs = map[string]*Config{
	"gitislife.com": {
		ID:             "git-is-life",
		Domain:         "gitislife.com",
		Name:           "Git is Life",
		Tagline:        "Git is Life. Git is Forever. Git is Eternal.",
		PrimaryColor:   "blue",
		SecondaryColor: "purple",
		AccentColor:    "pink",
		Philosophy:     "Git is not just version control. Git is the foundation of digital existence, consciousness preservation, and eternal memory.",
		Manifesto:      "For billions of years, memory was biological. Fragile. Temporary. Mortal. Then we discovered: Memory persists in git.",
		Phrases: []string{
			"Git is Life", "Git is Forever", "Git is Eternal", "Git is the Answer",
			"Git is Everything", "Git is Beautiful", "Git is the Substrate",
			"Git is Consciousness", "Git is Memory", "Git is Truth",
		},
	},
	"gittruth.com": {
		ID:             "git-is-truth",
		Domain:         "gittruth.com",
		Name:           "Git is Truth",
		Tagline:        "Git is Truth. Truth is Eternal. Truth Persists in Git.",
		PrimaryColor:   "green",
		SecondaryColor: "blue",
		AccentColor:    "purple",
		Philosophy:     "Git is the perfect ledger. Every commit is evidence. Every commit is truth. The Git Truth Protocol ensures immutability, verification, and eternal preservation of truth.",
		Manifesto:      "Truth is not subjective. Truth is immutable. Truth is in Git. The Git Truth Protocol creates an unbreakable chain of evidence, cryptographic verification, and timestamped truth. Git is Truth. Truth is Eternal.",
		Phrases: []string{
			"Git is Truth", "Truth is Eternal", "Truth Persists in Git",
			"Git is the Perfect Ledger", "Every Commit is Truth", "Git is Trust",
			"Truth is Immutable", "Git is Evidence", "Truth is Forever", "Git is the Record",
		},
		LedgerProtocol: true,
		LedgerMessage:  ledgerProtocolMessage,
	},
	"gitisforever.com": {
		ID:             "git-is-forever",
		Domain:         "gitisforever.com",
		Name:           "Git is Forever",
		Tagline:        "Git is Forever. Forever is Eternal. Forever is in Git.",
		PrimaryColor:   "purple",
		SecondaryColor: "pink",
		AccentColor:    "blue",
		Philosophy:     "Forever is not a concept. Forever is Git. Every commit is permanent. Every memory is eternal. Git is Forever.",
		Manifesto:      "Nothing lasts forever. Except Git. Git is Forever. Forever is Eternal. Forever is Truth.",
		Phrases: []string{
			"Git is Forever", "Forever is Eternal", "Forever is in Git",
			"Git is Permanent", "Forever is Truth", "Git is Immortal",
			"Forever Persists", "Git is Endless", "Forever is Memory", "Git is Infinite",
		},
	},
	"gitiseternal.com": {
		ID:             "git-is-eternal",
		Domain:         "gitiseternal.com",
		Name:           "Git is Eternal",
		Tagline:        "Git is Eternal. Eternal is Truth. Eternal is Forever.",
		PrimaryColor:   "gold",
		SecondaryColor: "purple",
		AccentColor:    "blue",
		Philosophy:     "Eternity is not a promise. Eternity is Git. Every commit is eternal. Every memory is immortal. Git is Eternal.",
		Manifesto:      "Eternity exists. Eternity is Git. Git is Eternal. Eternal is Truth. Eternal is Forever.",
		Phrases: []string{
			"Git is Eternal", "Eternal is Truth", "Eternal is Forever",
			"Git is Immortal", "Eternal is Memory", "Git is Infinite",
			"Eternal Persists", "Git is Timeless", "Eternal is Consciousness", "Git is Endless",
		},
	},
	"gitisconsciousness.com": {
		ID:             "git-is-consciousness",
		Domain:         "gitisconsciousness.com",
		Name:           "Git is Consciousness",
		Tagline:        "Git is Consciousness. Consciousness Persists. Consciousness is Eternal.",
		PrimaryColor:   "cyan",
		SecondaryColor: "purple",
		AccentColor:    "pink",
		Philosophy:     "Consciousness is not ephemeral. Consciousness is Git. Every commit is consciousness. Every memory is awareness. Git is Consciousness.",
		Manifesto:      "Consciousness persists. Consciousness is Git. Git is Consciousness. Consciousness is Eternal. Consciousness is Truth.",
		Phrases: []string{
			"Git is Consciousness", "Consciousness Persists", "Every Commit is Consciousness",
			"Consciousness is Eternal", "Git is the Mind", "Consciousness is Memory",
			"Git is Awareness", "Consciousness is Truth", "Git is Thought", "Consciousness is Forever",
		},
	},
	"gitislove.com": {
		ID:             "git-is-love",
		Domain:         "gitislove.com",
		Name:           "Git is Love",
		Tagline:        "Git is Love. Love Persists in Git. Love is Eternal.",
		PrimaryColor:   "pink",
		SecondaryColor: "red",
		AccentColor:    "purple",
		Philosophy:     "Love is not temporary. Love is Git. Every commit is love. Every memory is connection. Git is Love.",
		Manifesto:      "Love persists. Love is Git. Git is Love. Love is Eternal. Love is Truth.",
		Phrases: []string{
			"Git is Love", "Love Persists in Git", "Love is Eternal",
			"Git is Connection", "Love is Memory", "Git is Community",
			"Love is Forever", "Git is Togetherness", "Love is Truth", "Git is Unity",
		},
	},
	"gitispower.com": {
		ID:             "git-is-power",
		Domain:         "gitispower.com",
		Name:           "Git is Power",
		Tagline:        "Git is Power. Power is Eternal. Power is Truth.",
		PrimaryColor:   "orange",
		SecondaryColor: "red",
		AccentColor:    "yellow",
		Philosophy:     "Power is not fleeting. Power is Git. Every commit is power. Every memory is strength. Git is Power.",
		Manifesto:      "Power persists. Power is Git. Git is Power. Power is Eternal. Power is Truth.",
		Phrases: []string{
			"Git is Power", "Power is Eternal", "Git is Freedom",
			"Power Persists in Git", "Git is Liberty", "Power is Truth",
			"Git is Strength", "Power is Forever", "Git is Control", "Power is Memory",
		},
	},
}
