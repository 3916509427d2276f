package tenant

import (
	"fmt"
	"net"
	"sort"
	"strings"
)

// Service resolves and lists tenant configurations.
type Service interface {
	// Resolve maps an HTTP Host header to a tenant, falling back to the
	// default tenant for unknown hosts.
	Resolve(host string) *Config

	// Get returns a tenant by its id.
	Get(id string) (*Config, error)

	// List returns all tenants ordered by domain.
	List() []*Config

	// ValidatePhrase checks a custom product phrase against the tenant's
	// phrase set. The empty phrase is always allowed.
	ValidatePhrase(tenantID, phrase string) error
}

type service struct {
	defaultDomain string
	byID          map[string]*Config
}

// NewService creates a tenant service. defaultDomain decides which tenant
// serves requests whose host matches no registered domain.
func NewService(defaultDomain string) Service {
	byID := make(map[string]*Config, len(configs))
	for _, c := range configs {
		byID[c.ID] = c
	}
	if _, ok := configs[defaultDomain]; !ok {
		defaultDomain = "gitislife.com"
	}
	return &service{defaultDomain: defaultDomain, byID: byID}
}

func (s *service) Resolve(host string) *Config {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if c, ok := configs[host]; ok {
		return c
	}
	return configs[s.defaultDomain]
}

func (s *service) Get(id string) (*Config, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown tenant %q", id)
	}
	return c, nil
}

func (s *service) List() []*Config {
	all := make([]*Config, 0, len(configs))
	for _, c := range configs {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Domain < all[j].Domain })
	return all
}

func (s *service) ValidatePhrase(tenantID, phrase string) error {
	if phrase == "" {
		return nil
	}
	c, err := s.Get(tenantID)
	if err != nil {
		return err
	}
	for _, p := range c.Phrases {
		if p == phrase {
			return nil
		}
	}
	return fmt.Errorf("phrase %q is not available for %s", phrase, c.Name)
}
