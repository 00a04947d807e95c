// Package provider manages the built-in catalog site scrapers.
package provider

import (
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/provider/pencuri"
)

// Provider represents a catalog site scraper.
type Provider struct {
	ID         string
	Name       string
	CreateSite func() (catalog.Site, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:         pencuri.ID,
			Name:       pencuri.Name,
			CreateSite: pencuri.NewFromConfig,
		},
	}
}

// Default returns the provider used when none is requested.
func Default() *Provider {
	return Builtins()[0]
}

// Get finds a provider by name or id, case-insensitively.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name) {
			return p, true
		}
	}
	return nil, false
}
