// Package promo loads the static listings shown on the promo slide.
package promo

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/signboard/internal/model"
)

//go:embed catalog.yml
var defaultCatalog []byte

type catalogFile struct {
	Listings []model.PromoListing `yaml:"listings"`
}

// Default returns the embedded catalog.
func Default() ([]model.PromoListing, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) ([]model.PromoListing, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("promo: read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document. Listings without a company are
// dropped; a catalog with nothing left is an error.
func Parse(data []byte) ([]model.PromoListing, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("promo: parse catalog: %w", err)
	}
	out := make([]model.PromoListing, 0, len(f.Listings))
	for _, l := range f.Listings {
		if strings.TrimSpace(l.Company) == "" {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("promo: catalog has no listings")
	}
	return out, nil
}
