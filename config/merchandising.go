package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Merchandising holds the externally maintained brand lists that drive the
// curated and deals endpoints. The merchandising team edits the YAML file;
// nothing in here is code.
type Merchandising struct {
	// BrandPriority is the ordered brand ranking used by the custom sort.
	// Earlier means more prominent.
	BrandPriority []string `yaml:"brand_priority"`

	// DealBrands is the allow-list for the best-deals endpoints. Empty means
	// every brand qualifies.
	DealBrands []string `yaml:"deal_brands"`

	// CuratedBrands are the brand keywords whose matches are unioned into
	// the curated listing.
	CuratedBrands []string `yaml:"curated_brands"`

	// ExcludedKeywords removes products whose name contains any of these
	// from merchandised listings.
	ExcludedKeywords []string `yaml:"excluded_keywords"`
}

// LoadMerchandising reads the merchandising config from MERCHANDISING_FILE
// (default merchandising.yaml). A missing file is not fatal: the storefront
// still works, just without curated ordering.
func LoadMerchandising() Merchandising {
	path := os.Getenv("MERCHANDISING_FILE")
	if path == "" {
		path = "merchandising.yaml"
	}

	m, err := loadMerchandisingFile(path)
	if err != nil {
		log.Printf("⚠️  merchandising config not loaded (%v), using empty lists", err)
		return Merchandising{}
	}

	log.Printf("✅ Merchandising config loaded: %d priority brands, %d deal brands, %d curated brands",
		len(m.BrandPriority), len(m.DealBrands), len(m.CuratedBrands))
	return m
}

func loadMerchandisingFile(path string) (Merchandising, error) {
	var m Merchandising

	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
