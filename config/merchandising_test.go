package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMerchandisingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchandising.yaml")
	content := `
brand_priority:
  - gucci
  - prada
deal_brands:
  - nike
curated_brands:
  - tom ford
excluded_keywords:
  - gift card
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := loadMerchandisingFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gucci", "prada"}, m.BrandPriority)
	assert.Equal(t, []string{"nike"}, m.DealBrands)
	assert.Equal(t, []string{"tom ford"}, m.CuratedBrands)
	assert.Equal(t, []string{"gift card"}, m.ExcludedKeywords)
}

func TestLoadMerchandisingMissingFile(t *testing.T) {
	t.Setenv("MERCHANDISING_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	// Missing file degrades to empty lists rather than failing startup.
	m := LoadMerchandising()
	assert.Empty(t, m.BrandPriority)
	assert.Empty(t, m.DealBrands)
}

func TestLoadMerchandisingBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchandising.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand_priority: {not a list"), 0o644))

	_, err := loadMerchandisingFile(path)
	assert.Error(t, err)
}
