package brand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadKnownBrands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.txt")
	content := "# shelf survey brand list\nSusante\n\n  Levite  \n# trailing comment\nVillavicencio\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	brands, err := LoadKnownBrands(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Susante", "Levite", "Villavicencio"}, brands)
}

func TestLoadKnownBrandsMissingFile(t *testing.T) {
	brands, err := LoadKnownBrands(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	require.Empty(t, brands)
}

func TestLoadKnownBrandsSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.txt")
	content := "Susante\n\xff\xfe\nLevite\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	brands, err := LoadKnownBrands(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Susante", "Levite"}, brands)
}
