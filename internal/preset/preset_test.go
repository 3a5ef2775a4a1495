package preset_test

import (
	"testing"

	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPick는 항상 idx를 반환하고 마지막으로 받은 n을 기록한다.
func fixedPick(idx int, lastN *int) func(int) int {
	return func(n int) int {
		*lastN = n
		return idx
	}
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func TestCatalog_SixDistinctNames(t *testing.T) {
	assert.Len(t, preset.Catalog, 6)
	assert.Len(t, set(preset.Catalog...), 6)
}

func TestSelect_ExplicitWins(t *testing.T) {
	var n int
	got := preset.Select("Custom Theme", "Tango Dark", set(), fixedPick(0, &n))
	assert.Equal(t, "Custom Theme", got)
	assert.Zero(t, n, "pick must not be consulted")
}

func TestSelect_SavedReused(t *testing.T) {
	var n int
	got := preset.Select("", "Smoooooth", set("Smoooooth"), fixedPick(0, &n))
	assert.Equal(t, "Smoooooth", got)
	assert.Zero(t, n)
}

func TestSelect_ExcludesInUse(t *testing.T) {
	var n int
	inUse := set("Solarized Dark", "Tango Dark")

	got := preset.Select("", "", inUse, fixedPick(0, &n))

	assert.Equal(t, 4, n)
	assert.Equal(t, "Pastel (Dark Background)", got)
}

func TestSelect_OrderPreservedAmongCandidates(t *testing.T) {
	var n int
	inUse := set("Solarized Dark", "Pastel (Dark Background)", "Dark Background")

	got := preset.Select("", "", inUse, fixedPick(2, &n))

	assert.Equal(t, 3, n)
	assert.Equal(t, "Solarized Light", got)
}

func TestSelect_FallsBackToFullCatalog(t *testing.T) {
	var n int
	inUse := set(preset.Catalog...)

	got := preset.Select("", "", inUse, fixedPick(5, &n))

	assert.Equal(t, 6, n)
	assert.Equal(t, "Solarized Light", got)
}

func TestSelect_IgnoresUnknownInUseNames(t *testing.T) {
	var n int
	preset.Select("", "", set("Not A Preset"), fixedPick(0, &n))
	assert.Equal(t, 6, n)
}

func TestSelect_DefaultRandomStaysInCatalog(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := preset.Select("", "", set("Tango Dark"), nil)
		assert.Contains(t, preset.Catalog, got)
		assert.NotEqual(t, "Tango Dark", got)
	}
}

func TestParseCatalog(t *testing.T) {
	catalog, err := preset.ParseCatalog(testutil.CatalogJSON())
	require.NoError(t, err)
	for _, name := range preset.Catalog {
		assert.Contains(t, catalog, name)
	}
	assert.Contains(t, catalog["Solarized Dark"], "Background Color")
}

func TestParseCatalog_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not json", "[]", "null"} {
		_, err := preset.ParseCatalog(raw)
		assert.Error(t, err, "input %q", raw)
	}
}
