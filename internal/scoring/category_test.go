package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

func TestCategoriesAreComplete(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 15)
	seen := map[string]bool{}
	for _, c := range cats {
		name := c.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate category %s", name)
		seen[name] = true
		assert.Equal(t, c, ParseCategory(name), "round trip %s", name)
		assert.NotEmpty(t, c.Rule())
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryCosmetics, ParseCategory("Cosmetics"))
	assert.Equal(t, CategoryLuxuryGoods, ParseCategory("  LUXURY_GOODS "))
	assert.Equal(t, CategoryUnknown, ParseCategory("spaceships"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestCategoryRules(t *testing.T) {
	// Each case gives a material just inside and just outside the rule.
	base := store.Material{Strength: 10, WeightCapacity: 1000, CostPerUnit: 1000, Biodegradability: 10, Recyclability: 100}
	with := func(f func(m *store.Material)) store.Material {
		m := base
		f(&m)
		return m
	}
	tests := []struct {
		category Category
		pass     store.Material
		fail     store.Material
	}{
		{CategoryFood, with(func(m *store.Material) { m.Biodegradability = 8 }), with(func(m *store.Material) { m.Biodegradability = 7.9 })},
		{CategoryBeverages, with(func(m *store.Material) { m.Strength = 3; m.Recyclability = 70 }), with(func(m *store.Material) { m.Recyclability = 69 })},
		{CategoryPharmaceuticals, with(func(m *store.Material) { m.Biodegradability = 6 }), with(func(m *store.Material) { m.Biodegradability = 5 })},
		{CategoryAgriculture, with(func(m *store.Material) { m.Biodegradability = 9 }), with(func(m *store.Material) { m.Biodegradability = 8 })},
		{CategoryElectronics, with(func(m *store.Material) { m.Strength = 4 }), with(func(m *store.Material) { m.Strength = 3 })},
		{CategoryAutomotiveParts, with(func(m *store.Material) { m.Strength = 5 }), with(func(m *store.Material) { m.Strength = 4 })},
		{CategoryConstructionTools, with(func(m *store.Material) { m.WeightCapacity = 50 }), with(func(m *store.Material) { m.WeightCapacity = 49 })},
		{CategoryIndustrialChemicals, with(func(m *store.Material) { m.Strength = 5; m.Recyclability = 50 }), with(func(m *store.Material) { m.Strength = 4 })},
		{CategoryCosmetics, with(func(m *store.Material) { m.Recyclability = 80 }), with(func(m *store.Material) { m.Recyclability = 79 })},
		{CategoryApparelFashion, with(func(m *store.Material) { m.Biodegradability = 7 }), with(func(m *store.Material) { m.Biodegradability = 6 })},
		{CategoryLuxuryGoods, with(func(m *store.Material) { m.CostPerUnit = 100 }), with(func(m *store.Material) { m.CostPerUnit = 99 })},
		{CategoryECommerceGeneral, with(func(m *store.Material) { m.Recyclability = 60 }), with(func(m *store.Material) { m.Recyclability = 59 })},
		{CategoryHomeAppliances, with(func(m *store.Material) { m.Strength = 4 }), with(func(m *store.Material) { m.Strength = 3 })},
		{CategoryToysBabyProducts, with(func(m *store.Material) { m.Biodegradability = 8; m.Strength = 2 }), with(func(m *store.Material) { m.Strength = 1 })},
		{CategoryOfficeSupplies, with(func(m *store.Material) { m.Recyclability = 90 }), with(func(m *store.Material) { m.Recyclability = 89 })},
	}
	require.Len(t, tests, len(Categories()), "every category needs a rule case")
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.True(t, tt.category.Admits(tt.pass))
			assert.False(t, tt.category.Admits(tt.fail))
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	catalog := []store.Material{
		{Name: "a", Recyclability: 95},
		{Name: "b", Recyclability: 40},
		{Name: "c", Recyclability: 80},
	}

	t.Run("keeps order", func(t *testing.T) {
		got, err := FilterByCategory(catalog, CategoryCosmetics)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Name)
		assert.Equal(t, "c", got[1].Name)
	})

	t.Run("unknown is identity", func(t *testing.T) {
		got, err := FilterByCategory(catalog, ParseCategory("spaceships"))
		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	})

	t.Run("empty result is no match", func(t *testing.T) {
		_, err := FilterByCategory(catalog, CategoryLuxuryGoods)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoMatch))
		var nm *NoMatchError
		require.True(t, errors.As(err, &nm))
		assert.Equal(t, StageCategory, nm.Stage)
		assert.Equal(t, "luxury_goods", nm.Value)
	})
}
