package scoring

import (
	"strings"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// Category is a product category with a fixed material admission rule.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryFood
	CategoryBeverages
	CategoryPharmaceuticals
	CategoryAgriculture
	CategoryElectronics
	CategoryAutomotiveParts
	CategoryConstructionTools
	CategoryIndustrialChemicals
	CategoryCosmetics
	CategoryApparelFashion
	CategoryLuxuryGoods
	CategoryECommerceGeneral
	CategoryHomeAppliances
	CategoryToysBabyProducts
	CategoryOfficeSupplies
)

type categoryRule struct {
	name   string
	rule   string
	admits func(m store.Material) bool
}

var categoryRules = [...]categoryRule{
	CategoryUnknown: {name: "", rule: "all materials", admits: func(store.Material) bool { return true }},
	CategoryFood: {"food", "biodegradability >= 8",
		func(m store.Material) bool { return m.Biodegradability >= 8 }},
	CategoryBeverages: {"beverages", "strength >= 3 and recyclability >= 70",
		func(m store.Material) bool { return m.Strength >= 3 && m.Recyclability >= 70 }},
	CategoryPharmaceuticals: {"pharmaceuticals", "biodegradability >= 6",
		func(m store.Material) bool { return m.Biodegradability >= 6 }},
	CategoryAgriculture: {"agriculture", "biodegradability >= 9",
		func(m store.Material) bool { return m.Biodegradability >= 9 }},
	CategoryElectronics: {"electronics", "strength >= 4",
		func(m store.Material) bool { return m.Strength >= 4 }},
	CategoryAutomotiveParts: {"automotive_parts", "strength >= 5",
		func(m store.Material) bool { return m.Strength >= 5 }},
	CategoryConstructionTools: {"construction_tools", "weight_capacity >= 50",
		func(m store.Material) bool { return m.WeightCapacity >= 50 }},
	CategoryIndustrialChemicals: {"industrial_chemicals", "strength >= 5 and recyclability >= 50",
		func(m store.Material) bool { return m.Strength >= 5 && m.Recyclability >= 50 }},
	CategoryCosmetics: {"cosmetics", "recyclability >= 80",
		func(m store.Material) bool { return m.Recyclability >= 80 }},
	CategoryApparelFashion: {"apparel_fashion", "biodegradability >= 7",
		func(m store.Material) bool { return m.Biodegradability >= 7 }},
	CategoryLuxuryGoods: {"luxury_goods", "cost_per_unit >= 100",
		func(m store.Material) bool { return m.CostPerUnit >= 100 }},
	CategoryECommerceGeneral: {"e_commerce_general", "recyclability >= 60",
		func(m store.Material) bool { return m.Recyclability >= 60 }},
	CategoryHomeAppliances: {"home_appliances", "strength >= 4",
		func(m store.Material) bool { return m.Strength >= 4 }},
	CategoryToysBabyProducts: {"toys_baby_products", "biodegradability >= 8 and strength >= 2",
		func(m store.Material) bool { return m.Biodegradability >= 8 && m.Strength >= 2 }},
	CategoryOfficeSupplies: {"office_supplies", "recyclability >= 90",
		func(m store.Material) bool { return m.Recyclability >= 90 }},
}

// Categories lists every recognized category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryRules)-1)
	for c := CategoryFood; int(c) < len(categoryRules); c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory matches case-insensitively; unrecognized names map to
// CategoryUnknown.
func ParseCategory(s string) Category {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return CategoryUnknown
	}
	for _, c := range Categories() {
		if categoryRules[c].name == name {
			return c
		}
	}
	return CategoryUnknown
}

func (c Category) String() string {
	if c <= CategoryUnknown || int(c) >= len(categoryRules) {
		return "unknown"
	}
	return categoryRules[c].name
}

// Rule describes the admission rule in human-readable form.
func (c Category) Rule() string {
	if c < CategoryUnknown || int(c) >= len(categoryRules) {
		return categoryRules[CategoryUnknown].rule
	}
	return categoryRules[c].rule
}

// Admits reports whether m satisfies the category's rule.
func (c Category) Admits(m store.Material) bool {
	if c < CategoryUnknown || int(c) >= len(categoryRules) {
		return true
	}
	return categoryRules[c].admits(m)
}

// FilterByCategory keeps the materials admitted by c, in catalog order.
// CategoryUnknown admits everything. A recognized category that admits
// nothing is a NoMatchError rather than a silent fallback to the catalog.
func FilterByCategory(materials []store.Material, c Category) ([]store.Material, error) {
	if c == CategoryUnknown {
		return materials, nil
	}
	out := make([]store.Material, 0, len(materials))
	for _, m := range materials {
		if c.Admits(m) {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, &NoMatchError{Stage: StageCategory, Value: c.String()}
	}
	return out, nil
}
