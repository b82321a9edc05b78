package store

import (
	"context"
	"errors"
)

// Material is one row of the packaging materials catalog.
type Material struct {
	ID               int64   `json:"material_id" yaml:"id"`
	Name             string  `json:"material_type" yaml:"material_type"`
	Strength         float64 `json:"strength" yaml:"strength"`
	WeightCapacity   float64 `json:"weight_capacity" yaml:"weight_capacity"`
	CostPerUnit      float64 `json:"cost_per_unit" yaml:"cost_per_unit"`
	Biodegradability float64 `json:"biodegradability_score" yaml:"biodegradability_score"`
	Recyclability    float64 `json:"recyclability" yaml:"recyclability"`
	CO2Reference     float64 `json:"co2_emission_score" yaml:"co2_emission_score"`
}

// ErrEmptyCatalog is returned by catalog stores that hold no usable rows.
var ErrEmptyCatalog = errors.New("materials catalog is empty")

// CatalogStore is a read-only view of the materials catalog.
// ListMaterials returns every complete row in a stable order.
type CatalogStore interface {
	ListMaterials(ctx context.Context) ([]Material, error)
	Ping(ctx context.Context) error
	Close() error
}
