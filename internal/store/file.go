package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore serves the catalog from a YAML document of the form
//
//	materials:
//	  - material_type: Kraft Paper
//	    strength: 2
//	    ...
//
// The file is re-read on every ListMaterials call. Rows missing any
// attribute are skipped, matching the NOT NULL filter of the SQL catalog.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type catalogFile struct {
	Materials []materialRow `yaml:"materials"`
}

// materialRow distinguishes absent keys from zero values.
type materialRow struct {
	ID               int64    `yaml:"id"`
	Name             *string  `yaml:"material_type"`
	Strength         *float64 `yaml:"strength"`
	WeightCapacity   *float64 `yaml:"weight_capacity"`
	CostPerUnit      *float64 `yaml:"cost_per_unit"`
	Biodegradability *float64 `yaml:"biodegradability_score"`
	Recyclability    *float64 `yaml:"recyclability"`
	CO2Reference     *float64 `yaml:"co2_emission_score"`
}

func (r materialRow) material() (Material, bool) {
	if r.Name == nil || *r.Name == "" || r.Strength == nil || r.WeightCapacity == nil ||
		r.CostPerUnit == nil || r.Biodegradability == nil || r.Recyclability == nil ||
		r.CO2Reference == nil {
		return Material{}, false
	}
	return Material{
		ID:               r.ID,
		Name:             *r.Name,
		Strength:         *r.Strength,
		WeightCapacity:   *r.WeightCapacity,
		CostPerUnit:      *r.CostPerUnit,
		Biodegradability: *r.Biodegradability,
		Recyclability:    *r.Recyclability,
		CO2Reference:     *r.CO2Reference,
	}, true
}

func (s *FileStore) ListMaterials(_ context.Context) ([]Material, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	materials := make([]Material, 0, len(doc.Materials))
	for i, row := range doc.Materials {
		m, ok := row.material()
		if !ok {
			continue
		}
		if m.ID == 0 {
			m.ID = int64(i + 1)
		}
		materials = append(materials, m)
	}
	return materials, nil
}

func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.path)
	return err
}

func (s *FileStore) Close() error { return nil }
