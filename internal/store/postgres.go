package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string, maxConns int32) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

const materialColumns = `material_id, material_type, strength, weight_capacity,
	cost_per_unit, biodegradability_score, recyclability, co2_emission_score`

// Rows with a NULL in any scoring attribute are filtered here so callers can
// treat every returned Material as complete.
const listMaterialsQuery = `SELECT ` + materialColumns + `
	FROM materials
	WHERE material_type IS NOT NULL
		AND strength IS NOT NULL
		AND weight_capacity IS NOT NULL
		AND cost_per_unit IS NOT NULL
		AND biodegradability_score IS NOT NULL
		AND recyclability IS NOT NULL
		AND co2_emission_score IS NOT NULL
	ORDER BY material_id ASC`

func (s *PostgresStore) ListMaterials(ctx context.Context) ([]Material, error) {
	rows, err := s.pool.Query(ctx, listMaterialsQuery)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	materials, err := pgx.CollectRows(rows, scanMaterial)
	if err != nil {
		return nil, fmt.Errorf("scan materials: %w", err)
	}
	return materials, nil
}

func scanMaterial(row pgx.CollectableRow) (Material, error) {
	var m Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Strength, &m.WeightCapacity,
		&m.CostPerUnit, &m.Biodegradability, &m.Recyclability, &m.CO2Reference,
	)
	return m, err
}
