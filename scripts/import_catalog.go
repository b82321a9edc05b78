// import_catalog.go converts a materials CSV export into the YAML catalog
// read by the file-backed store.
//
// Usage:
//
//	go run scripts/import_catalog.go -csv materials.csv -out catalog.yaml
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

var requiredColumns = []string{
	"material_type", "strength", "weight_capacity", "cost_per_unit",
	"biodegradability_score", "recyclability", "co2_emission_score",
}

func main() {
	csvPath := flag.String("csv", "materials.csv", "path to materials CSV")
	outPath := flag.String("out", "catalog.yaml", "YAML catalog to write")
	dryRun := flag.Bool("dry-run", false, "print materials without writing")
	flag.Parse()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		log.Fatalf("read header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := col[c]; !ok {
			log.Fatalf("missing column %q", c)
		}
	}

	var materials []store.Material
	skipped := 0
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("line %d: %v", line, err)
		}
		m, err := parseMaterial(rec, col)
		if err != nil {
			// Incomplete rows are excluded from scoring, same as the SQL catalog.
			log.Printf("skip line %d: %v", line, err)
			skipped++
			continue
		}
		m.ID = int64(len(materials) + 1)
		materials = append(materials, m)
	}

	log.Printf("parsed %d materials from %s (%d skipped)", len(materials), *csvPath, skipped)

	if *dryRun {
		for _, m := range materials {
			fmt.Printf("[%d] %s (strength=%.1f, cost=%.2f, co2=%.2f)\n", m.ID, m.Name, m.Strength, m.CostPerUnit, m.CO2Reference)
		}
		return
	}

	out, err := yaml.Marshal(struct {
		Materials []store.Material `yaml:"materials"`
	}{materials})
	if err != nil {
		log.Fatalf("encode yaml: %v", err)
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)
}

func parseMaterial(rec []string, col map[string]int) (store.Material, error) {
	get := func(name string) string {
		i := col[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(name string) (float64, error) {
		v := get(name)
		if v == "" {
			return 0, fmt.Errorf("%s is empty", name)
		}
		return strconv.ParseFloat(v, 64)
	}

	m := store.Material{Name: get("material_type")}
	if m.Name == "" {
		return m, fmt.Errorf("material_type is empty")
	}
	var err error
	if m.Strength, err = num("strength"); err != nil {
		return m, err
	}
	if m.WeightCapacity, err = num("weight_capacity"); err != nil {
		return m, err
	}
	if m.CostPerUnit, err = num("cost_per_unit"); err != nil {
		return m, err
	}
	if m.Biodegradability, err = num("biodegradability_score"); err != nil {
		return m, err
	}
	if m.Recyclability, err = num("recyclability"); err != nil {
		return m, err
	}
	if m.CO2Reference, err = num("co2_emission_score"); err != nil {
		return m, err
	}
	return m, nil
}
