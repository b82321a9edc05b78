package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/EcoPack/internal/config"
	"github.com/MikeSquared-Agency/EcoPack/internal/recommend"
)

var (
	flagCategory  string
	flagFragility string
	flagShipping  string
	flagPriority  string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run one recommendation against the configured catalog and print JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Logging)

		predictor, err := loadPredictor(cfg.Artifacts, logger)
		if err != nil {
			return err
		}
		catalog, err := openCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer catalog.Close()

		svc := recommend.NewService(catalog, newEngine(cfg.Scoring, predictor, logger), nil, logger)
		res, err := svc.Recommend(cmd.Context(), recommend.Request{
			ProductCategory:        &flagCategory,
			Fragility:              &flagFragility,
			ShippingType:           &flagShipping,
			SustainabilityPriority: &flagPriority,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&flagCategory, "category", "e_commerce_general", "product category")
	f.StringVar(&flagFragility, "fragility", "medium", "fragility: low, medium or high")
	f.StringVar(&flagShipping, "shipping", "Road", "shipping type")
	f.StringVar(&flagPriority, "priority", "medium", "sustainability priority: low, medium or high")
}
