package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hospital-recommender/internal/di"
	"hospital-recommender/internal/infra"
	"hospital-recommender/internal/infra/config"
	"hospital-recommender/internal/usecase"
)

var (
	flagQuery        string
	flagRegion       string
	flagSubregion    string
	flagFacilityType string
	flagDepartment   string
	flagMaxAnalysis  int
	flagVerbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "recommend-cli",
		Short:        "Run one recommendation request against the configured backends",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&flagQuery, "query", "", "free-text description of what the user needs (required)")
	rootCmd.Flags().StringVar(&flagRegion, "region", "", "region filter (required)")
	rootCmd.Flags().StringVar(&flagSubregion, "subregion", "", "subregion filter (required)")
	rootCmd.Flags().StringVar(&flagFacilityType, "facility-type", "", "facility type filter")
	rootCmd.Flags().StringVar(&flagDepartment, "department", "", "department filter")
	rootCmd.Flags().IntVar(&flagMaxAnalysis, "max-analysis", 0, "number of top candidates to explain (default from config)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log pipeline stages to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	var log *slog.Logger
	if flagVerbose {
		log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	} else {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	slog.SetDefault(log)

	cfg := config.Load()
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	pool, err := infra.NewPostgresDB(cmd.Context(), dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer pool.Close()

	components, err := di.NewApplicationComponents(cfg, pool, log)
	if err != nil {
		return err
	}

	output, err := components.Recommend.Execute(cmd.Context(), usecase.RecommendInput{
		Query:        flagQuery,
		Region:       flagRegion,
		Subregion:    flagSubregion,
		FacilityType: flagFacilityType,
		Department:   flagDepartment,
		MaxAnalysis:  flagMaxAnalysis,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
