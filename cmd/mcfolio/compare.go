package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare equity/bond mixes against a base allocation",
	Long: `Compare a base allocation against alternative equity percentages.
Every mix shares one seed, so differences come from the allocation alone.

Examples:
  mcfolio compare --base 60 --equity 0,25,50,75,100
  mcfolio compare forecast.yaml --equity 40,80 --format csv
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCompare(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd, args, "base")
	if err != nil {
		return err
	}

	equities, _ := cmd.Flags().GetFloat64Slice("equity")
	if len(equities) == 0 {
		return fmt.Errorf("--equity must list at least one alternative mix")
	}

	in := cfg.Input.ToInput()
	compareEngine := compare.NewCompareEngine(newEngine(cmd, cfg))
	comparisonSet, err := compareEngine.Compare(context.Background(), in, compare.CompareOptions{
		BaseEquity: in.EquityPercentage,
		Equities:   equities,
		Seed:       cfg.Simulation.Seed,
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	if len(args) > 0 {
		comparisonSet.ConfigPath = args[0]
	}

	outputFormat, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(outputFormat) {
	case "csv":
		out, err := (&compare.CSVFormatter{}).Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

	case "json":
		series, _ := cmd.Flags().GetBool("series")
		out, err := (&compare.JSONFormatter{Pretty: true, IncludeSeries: series}).Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

	case "table", "console", "":
		fmt.Fprint(cmd.OutOrStdout(), (&compare.TableFormatter{Currency: cfg.Simulation.Currency}).Format(comparisonSet))

	case "compact":
		fmt.Fprintln(cmd.OutOrStdout(), (&compare.TableFormatter{Currency: cfg.Simulation.Currency}).FormatCompact(comparisonSet))

	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
	}
	return nil
}

func init() {
	registerCompareFlags(compareCmd)
}

func registerCompareFlags(cmd *cobra.Command) {
	addInputFlags(cmd, "base")
	cmd.Flags().Float64Slice("equity", []float64{0, 25, 50, 75, 100}, "Comma-separated equity percentages to compare")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("series", false, "Include each mix's chart series in JSON output")
}
