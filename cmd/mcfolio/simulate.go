package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/output"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run a Monte Carlo forecast",
	Long: `Run a Monte Carlo forecast for one input tuple.

Values come from the optional forecast file; flags override them.

Examples:
  mcfolio simulate --initial 1000000 --monthly 10000 --equity 60 --years 20
  mcfolio simulate forecast.yaml --format json --seed 42
  mcfolio simulate forecast.yaml --format pdf --save
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd, args, "equity")
	if err != nil {
		return err
	}

	engine := newEngine(cmd, cfg)
	result, err := engine.Simulate(context.Background(), cfg.Input.ToInput())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	f := output.NewFormatter(format, cfg.Simulation.Currency)
	if f == nil {
		return fmt.Errorf("unknown output format: %s (valid: %v)", format, output.AvailableFormatterNames())
	}

	save, _ := cmd.Flags().GetBool("save")
	outputFile, _ := cmd.Flags().GetString("output")

	switch {
	case outputFile != "":
		data, err := f.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
		}
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outputFile)

	case save || f.Name() == "pdf":
		filename, err := output.WriteFormatted(f, result, output.FileExtension(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", filename)

	default:
		data, err := f.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}
	return nil
}

func init() {
	registerSimulateFlags(simulateCmd)
}

func registerSimulateFlags(cmd *cobra.Command) {
	addInputFlags(cmd, "equity")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, csv, detailed-csv, json, yaml, markdown, markdown-terminal, html, pdf)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file in the working directory")
}
