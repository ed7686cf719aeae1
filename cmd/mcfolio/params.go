package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print the interpolated mean and volatility for each equity step",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runParams(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

type paramsRow struct {
	EquityPercentage float64 `json:"equityPercentage"`
	Mix              string  `json:"mix"`
	domain.PortfolioParameters
}

func paramsTable() []paramsRow {
	r := domain.DefaultInputRanges().EquityPercentage
	engine := calculation.NewEngine()

	var rows []paramsRow
	for eq := r.Min; eq <= r.Max; eq += r.Step {
		rows = append(rows, paramsRow{
			EquityPercentage:    eq,
			Mix:                 compare.MixName(eq),
			PortfolioParameters: engine.Params(eq),
		})
	}
	return rows
}

func runParams(cmd *cobra.Command) error {
	rows := paramsTable()
	out := cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))

	case "table", "":
		fmt.Fprintf(out, "%-8s %-8s %10s %12s\n", "Equity", "Mix", "Mean", "Volatility")
		fmt.Fprintln(out, strings.Repeat("-", 41))
		for _, row := range rows {
			fmt.Fprintf(out, "%-8s %-8s %10s %12s\n",
				fmt.Sprintf("%.0f%%", row.EquityPercentage),
				row.Mix,
				output.FormatPercent(row.Mean*100),
				output.FormatPercent(row.StdDev*100))
		}

	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
	}
	return nil
}

func init() {
	paramsCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
}
