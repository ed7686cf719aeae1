package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/config"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/recompute"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [input-file]",
	Short: "Adjust inputs line by line and watch the forecast settle",
	Long: `Read input changes from stdin, one per line, and recompute the forecast
once the changes stop for the debounce delay.

Commands:
  initial <amount>   monthly <amount>   equity <percent>   years <n>
  show               quit

Example:
  printf 'equity 80\nyears 25\n' | mcfolio explore
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExplore(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

type inputSetter func(in *domain.SimulationInput, v float64) error

var exploreFields = map[string]inputSetter{
	"initial": func(in *domain.SimulationInput, v float64) error { in.InitialInvestment = v; return nil },
	"monthly": func(in *domain.SimulationInput, v float64) error { in.MonthlyContribution = v; return nil },
	"equity":  func(in *domain.SimulationInput, v float64) error { in.EquityPercentage = v; return nil },
	"years": func(in *domain.SimulationInput, v float64) error {
		if v != math.Trunc(v) {
			return fmt.Errorf("years must be a whole number, got %g", v)
		}
		in.HorizonYears = int(v)
		return nil
	},
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd, args, "equity")
	if err != nil {
		return err
	}

	parser := config.NewInputParser()
	parser.Lenient, _ = cmd.Flags().GetBool("lenient")

	opts := []recompute.Option{}
	if delay, _ := cmd.Flags().GetDuration("delay"); delay > 0 {
		opts = append(opts, recompute.WithDelay(delay))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := newEngine(cmd, cfg)
	compute := func(in domain.SimulationInput) (*domain.SimulationResult, error) {
		return engine.Simulate(ctx, in)
	}

	out := cmd.OutOrStdout()
	currency := cfg.Simulation.Currency
	ctrl := recompute.NewController(compute, cfg.Input.ToInput(), opts...)
	loop := recompute.NewLoop(ctrl, nil, func(c recompute.Commit) {
		printCommit(out, c, currency)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	if _, err := loop.Prime(ctx); err != nil {
		return err
	}

	current := cfg.Input.ToInput()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "show" {
			in := current
			if err := loop.Do(ctx, func(*recompute.Controller) { printInput(out, in) }); err != nil {
				return err
			}
			continue
		}

		next, err := applyExploreLine(current, line)
		if err == nil {
			err = parser.ValidateInput(next)
		}
		if err != nil {
			// Printed on the loop goroutine so it never interleaves with a commit.
			msg := err.Error()
			if err := loop.Do(ctx, func(*recompute.Controller) { fmt.Fprintf(out, "error: %s\n", msg) }); err != nil {
				return err
			}
			continue
		}

		current = next
		if err := loop.Change(ctx, current); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Settle whatever is still pending instead of waiting out the delay.
	_, err = loop.Prime(ctx)
	return err
}

func applyExploreLine(in domain.SimulationInput, line string) (domain.SimulationInput, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return in, fmt.Errorf("expected \"<field> <value>\", got %q", line)
	}
	set, ok := exploreFields[strings.ToLower(fields[0])]
	if !ok {
		return in, fmt.Errorf("unknown field %q (initial, monthly, equity, years)", fields[0])
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(fields[1], "_", ""), 64)
	if err != nil {
		return in, fmt.Errorf("invalid value %q for %s", fields[1], fields[0])
	}
	if err := set(&in, v); err != nil {
		return in, err
	}
	return in, nil
}

func printCommit(w io.Writer, c recompute.Commit, currency string) {
	if c.Outcome == recompute.Failed {
		fmt.Fprintf(w, "#%d failed: %v\n", c.Generation, c.Err)
		return
	}
	if c.Result == nil {
		return
	}
	years := c.Input.HorizonYears
	bands := c.Result.Bands
	fmt.Fprintf(w, "#%d %s %s over %dy: median %s, range %s to %s (%d paths)\n",
		c.Generation,
		c.Outcome,
		compare.MixName(c.Input.EquityPercentage),
		years,
		output.FormatAmount(bands.Middle[years], currency),
		output.FormatAmount(bands.Worst[years], currency),
		output.FormatAmount(bands.Best[years], currency),
		c.Result.NumSimulations,
	)
}

func printInput(w io.Writer, in domain.SimulationInput) {
	fmt.Fprintf(w, "initial %.0f, monthly %.0f, equity %g, years %d\n",
		in.InitialInvestment, in.MonthlyContribution, in.EquityPercentage, in.HorizonYears)
}

func init() {
	registerExploreFlags(exploreCmd)
}

func registerExploreFlags(cmd *cobra.Command) {
	addInputFlags(cmd, "equity")
	cmd.Flags().Duration("delay", recompute.DebounceDelay, "Quiet period before a change is recomputed")
}
