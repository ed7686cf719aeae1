package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/config"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mcfolio %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "mcfolio",
	Short: "Monte Carlo portfolio forecast CLI",
	Long: `Projects a portfolio of equities and bonds over a horizon of years by
simulating many random return paths, and reports the 10th, 50th and 90th
percentile outcome for every year.`,
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a forecast file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func runValidate(cmd *cobra.Command, inputFile string) error {
	parser := config.NewInputParser()
	parser.Lenient, _ = cmd.Flags().GetBool("lenient")

	if _, err := parser.LoadFromFile(inputFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Forecast file %s is valid\n", inputFile)
	return nil
}

func init() {
	validateCmd.Flags().Bool("lenient", false, "Skip slider range and step checks")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
