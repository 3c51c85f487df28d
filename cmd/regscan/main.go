// Package main provides the CLI entry point for regscan.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/flowcomply/regscan/pkg/regscan/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	outputPath string
	pretty     bool
	verbose    bool
	jobs       int

	cfg *config.Config
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("regscan failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regscan",
		Short: "Extract structural hints from regulatory Excel and PDF documents",
		Long: `regscan reads drinking-water regulatory templates and strategy documents
and outputs header mappings, classified rule identifiers, and keyword matches as JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./regscan.yaml or ~/.regscan/regscan.yaml)")
	pf.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	pf.IntVar(&jobs, "jobs", 0, "Documents analyzed in parallel (overrides config)")

	rootCmd.AddCommand(
		newTemplateCmd(),
		newRulesCmd(),
		newStrategyCmd(),
		newDWSPCmd(),
		newInventoryCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") && jobs > 0 {
		c.Jobs = jobs
	}
	cfg = c
	return nil
}
