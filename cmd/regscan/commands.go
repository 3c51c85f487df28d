package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/flowcomply/regscan/pkg/regscan"
	"github.com/flowcomply/regscan/pkg/regscan/config"
	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/flowcomply/regscan/pkg/regscan/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	var sheetsDir string
	cmd := &cobra.Command{
		Use:   "template [input.xlsx]",
		Short: "Locate header rows and data start rows in every sheet of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := regscan.AnalyzeTemplate(args[0], cfg.Options())
			if err != nil {
				return fmt.Errorf("template analysis failed: %w", err)
			}
			if sheetsDir != "" {
				if err := writeSheetFiles(analysis, sheetsDir); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
				if outputPath == "" {
					return nil
				}
			}
			return emit(analysis)
		},
	}
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func newRulesCmd() *cobra.Command {
	var (
		sheet  string
		column int
	)
	cmd := &cobra.Command{
		Use:   "rules [input.xlsx]",
		Short: "Extract and classify rule identifiers from the rule sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Options()
			if cmd.Flags().Changed("sheet") {
				opts.RuleSheet = sheet
			}
			if cmd.Flags().Changed("column") {
				opts.RuleColumn = column
			}

			set, err := regscan.ExtractRules(args[0], opts)
			if err != nil {
				return fmt.Errorf("rule extraction failed: %w", err)
			}
			logCategoryCounts(set.CategoryCounts)
			return emit(set)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "RuleIDs", "Worksheet holding rule identifiers")
	cmd.Flags().IntVar(&column, "column", 1, "Column (1-based) holding rule identifiers")
	return cmd
}

func newStrategyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategy [input.pdf...]",
		Short: "Bucket lines of compliance strategy documents by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Options()
			results, err := regscan.AnalyzeBatch(cmd.Context(), args, cfg.Jobs, func(path string) (*models.StrategyAnalysis, error) {
				return regscan.AnalyzeStrategy(path, opts)
			})
			if err != nil {
				return fmt.Errorf("strategy analysis failed: %w", err)
			}
			return emit(output.NewEnvelope(results, len(results), time.Now()))
		},
	}
}

func newDWSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dwsp [input.pdf...]",
		Short: "Search safety plan templates for the mandatory DWSP elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Options()
			results, err := regscan.AnalyzeBatch(cmd.Context(), args, cfg.Jobs, func(path string) (*models.DWSPAnalysis, error) {
				return regscan.AnalyzeDWSP(path, opts)
			})
			if err != nil {
				return fmt.Errorf("dwsp analysis failed: %w", err)
			}
			return emit(output.NewEnvelope(results, len(results), time.Now()))
		},
	}
}

func newInventoryCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Check which expected regulatory documents are present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Inventory.Dir
			}
			inv := regscan.VerifyInventory(dir, cfg.Inventory.Categories)
			if len(inv.Missing) > 0 {
				log.Warn().Strs("missing", inv.Missing).Msg("documents missing")
			}
			return emit(inv)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding the downloaded documents (overrides config)")
	return cmd
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the regscan configuration file",
	}
	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists: %s", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote default config")
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "regscan.yaml", "Config file to create")
	configCmd.AddCommand(initCmd)
	return configCmd
}

// emit writes v as JSON to the output file, or stdout when none is set.
func emit(v any) error {
	if outputPath != "" {
		if err := output.WriteFile(outputPath, v, pretty); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info().Str("out", outputPath).Msg("wrote output")
		return nil
	}
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

func writeSheetFiles(analysis *models.TemplateAnalysis, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, sheet := range analysis.Sheets {
		filename := filepath.Join(dir, sheet.SheetName+".json")
		if err := output.WriteFile(filename, sheet, pretty); err != nil {
			return err
		}
	}
	return nil
}

func logCategoryCounts(counts map[string]int) {
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	for _, c := range categories {
		log.Info().Str("category", c).Int("count", counts[c]).Msg("rules by category")
	}
}
