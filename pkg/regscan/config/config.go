// Package config loads regscan settings from YAML, environment, and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowcomply/regscan/pkg/regscan"
	"github.com/flowcomply/regscan/pkg/regscan/parser"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Header configures header row detection.
type Header struct {
	ScanWindow    int      `mapstructure:"scan_window" yaml:"scan_window"`
	MinCells      int      `mapstructure:"min_cells" yaml:"min_cells"`
	Keywords      []string `mapstructure:"keywords" yaml:"keywords"`
	MaxColumns    int      `mapstructure:"max_columns" yaml:"max_columns"`
	SampleRows    int      `mapstructure:"sample_rows" yaml:"sample_rows"`
	SampleColumns int      `mapstructure:"sample_columns" yaml:"sample_columns"`
}

// Rules configures rule extraction.
type Rules struct {
	Sheet           string                `mapstructure:"sheet" yaml:"sheet"`
	Column          int                   `mapstructure:"column" yaml:"column"`
	Categories      []parser.CategoryRule `mapstructure:"categories" yaml:"categories"`
	DefaultCategory string                `mapstructure:"default_category" yaml:"default_category"`
	Applicability   string                `mapstructure:"applicability" yaml:"applicability"`
	EffectiveDate   string                `mapstructure:"effective_date" yaml:"effective_date"`
}

// Inventory configures the document presence check.
type Inventory struct {
	Dir        string                     `mapstructure:"dir" yaml:"dir"`
	Categories []regscan.DocumentCategory `mapstructure:"categories" yaml:"categories"`
}

// Config is the complete regscan configuration.
type Config struct {
	Header    Header               `mapstructure:"header" yaml:"header"`
	Rules     Rules                `mapstructure:"rules" yaml:"rules"`
	Buckets   []parser.BucketRule  `mapstructure:"buckets" yaml:"buckets"`
	BucketCap int                  `mapstructure:"bucket_cap" yaml:"bucket_cap"`
	Elements  []parser.ElementRule `mapstructure:"dwsp_elements" yaml:"dwsp_elements"`
	Inventory Inventory            `mapstructure:"inventory" yaml:"inventory"`
	Jobs      int                  `mapstructure:"jobs" yaml:"jobs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := regscan.DefaultOptions()
	return &Config{
		Header: Header{
			ScanWindow:    opts.Header.ScanWindow,
			MinCells:      opts.Header.MinCells,
			Keywords:      opts.Header.Keywords,
			MaxColumns:    opts.MaxHeaderColumns,
			SampleRows:    opts.SampleRows,
			SampleColumns: opts.SampleColumns,
		},
		Rules: Rules{
			Sheet:           opts.RuleSheet,
			Column:          opts.RuleColumn,
			Categories:      opts.Rules.Categories,
			DefaultCategory: opts.Rules.DefaultCategory,
			Applicability:   opts.Rules.Applicability,
			EffectiveDate:   opts.Rules.EffectiveDate,
		},
		Buckets:   opts.Buckets,
		BucketCap: opts.BucketCap,
		Elements:  opts.Elements,
		Inventory: Inventory{
			Dir:        "docs/regulations",
			Categories: regscan.DefaultInventory(),
		},
		Jobs: 1,
	}
}

// Options converts the configuration into analyzer options.
func (c *Config) Options() regscan.Options {
	opts := regscan.DefaultOptions()
	opts.Header = parser.HeaderParams{
		ScanWindow: c.Header.ScanWindow,
		MinCells:   c.Header.MinCells,
		Keywords:   c.Header.Keywords,
	}
	opts.MaxHeaderColumns = c.Header.MaxColumns
	opts.SampleRows = c.Header.SampleRows
	opts.SampleColumns = c.Header.SampleColumns
	opts.RuleSheet = c.Rules.Sheet
	opts.RuleColumn = c.Rules.Column
	opts.Rules = parser.RulePolicy{
		Categories:      c.Rules.Categories,
		DefaultCategory: c.Rules.DefaultCategory,
		Applicability:   c.Rules.Applicability,
		EffectiveDate:   c.Rules.EffectiveDate,
	}
	opts.Buckets = c.Buckets
	opts.BucketCap = c.BucketCap
	opts.Elements = c.Elements
	return opts
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Tables (categories, buckets,
// elements, inventory) are replaced as a whole when the file sets them.
func Load(cfgFile string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix("REGSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("header.scan_window", def.Header.ScanWindow)
	v.SetDefault("header.min_cells", def.Header.MinCells)
	v.SetDefault("header.keywords", def.Header.Keywords)
	v.SetDefault("header.max_columns", def.Header.MaxColumns)
	v.SetDefault("header.sample_rows", def.Header.SampleRows)
	v.SetDefault("header.sample_columns", def.Header.SampleColumns)
	v.SetDefault("rules.sheet", def.Rules.Sheet)
	v.SetDefault("rules.column", def.Rules.Column)
	v.SetDefault("rules.default_category", def.Rules.DefaultCategory)
	v.SetDefault("rules.applicability", def.Rules.Applicability)
	v.SetDefault("rules.effective_date", def.Rules.EffectiveDate)
	v.SetDefault("bucket_cap", def.BucketCap)
	v.SetDefault("inventory.dir", def.Inventory.Dir)
	v.SetDefault("jobs", def.Jobs)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".regscan"))
		}
		v.SetConfigName("regscan")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if !v.IsSet("rules.categories") {
		c.Rules.Categories = def.Rules.Categories
	}
	if !v.IsSet("buckets") {
		c.Buckets = def.Buckets
	}
	if !v.IsSet("dwsp_elements") {
		c.Elements = def.Elements
	}
	if !v.IsSet("inventory.categories") {
		c.Inventory.Categories = def.Inventory.Categories
	}
	return &c, nil
}

// Save writes the given configuration to path as YAML, creating the
// directory if necessary.
func Save(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
