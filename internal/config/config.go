// Package config loads covex configuration from file and environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/mgaspar/covex/pkg/covex"
)

// Config represents the complete covex configuration.
type Config struct {
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Server     ServerConfig     `mapstructure:"server"`
}

// ExtractionConfig mirrors the extraction option surface.
type ExtractionConfig struct {
	// HeaderStrategy selects header resolution: "fixed" or "label-search"
	HeaderStrategy string `mapstructure:"header_strategy"`
	// FixedCategoryRow is the category row index under the fixed strategy
	FixedCategoryRow int `mapstructure:"fixed_category_row"`
	// FixedRoleRow is the role row index under the fixed strategy
	FixedRoleRow int `mapstructure:"fixed_role_row"`
	// FixedAccountColumn is the account column index under the fixed strategy
	FixedAccountColumn int `mapstructure:"fixed_account_column"`
	// FixedClientTypeColumn is the client-type column index under the fixed strategy
	FixedClientTypeColumn int `mapstructure:"fixed_client_type_column"`
	// FixedLeaderColumn is the leader column index under the fixed strategy
	FixedLeaderColumn int `mapstructure:"fixed_leader_column"`
	// FixedManagerColumn is the manager column index under the fixed strategy
	FixedManagerColumn int `mapstructure:"fixed_manager_column"`
	// FixedFirstPersonnelColumn is where the personnel grid starts under the fixed strategy
	FixedFirstPersonnelColumn int `mapstructure:"fixed_first_personnel_column"`
	// Labels are the header texts matched under the label-search strategy
	Labels LabelConfig `mapstructure:"management_column_labels"`
	// Placeholders are the values excluded from personnel counts
	Placeholders []string `mapstructure:"placeholder_patterns"`
	// MaxDataRows caps data rows scanned per sheet (0 = unbounded)
	MaxDataRows int `mapstructure:"max_data_rows"`
	// Parallel extracts sheets concurrently
	Parallel bool `mapstructure:"parallel"`
}

// LabelConfig names the management column headers.
type LabelConfig struct {
	Account    string `mapstructure:"account"`
	ClientType string `mapstructure:"client_type"`
	Leader     string `mapstructure:"leader"`
	Manager    string `mapstructure:"manager"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080")
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := covex.DefaultOptions()
	return &Config{
		Extraction: ExtractionConfig{
			HeaderStrategy:            string(opts.Strategy),
			FixedCategoryRow:          opts.FixedCategoryRow,
			FixedRoleRow:              opts.FixedRoleRow,
			FixedAccountColumn:        opts.FixedAccountColumn,
			FixedClientTypeColumn:     opts.FixedClientTypeColumn,
			FixedLeaderColumn:         opts.FixedLeaderColumn,
			FixedManagerColumn:        opts.FixedManagerColumn,
			FixedFirstPersonnelColumn: opts.FixedFirstPersonnelColumn,
			Labels: LabelConfig{
				Account:    opts.Labels.Account,
				ClientType: opts.Labels.ClientType,
				Leader:     opts.Labels.Leader,
				Manager:    opts.Labels.Manager,
			},
			Placeholders: opts.Placeholders,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("extraction.header_strategy", defaults.Extraction.HeaderStrategy)
	viper.SetDefault("extraction.fixed_category_row", defaults.Extraction.FixedCategoryRow)
	viper.SetDefault("extraction.fixed_role_row", defaults.Extraction.FixedRoleRow)
	viper.SetDefault("extraction.fixed_account_column", defaults.Extraction.FixedAccountColumn)
	viper.SetDefault("extraction.fixed_client_type_column", defaults.Extraction.FixedClientTypeColumn)
	viper.SetDefault("extraction.fixed_leader_column", defaults.Extraction.FixedLeaderColumn)
	viper.SetDefault("extraction.fixed_manager_column", defaults.Extraction.FixedManagerColumn)
	viper.SetDefault("extraction.fixed_first_personnel_column", defaults.Extraction.FixedFirstPersonnelColumn)
	viper.SetDefault("extraction.management_column_labels.account", defaults.Extraction.Labels.Account)
	viper.SetDefault("extraction.management_column_labels.client_type", defaults.Extraction.Labels.ClientType)
	viper.SetDefault("extraction.management_column_labels.leader", defaults.Extraction.Labels.Leader)
	viper.SetDefault("extraction.management_column_labels.manager", defaults.Extraction.Labels.Manager)
	viper.SetDefault("extraction.placeholder_patterns", defaults.Extraction.Placeholders)
	viper.SetDefault("extraction.max_data_rows", defaults.Extraction.MaxDataRows)
	viper.SetDefault("extraction.parallel", defaults.Extraction.Parallel)

	viper.SetDefault("server.addr", defaults.Server.Addr)
}

// Load reads configuration from the given file (optional) plus COVEX_*
// environment variables, on top of the defaults.
func Load(file string) (*Config, error) {
	SetDefaults()

	viper.SetEnvPrefix("COVEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the extraction section into engine options.
func (c *Config) Options() covex.Options {
	return covex.Options{
		Strategy:                  covex.HeaderStrategy(c.Extraction.HeaderStrategy),
		FixedCategoryRow:          c.Extraction.FixedCategoryRow,
		FixedRoleRow:              c.Extraction.FixedRoleRow,
		FixedAccountColumn:        c.Extraction.FixedAccountColumn,
		FixedClientTypeColumn:     c.Extraction.FixedClientTypeColumn,
		FixedLeaderColumn:         c.Extraction.FixedLeaderColumn,
		FixedManagerColumn:        c.Extraction.FixedManagerColumn,
		FixedFirstPersonnelColumn: c.Extraction.FixedFirstPersonnelColumn,
		Labels: covex.ManagementLabels{
			Account:    c.Extraction.Labels.Account,
			ClientType: c.Extraction.Labels.ClientType,
			Leader:     c.Extraction.Labels.Leader,
			Manager:    c.Extraction.Labels.Manager,
		},
		Placeholders: c.Extraction.Placeholders,
		MaxDataRows:  c.Extraction.MaxDataRows,
		Parallel:     c.Extraction.Parallel,
	}
}
