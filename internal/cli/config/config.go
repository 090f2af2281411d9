// Package config loads shipcheck configuration from file, environment, and
// flags, and translates it into the validation engine's option set.
package config

import (
	"strings"
	"time"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Default configuration values.
const (
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultHeaderRows = 1
	DefaultCutoff     = "2020-01-01"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose    bool         `koanf:"verbose"`
	Output     string       `koanf:"output"`
	LogFile    string       `koanf:"log_file"`
	HeaderRows int          `koanf:"header_rows"`
	Policy     PolicyConfig `koanf:"policy"`
}

// PolicyConfig holds the tunable domain rules: thresholds, exemption lists,
// and severity overrides for the policy gate.
type PolicyConfig struct {
	WeightCeiling        float64   `koanf:"weight_ceiling"`
	OverweightExemptions []string  `koanf:"overweight_exemptions"`
	ValidStatuses        []string  `koanf:"valid_statuses"`
	OldestCreateDate     time.Time `koanf:"oldest_create_date"`
	Critical             []string  `koanf:"critical"`
	Advisory             []string  `koanf:"advisory"`
}

// Options converts the loaded configuration into engine options.
func (c *Config) Options() validate.Options {
	opts := validate.DefaultOptions()

	if c.HeaderRows > 0 {
		opts.HeaderRows = c.HeaderRows
	}
	if c.Policy.WeightCeiling > 0 {
		opts.WeightCeiling = c.Policy.WeightCeiling
	}
	if len(c.Policy.OverweightExemptions) > 0 {
		// Exemption matching is on the trimmed, lower-cased identity.
		set := make(map[string]bool, len(c.Policy.OverweightExemptions))
		for _, id := range c.Policy.OverweightExemptions {
			set[strings.ToLower(strings.TrimSpace(id))] = true
		}
		opts.OverweightExemptions = set
	}
	if len(c.Policy.ValidStatuses) > 0 {
		opts.ValidStatuses = toSet(c.Policy.ValidStatuses)
	}
	if !c.Policy.OldestCreateDate.IsZero() {
		opts.OldestCreateDate = c.Policy.OldestCreateDate
	}

	if len(c.Policy.Critical) > 0 || len(c.Policy.Advisory) > 0 {
		opts.SeverityOverrides = make(map[string]validate.Severity)
		for _, kind := range c.Policy.Critical {
			opts.SeverityOverrides[kind] = validate.SeverityCritical
		}
		for _, kind := range c.Policy.Advisory {
			opts.SeverityOverrides[kind] = validate.SeverityAdvisory
		}
	}

	return opts
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
