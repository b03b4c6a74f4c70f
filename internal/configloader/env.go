package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/unigrid/pkg/config"
)

// envVarPrefix is the prefix for all unigrid environment variables.
const envVarPrefix = "UNIGRID_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"BASE":                  {field: "base", typ: envTypeString, description: "Number base: hex or decimal"},
	"FORMAT":                {field: "format", typ: envTypeString, description: "Output format: grid, table, json, or summary"},
	"COLOR":                 {field: "color", typ: envTypeString, description: "Color mode: auto, always, or never"},
	"NAMES":                 {field: "names", typ: envTypeBool, description: "Show Unicode scalar names: true or false"},
	"SHOW_SCALARS":          {field: "show.scalars", typ: envTypeBool, description: "Show the scalar row: true or false"},
	"SHOW_UTF16":            {field: "show.utf16", typ: envTypeBool, description: "Show the UTF-16 row: true or false"},
	"SHOW_UTF8":             {field: "show.utf8", typ: envTypeBool, description: "Show the UTF-8 row: true or false"},
	"TRIM_TRAILING_NEWLINE": {field: "trim_trailing_newline", typ: envTypeBool, description: "Trim one trailing newline from files and stdin"},
	"SUMMARY":               {field: "summary", typ: envTypeBool, description: "Print the summary: true or false"},
	"JOBS":                  {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with UNIGRID_ (e.g., UNIGRID_BASE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "base":
		cfg.Base = value
	case "format":
		cfg.Format = value
	case "color":
		cfg.Color = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "names":
		cfg.Names = config.Bool(value)
	case "show.scalars":
		cfg.Show.Scalars = config.Bool(value)
	case "show.utf16":
		cfg.Show.UTF16 = config.Bool(value)
	case "show.utf8":
		cfg.Show.UTF8 = config.Bool(value)
	case "trim_trailing_newline":
		cfg.TrimTrailingNewline = config.Bool(value)
	case "summary":
		cfg.Summary = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported environment variable, sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
