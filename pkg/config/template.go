package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its documentation.
	// If false, generates a minimal commented template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", "yaml", "yml":
	case "json":
		return templateToJSON()
	default:
		return nil, fmt.Errorf("unknown template format %q; valid formats: yaml, json", opts.Format)
	}

	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Rows to display below each character
# show:
#   scalars: true
#   utf16: true
#   utf8: true

# Number base for code points and code units: hex or decimal
base: hex

# Output format: grid, table, json, or summary
# format: grid
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template with every setting documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# unigrid configuration - Full Template
# See: https://github.com/yaklabco/unigrid
#
# Every setting is listed with its default value.

# Rows to display below each character. A cell that only holds hidden
# encodings is dropped from the output.
show:
  scalars: true
  utf16: true
  utf8: true

# Number base for code points and code units: hex or decimal
base: hex

# Show the Unicode name of every scalar
names: false

# Output format: grid, table, json, or summary
format: grid

# Drop one trailing newline from files and stdin before decomposing.
# Text given as arguments is never trimmed.
trim_trailing_newline: true

# Print aggregate statistics after the output
summary: true
`)

	return buf.Bytes()
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	defaults := NewConfig()

	cfg := map[string]any{
		"show": map[string]any{
			"scalars": defaults.ShowScalars(),
			"utf16":   defaults.ShowUTF16(),
			"utf8":    defaults.ShowUTF8(),
		},
		"base":                  defaults.Base,
		"names":                 defaults.ShowNames(),
		"format":                defaults.Format,
		"trim_trailing_newline": defaults.TrimNewline(),
		"summary":               defaults.ShowSummary(),
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# unigrid configuration
# See: https://github.com/yaklabco/unigrid`
}
