// Package config defines core configuration types for unigrid.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ShowConfig selects which encoding rows are displayed. Nil means shown.
type ShowConfig struct {
	Scalars *bool `yaml:"scalars,omitempty"`
	UTF16   *bool `yaml:"utf16,omitempty"`
	UTF8    *bool `yaml:"utf8,omitempty"`
}

// Config is the root configuration structure for unigrid.
type Config struct {
	// Show toggles the scalar, UTF-16 and UTF-8 rows.
	Show ShowConfig `yaml:"show"`

	// Base is the numeric base for code points and code units ("hex" or "decimal").
	Base string `yaml:"base,omitempty"`

	// Names adds the Unicode name of each scalar.
	Names *bool `yaml:"names,omitempty"`

	// Format is the output format ("grid", "table", "json" or "summary").
	Format string `yaml:"format,omitempty"`

	// TrimTrailingNewline drops one trailing newline from files and stdin.
	TrimTrailingNewline *bool `yaml:"trim_trailing_newline,omitempty"`

	// Summary prints aggregate statistics after the output.
	Summary *bool `yaml:"summary,omitempty"`

	// CLI-level options (not persisted to config files).

	// Color controls colorized output: auto, always or never.
	Color string `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Output is a file to write the report to instead of stdout.
	Output string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Show: ShowConfig{
			Scalars: Bool(true),
			UTF16:   Bool(true),
			UTF8:    Bool(true),
		},
		Base:                "hex",
		Names:               Bool(false),
		Format:              "grid",
		TrimTrailingNewline: Bool(true),
		Summary:             Bool(true),
		Color:               ColorAuto,
		Jobs:                0, // 0 means use GOMAXPROCS
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// boolOr dereferences p, or returns def when p is nil.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// ShowScalars reports whether the scalar row is shown.
func (c *Config) ShowScalars() bool { return boolOr(c.Show.Scalars, true) }

// ShowUTF16 reports whether the UTF-16 row is shown.
func (c *Config) ShowUTF16() bool { return boolOr(c.Show.UTF16, true) }

// ShowUTF8 reports whether the UTF-8 row is shown.
func (c *Config) ShowUTF8() bool { return boolOr(c.Show.UTF8, true) }

// ShowNames reports whether scalar names are shown.
func (c *Config) ShowNames() bool { return boolOr(c.Names, false) }

// TrimNewline reports whether one trailing newline is dropped from file input.
func (c *Config) TrimNewline() bool { return boolOr(c.TrimTrailingNewline, true) }

// ShowSummary reports whether the summary is printed.
func (c *Config) ShowSummary() bool { return boolOr(c.Summary, true) }
