package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unigrid/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		Show:   config.ShowConfig{UTF16: config.Bool(false)},
		Format: "table",
	}

	merged := merge(base, override)

	assert.False(t, merged.ShowUTF16())
	assert.True(t, merged.ShowUTF8())
	assert.Equal(t, "table", merged.Format)
	assert.Equal(t, "hex", merged.Base)

	// Inputs are not mutated.
	assert.True(t, base.ShowUTF16())
	*merged.Show.UTF8 = false
	assert.True(t, base.ShowUTF8())
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, cfg, merge(nil, cfg))
	assert.Equal(t, cfg, merge(cfg, nil))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Base: "decimal", Names: config.Bool(true)},
		&config.Config{Names: config.Bool(false)},
	)
	assert.Equal(t, "decimal", merged.Base)
	assert.False(t, merged.ShowNames())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       *config.Config
		wantField string
		wantWarn  bool
	}{
		{name: "defaults", cfg: config.NewConfig()},
		{name: "nil", cfg: nil},
		{name: "bad base", cfg: &config.Config{Base: "octal"}, wantField: "base"},
		{name: "bad format", cfg: &config.Config{Format: "sarif"}, wantField: "format"},
		{name: "bad color", cfg: &config.Config{Color: "sometimes"}, wantField: "color"},
		{name: "negative jobs", cfg: &config.Config{Jobs: -1}, wantField: "jobs"},
		{
			name: "names without scalars",
			cfg: &config.Config{
				Names: config.Bool(true),
				Show:  config.ShowConfig{Scalars: config.Bool(false)},
			},
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(tt.cfg)
			if tt.wantField == "" {
				assert.True(t, result.Valid(), "errors: %v", result.AllMessages())
			} else {
				require.False(t, result.Valid())
				assert.Equal(t, tt.wantField, result.Errors[0].Field)
			}
			assert.Equal(t, tt.wantWarn, result.HasWarnings())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{FilePath: ".unigrid.yml", Line: 3, Field: "base", Message: "bad"}
	assert.Equal(t, ".unigrid.yml:3: base: bad", err.Error())

	err = &ValidationError{Message: "bad"}
	assert.Equal(t, "bad", err.Error())
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	require.Len(t, vars, len(envMappings))
	assert.Equal(t, "UNIGRID_BASE", vars[0].Name)
	for _, v := range vars {
		assert.NotEmpty(t, v.Description, v.Name)
	}

	assert.Equal(t, "UNIGRID_SHOW_UTF8", GetEnvVarName("show.utf8"))
	assert.Empty(t, GetEnvVarName("rules"))
}

func TestConfigPaths_Layers(t *testing.T) {
	t.Parallel()

	paths := &ConfigPaths{User: "/u/config.yaml", Explicit: "x.yml"}
	assert.Equal(t, [][2]string{{"user", "/u/config.yaml"}, {"explicit", "x.yml"}}, paths.Layers())
}
