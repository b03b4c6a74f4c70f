package configloader

import "github.com/yaklabco/unigrid/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings and ints: override overwrites base if override is non-zero
//   - Bool pointers: override overwrites base if override is non-nil, so a
//     later layer can switch a row off
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Base != "" {
		result.Base = override.Base
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	mergeBool(&result.Show.Scalars, override.Show.Scalars)
	mergeBool(&result.Show.UTF16, override.Show.UTF16)
	mergeBool(&result.Show.UTF8, override.Show.UTF8)
	mergeBool(&result.Names, override.Names)
	mergeBool(&result.TrimTrailingNewline, override.TrimTrailingNewline)
	mergeBool(&result.Summary, override.Summary)

	return result
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		*dst = config.Bool(*src)
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
