package configloader

import (
	"slices"

	"github.com/yaklabco/mdblock/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalars: override wins when non-zero.
//   - Booleans: override can only switch a feature on, since false is the zero value.
//     Layers that set false or 0 explicitly go through Overrides instead.
//   - Slices: override replaces base entirely when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.DetectLanguages {
		result.DetectLanguages = true
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.Compact {
		result.Compact = true
	}

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Only != nil {
		result.Only = slices.Clone(override.Only)
	}

	return result
}
