package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdblock/pkg/config"
)

// envVarPrefix is the prefix for all mdblock environment variables.
const envVarPrefix = "MDBLOCK_"

// envSetter applies one environment value to a config.
type envSetter func(cfg *config.Config, value string) error

// envSetters maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]envSetter{
	"FLAVOR": func(cfg *config.Config, v string) error {
		cfg.Flavor = config.Flavor(v)
		return nil
	},
	"FORMAT": func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	},
	"DETECT_LANGUAGES": boolSetter(func(cfg *config.Config, b bool) { cfg.DetectLanguages = b }),
	"FOLLOW_SYMLINKS":  boolSetter(func(cfg *config.Config, b bool) { cfg.FollowSymlinks = b }),
	"JOBS": func(cfg *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		cfg.Jobs = n
		return nil
	},
	"IGNORE": func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	},
	"EXTENSIONS": func(cfg *config.Config, v string) error {
		cfg.Extensions = parseSliceValue(v)
		return nil
	},
}

func boolSetter(set func(*config.Config, bool)) envSetter {
	return func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDBLOCK_ (e.g., MDBLOCK_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, set := range envSetters {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", envVar, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice of trimmed, non-empty items.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
