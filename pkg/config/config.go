// Package config defines core configuration types for mdblock.
// These types are pure data structures; discovery and merging live in internal/configloader.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor goldmark uses when verifying.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// Config is the root configuration structure for mdblock.
type Config struct {
	// Flavor is the goldmark flavor used by verify ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// Format is the default output format for scan.
	Format OutputFormat `yaml:"format"`

	// DetectLanguages enables body-based language detection for fences
	// without an info string.
	DetectLanguages bool `yaml:"detect_languages"`

	// Extensions are the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Jobs is the number of parallel workers (0 means GOMAXPROCS).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Only restricts reported lines to these kinds.
	Only []string `yaml:"-"`

	// Compact uses minified output where applicable.
	Compact bool `yaml:"-"`
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:     FlavorCommonMark,
		Format:     FormatText,
		Extensions: DefaultExtensions(),
		Jobs:       0,
	}
}
