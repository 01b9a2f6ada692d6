package config

// defaultTemplate is the commented configuration written by "mdblock init".
const defaultTemplate = `# mdblock configuration
# See: https://github.com/yaklabco/mdblock

# Markdown flavor goldmark uses for "mdblock verify": commonmark or gfm.
flavor: commonmark

# Default output format for "mdblock scan": text, table, json, or summary.
format: text

# Inspect fenced bodies to guess a language when the info string is empty.
detect_languages: false

# File extensions treated as Markdown.
extensions:
  - .md
  - .markdown

# Glob patterns (doublestar syntax) for files and directories to skip.
ignore:
  - node_modules/**
  - vendor/**

# Follow directory symlinks while discovering files.
follow_symlinks: false

# Parallel workers; 0 uses every available CPU.
jobs: 0
`

// DefaultTemplate returns the commented default configuration file.
func DefaultTemplate() []byte {
	return []byte(defaultTemplate)
}
