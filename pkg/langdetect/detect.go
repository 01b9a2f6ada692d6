// Package langdetect resolves the language of a fenced code block.
// The info string is consulted first, using go-enry's alias table. When it is
// empty, the fenced body can optionally be inspected instead.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined from a body.
const Text = "text"

// classifierCandidates bounds the go-enry classifier to languages commonly fenced in docs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Resolve returns the language of a fence with the given info string and body.
// A non-empty info string always wins. Otherwise, when detect is set, the body
// is inspected. Returns "" when nothing is known.
func Resolve(info string, body []byte, detect bool) string {
	if lang := FromInfo(info); lang != "" {
		return lang
	}
	if !detect || len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	return Detect(body)
}

// FromInfo extracts the language from a fence info string.
// The first word is used, with Pandoc-style "{.lang}" decoration removed, and
// mapped through go-enry aliases so that "golang" and "go" agree.
func FromInfo(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	word := strings.TrimLeft(fields[0], "{.")
	word = strings.TrimRight(word, "}")
	if word == "" {
		return ""
	}

	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return normalize(lang)
	}
	return strings.ToLower(word)
}

// Detect returns the detected language for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Text
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, p := range patterns {
		if p.match(content, trimmed) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// pattern is a cheap, highly indicative check for one language.
type pattern struct {
	lang  string
	match func(content, trimmed []byte) bool
}

// patterns are checked in order of specificity.
//
//nolint:gochecknoglobals // Read-only lookup table.
var patterns = []pattern{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(content, _ []byte) bool {
		return (bytes.Contains(content, []byte("def ")) && bytes.Contains(content, []byte("):"))) ||
			bytes.Contains(content, []byte("__name__"))
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`)) && bytes.Contains(trimmed, []byte(":"))
	}},
	{"dockerfile", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM "))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(content, _ []byte) bool {
		return bytes.Contains(content, []byte("fn main()")) || bytes.Contains(content, []byte("println!"))
	}},
	{"yaml", func(content, _ []byte) bool {
		return countYAMLKeys(content) >= 2
	}},
}

// countYAMLKeys counts lines that look like "key: value" or a root list item.
func countYAMLKeys(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
			continue
		}
		if bytes.HasSuffix(line, []byte(":")) || bytes.Contains(line, []byte(": ")) {
			if !bytes.ContainsAny(line, "({") && line[0] != '"' {
				count++
			}
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ReplaceAll(strings.ToLower(lang), " ", "-")
}
