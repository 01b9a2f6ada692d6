package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblock/pkg/langdetect"
)

func TestFromInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info string
		want string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"plain name", "go", "go"},
		{"alias", "golang", "go"},
		{"shell alias", "sh", "bash"},
		{"js alias", "js", "javascript"},
		{"mixed case", "Python", "python"},
		{"with attributes", "go title=\"main.go\"", "go"},
		{"pandoc braces", "{.python}", "python"},
		{"unknown keeps word", "mermaid-ish", "mermaid-ish"},
		{"unknown is lowercased", "FooBar", "foobar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.FromInfo(tt.info))
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "text"},
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go code", "package main\n\nfunc main() {}\n", "go"},
		{"python code", "def foo():\n    pass\n", "python"},
		{"json object", `{"key": "value"}`, "json"},
		{"dockerfile", "FROM golang:1.25\nRUN go build\n", "dockerfile"},
		{"sql", "select * from users;", "sql"},
		{"rust", "fn main() {\n    println!(\"hi\");\n}", "rust"},
		{"yaml", "key: value\nother: 123\n", "yaml"},
		{"html", "<!DOCTYPE html>\n<html></html>", "html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	body := []byte("package main\n")

	assert.Equal(t, "rust", langdetect.Resolve("rust", body, true), "info wins over body")
	assert.Equal(t, "go", langdetect.Resolve("", body, true))
	assert.Empty(t, langdetect.Resolve("", body, false), "detection disabled")
	assert.Empty(t, langdetect.Resolve("", []byte("  \n"), true), "blank body")
}
