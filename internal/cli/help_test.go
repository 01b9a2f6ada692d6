package cli

import (
	"bytes"
	"testing"
)

func TestSplitFlagLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		wantFlag  string
		wantUsage string
		wantOK    bool
	}{
		{"-j, --jobs int   parallel workers", "-j, --jobs int", "parallel workers", true},
		{"--compact   minified JSON output", "--compact", "minified JSON output", true},
		{"--compact", "", "", false},
		{"--trailing   ", "", "", false},
	}

	for _, tt := range tests {
		flag, usage, ok := splitFlagLine(tt.line)
		if ok != tt.wantOK || flag != tt.wantFlag || usage != tt.wantUsage {
			t.Errorf("splitFlagLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, flag, usage, ok, tt.wantFlag, tt.wantUsage, tt.wantOK)
		}
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	for _, want := range []string{"Usage:", "Available Commands:", "scan", "verify", "Line Kinds:", "fence-open", "--config"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSubcommandHelpOmitsKinds(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"scan", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	if bytes.Contains(out.Bytes(), []byte("Line Kinds:")) {
		t.Error("subcommand help should not list line kinds")
	}
	if !bytes.Contains(out.Bytes(), []byte("--detect-languages")) {
		t.Error("scan help should list its flags")
	}
}
