package main

import (
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "dev build without metadata",
			version: "dev",
			commit:  "none",
			date:    "unknown",
			want:    "dev",
		},
		{
			name:    "release build",
			version: "1.2.0",
			commit:  "abcdef1234567890",
			date:    "2024-06-01",
			want:    "1.2.0 (abcdef1, 2024-06-01)",
		},
		{
			name:    "short commit kept as is",
			version: "1.2.0",
			commit:  "abc",
			date:    "2024-06-01",
			want:    "1.2.0 (abc, 2024-06-01)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	if !strings.Contains(strings.Join(names, " "), "serve") {
		t.Errorf("subcommands = %v, want serve", names)
	}
}
