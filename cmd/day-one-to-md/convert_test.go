package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MarvNC/day-one-to-md/internal/output"
)

const testDocument = `{"entries":[
	{"creationDate":"2023-05-01T14:03:09Z","text":"Second"},
	{"creationDate":"2023-01-01T08:00:00Z","text":"First"}
]}`

// writeInput drops an input file with the given name into a temp dir.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// runRootCmd executes the root command with args and captured output.
func runRootCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name         string
		inputName    string
		inputContent string
		extraArgs    []string
		wantErr      bool
		wantExitCode int
		wantContains []string
	}{
		{
			name:         "markdown to stdout",
			inputName:    "journal.json",
			inputContent: testDocument,
			wantContains: []string{
				"# 2023-01-01 08-00-00",
				"First",
				"\n\n---\n\n",
				"# 2023-05-01 14-03-09",
				"Second",
			},
		},
		{
			name:         "json format to stdout",
			inputName:    "journal.json",
			inputContent: testDocument,
			extraArgs:    []string{"--format", "json"},
			wantContains: []string{
				`"instant": "2023-01-01T08:00:00Z"`,
				`"body": "First"`,
			},
		},
		{
			name:         "invalid format flag",
			inputName:    "journal.json",
			inputContent: testDocument,
			extraArgs:    []string{"--format", "xml"},
			wantErr:      true,
			wantExitCode: output.ExitUserError,
		},
		{
			name:         "unsupported file type",
			inputName:    "notes.txt",
			inputContent: "just text",
			wantErr:      true,
			wantExitCode: output.ExitUserError,
		},
		{
			name:         "malformed document",
			inputName:    "journal.json",
			inputContent: "{broken",
			wantErr:      true,
			wantExitCode: output.ExitUserError,
		},
		{
			name:         "empty entry list",
			inputName:    "journal.json",
			inputContent: `{"entries":[]}`,
			wantErr:      true,
			wantExitCode: output.ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.inputName, tt.inputContent)
			args := append([]string{path}, tt.extraArgs...)

			stdout, _, err := runRootCmd(t, args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Execute() error = nil, want error")
				}
				if code := output.GetExitCode(err); code != tt.wantExitCode {
					t.Errorf("exit code = %d, want %d", code, tt.wantExitCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout = %q, want it to contain %q", stdout, want)
				}
			}
		})
	}
}

func TestConvertCommandStatusOnStderr(t *testing.T) {
	path := writeInput(t, "journal.json", testDocument)

	stdout, stderr, err := runRootCmd(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// The document owns stdout; advisory status goes to stderr.
	if strings.Contains(stdout, "Converted") {
		t.Errorf("stdout = %q, status leaked into document output", stdout)
	}
	if !strings.Contains(stderr, "Converting") {
		t.Errorf("stderr = %q, want processing status", stderr)
	}
	if !strings.Contains(stderr, "2 entries from 2023-01-01 08-00-00 to 2023-05-01 14-03-09") {
		t.Errorf("stderr = %q, want success summary", stderr)
	}
}

func TestConvertCommandJSONMode(t *testing.T) {
	path := writeInput(t, "journal.json", testDocument)

	stdout, stderr, err := runRootCmd(t, path, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty in JSON mode", stderr)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(stdout), &data); err != nil {
		t.Fatalf("stdout is not a single JSON object: %v\n%s", err, stdout)
	}
	if data["status"] != "success" {
		t.Errorf("status = %v, want success", data["status"])
	}
	if data["entries"] != float64(2) {
		t.Errorf("entries = %v, want 2", data["entries"])
	}
	if data["first"] != "2023-01-01 08-00-00" {
		t.Errorf("first = %v", data["first"])
	}
	if data["last"] != "2023-05-01 14-03-09" {
		t.Errorf("last = %v", data["last"])
	}
	markdown, _ := data["markdown"].(string)
	if !strings.Contains(markdown, "# 2023-01-01 08-00-00") {
		t.Errorf("markdown = %q, missing document", markdown)
	}
}

func TestConvertCommandJSONModeError(t *testing.T) {
	path := writeInput(t, "journal.json", `{"entries":[]}`)

	stdout, _, err := runRootCmd(t, path, "--json")
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(stdout), &data); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if msg, _ := data["error"].(string); !strings.Contains(msg, "no entries") {
		t.Errorf("error = %v, want no-entries message", data["error"])
	}
}

func TestConvertCommandWriteToDirectory(t *testing.T) {
	path := writeInput(t, "journal.json", testDocument)
	outDir := t.TempDir()

	stdout, _, err := runRootCmd(t, path, "--out", outDir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	name := entries[0].Name()
	if !strings.HasPrefix(name, "day-one-to-md-") || !strings.HasSuffix(name, ".md") {
		t.Errorf("filename = %q, want day-one-to-md-<date>.md", name)
	}

	content, err := os.ReadFile(filepath.Join(outDir, name))
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(content), "# 2023-01-01 08-00-00") {
		t.Errorf("file content = %q, missing document", content)
	}
	if !strings.Contains(stdout, "Wrote") {
		t.Errorf("stdout = %q, want write confirmation", stdout)
	}
}

func TestConvertCommandWriteToExactPath(t *testing.T) {
	path := writeInput(t, "journal.json", testDocument)
	dest := filepath.Join(t.TempDir(), "out.md")

	if _, _, err := runRootCmd(t, path, "--out", dest); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(content), "Second") {
		t.Errorf("file content = %q", content)
	}
}

func TestConvertCommandRequiresInputArg(t *testing.T) {
	_, _, err := runRootCmd(t)
	if err == nil {
		t.Fatal("Execute() error = nil, want arg error")
	}
}
