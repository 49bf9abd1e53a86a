package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// writeExport drops a journal document into a temp dir.
func writeExport(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing export: %v", err)
	}
	return path
}

const testDocument = `{"entries":[
	{"creationDate":"2023-05-01T14:03:09Z","text":"Later entry"},
	{"creationDate":"2023-01-01T08:00:00Z","text":"Earlier entry"}
]}`

func TestHandleConvert(t *testing.T) {
	path := writeExport(t, testDocument)
	handler := handleConvert()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ConvertInput{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", out.EntryCount)
	}
	if out.First != "2023-01-01 08-00-00" {
		t.Errorf("First = %q", out.First)
	}
	if out.Last != "2023-05-01 14-03-09" {
		t.Errorf("Last = %q", out.Last)
	}
	if !strings.Contains(out.Markdown, "Earlier entry") || !strings.Contains(out.Markdown, "Later entry") {
		t.Errorf("Markdown = %q, missing entry content", out.Markdown)
	}
	if out.Summary == "" {
		t.Error("Summary is empty")
	}
}

func TestHandleConvert_Error(t *testing.T) {
	handler := handleConvert()

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ConvertInput{Path: "notes.txt"})
	if err == nil {
		t.Fatal("error = nil, want unsupported file type error")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("error = %v, want it to mention unsupported file type", err)
	}
}

func TestHandleSummary(t *testing.T) {
	path := writeExport(t, testDocument)
	handler := handleSummary()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, SummaryInput{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", out.EntryCount)
	}
	if out.Summary != "2 entries from 2023-01-01 08-00-00 to 2023-05-01 14-03-09" {
		t.Errorf("Summary = %q", out.Summary)
	}
}

func TestHandleSummary_EmptyJournal(t *testing.T) {
	path := writeExport(t, `{"entries":[]}`)
	handler := handleSummary()

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, SummaryInput{Path: path})
	if err == nil {
		t.Fatal("error = nil, want empty entry list error")
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test")
	if server == nil {
		t.Fatal("NewServer() = nil")
	}
}
