package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MarvNC/day-one-to-md/internal/convert"
	"github.com/MarvNC/day-one-to-md/internal/export"
)

// --- Convert tool ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Path string `json:"path" jsonschema:"path to the export file (.zip or .json)"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Markdown   string `json:"markdown"        jsonschema:"the rendered markdown document"`
	EntryCount int    `json:"entry_count"     jsonschema:"number of journal entries"`
	First      string `json:"first,omitempty" jsonschema:"earliest entry timestamp (UTC)"`
	Last       string `json:"last,omitempty"  jsonschema:"latest entry timestamp (UTC)"`
	Summary    string `json:"summary"         jsonschema:"advisory conversion summary"`
}

func handleConvert() mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		session := convert.NewSession()
		if err := session.Convert(in.Path); err != nil {
			return nil, ConvertOutput{}, fmt.Errorf("converting %s: %w", in.Path, err)
		}

		first, last := recordBounds(session)
		return nil, ConvertOutput{
			Markdown:   session.Output,
			EntryCount: len(session.Records),
			First:      first,
			Last:       last,
			Summary:    session.Summary,
		}, nil
	}
}

// --- Summary tool ---

// SummaryInput is the input for the summary tool.
type SummaryInput struct {
	Path string `json:"path" jsonschema:"path to the export file (.zip or .json)"`
}

// SummaryOutput is the output for the summary tool.
type SummaryOutput struct {
	EntryCount int    `json:"entry_count"     jsonschema:"number of journal entries"`
	First      string `json:"first,omitempty" jsonschema:"earliest entry timestamp (UTC)"`
	Last       string `json:"last,omitempty"  jsonschema:"latest entry timestamp (UTC)"`
	Summary    string `json:"summary"         jsonschema:"advisory conversion summary"`
}

func handleSummary() mcp.ToolHandlerFor[SummaryInput, SummaryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in SummaryInput) (*mcp.CallToolResult, SummaryOutput, error) {
		session := convert.NewSession()
		if err := session.Convert(in.Path); err != nil {
			return nil, SummaryOutput{}, fmt.Errorf("inspecting %s: %w", in.Path, err)
		}

		first, last := recordBounds(session)
		return nil, SummaryOutput{
			EntryCount: len(session.Records),
			First:      first,
			Last:       last,
			Summary:    session.Summary,
		}, nil
	}
}

// recordBounds returns the first and last record timestamps of a
// successful session in the fixed UTC header format.
func recordBounds(session *convert.Session) (first, last string) {
	if len(session.Records) == 0 {
		return "", ""
	}
	first = export.HeaderTimestamp(session.Records[0].Instant)
	last = export.HeaderTimestamp(session.Records[len(session.Records)-1].Instant)
	return first, last
}
