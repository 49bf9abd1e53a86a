package journal

import (
	"strings"

	"github.com/tidwall/gjson"
)

// RichTextKind tags the outcome of a rich text sub-parse.
type RichTextKind int

const (
	// RichTextParsed means the rich text decoded as structured data.
	// Text holds the concatenated content parts, trimmed (may be empty).
	RichTextParsed RichTextKind = iota
	// RichTextUnparseable means the rich text was not valid structured
	// data. This is a designed fallback, not an error.
	RichTextUnparseable
)

// RichTextResult is the two-tag result of parsing an entry's rich text.
type RichTextResult struct {
	Kind RichTextKind
	Text string
}

// parseRichText decodes a Day One richText value.
//
// The value is a serialized JSON object whose "contents" field holds an
// ordered list of content parts, each optionally carrying a "text" field.
// Parts without text contribute the empty string; order is preserved.
func parseRichText(raw string) RichTextResult {
	if !gjson.Valid(raw) {
		return RichTextResult{Kind: RichTextUnparseable}
	}

	var builder strings.Builder
	gjson.Get(raw, "contents").ForEach(func(_, part gjson.Result) bool {
		builder.WriteString(part.Get("text").String())
		return true
	})

	return RichTextResult{
		Kind: RichTextParsed,
		Text: strings.TrimSpace(builder.String()),
	}
}
