package journal

import (
	"strings"
	"time"
)

// Placeholder is the body used when an entry yields no usable text.
const Placeholder = "[No content]"

// timestampLayouts are tried in order when resolving an entry timestamp.
// Day One writes RFC 3339; the zoneless layout tolerates exports that
// dropped the UTC suffix.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// epochSentinel is the instant assigned to entries without a usable
// timestamp. It sorts before every real instant.
var epochSentinel = time.Unix(0, 0).UTC()

// escapeCleaner strips the single literal backslash Day One emits before
// periods and hyphens. No other text transformation is applied.
var escapeCleaner = strings.NewReplacer(`\.`, ".", `\-`, "-")

// Record is one normalized journal entry: an absolute instant plus the
// resolved body text.
type Record struct {
	Instant time.Time `json:"instant"`
	Body    string    `json:"body"`
}

// Normalize maps every raw entry in doc to a Record.
//
// The mapping is lossless and total: the result always has exactly
// len(doc.Entries) records, and no entry, however malformed, fails the
// run. Records come back in source order; sorting is the renderer's job.
func Normalize(doc *Document) []Record {
	records := make([]Record, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		records = append(records, Record{
			Instant: resolveInstant(entry),
			Body:    resolveBody(entry),
		})
	}
	return records
}

// resolveInstant picks the entry timestamp: creationDate first, then
// modifiedDate, then the epoch sentinel. Parse failures fall through to
// the next candidate rather than erroring.
func resolveInstant(entry Entry) time.Time {
	for _, value := range []string{entry.CreationDate, entry.ModifiedDate} {
		if value == "" {
			continue
		}
		if instant, ok := parseTimestamp(value); ok {
			return instant
		}
	}
	return epochSentinel
}

// parseTimestamp tries each known layout against an ISO-8601-like value.
// Zoneless values are interpreted as UTC.
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// resolveBody picks the entry body text. Priority order, first rule that
// yields non-empty trimmed content wins:
//
//  1. the plain text field, cleaned
//  2. the rich text contents concatenation, cleaned
//  3. the placeholder, when rich text is present but unparseable
//  4. the placeholder, when nothing yields content
func resolveBody(entry Entry) string {
	if text := strings.TrimSpace(entry.Text); text != "" {
		return cleanEscapes(text)
	}

	if entry.RichText != "" {
		result := parseRichText(entry.RichText)
		if result.Kind == RichTextUnparseable {
			return Placeholder
		}
		if result.Text != "" {
			return cleanEscapes(result.Text)
		}
	}

	return Placeholder
}

// cleanEscapes removes a single backslash immediately preceding a period
// or hyphen, leaving the period or hyphen itself.
func cleanEscapes(text string) string {
	return escapeCleaner.Replace(text)
}
