package export

import (
	"sort"
	"strings"
	"time"

	"github.com/MarvNC/day-one-to-md/internal/journal"
)

// AppName is the tool name used in generated filenames.
const AppName = "day-one-to-md"

// HeaderTimeFormat is the fixed-width UTC timestamp used for block
// headers: zero-padded, 24-hour clock.
const HeaderTimeFormat = "2006-01-02 15-04-05"

// blockSeparator joins rendered entry blocks.
const blockSeparator = "\n\n---\n\n"

// Sorted returns a copy of records sorted ascending by instant.
// The sort is stable: records with equal instants keep their relative
// input order, which matters when many entries share the epoch sentinel.
func Sorted(records []journal.Record) []journal.Record {
	sorted := make([]journal.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant.Before(sorted[j].Instant)
	})
	return sorted
}

// FormatMarkdown renders records as the final markdown document.
// Records are sorted before rendering; the result is empty only when
// records is empty.
func FormatMarkdown(records []journal.Record) string {
	sorted := Sorted(records)

	blocks := make([]string, 0, len(sorted))
	for _, record := range sorted {
		blocks = append(blocks, formatBlock(record))
	}
	return strings.Join(blocks, blockSeparator)
}

// formatBlock renders one record as "# <header>\n\n<body>", trimmed.
func formatBlock(record journal.Record) string {
	block := "# " + HeaderTimestamp(record.Instant) + "\n\n" + record.Body
	return strings.TrimSpace(block)
}

// HeaderTimestamp formats an instant in the fixed UTC header format.
func HeaderTimestamp(instant time.Time) string {
	return instant.UTC().Format(HeaderTimeFormat)
}

// DownloadFilename returns the output filename for a conversion run:
// <app-name>-<yyyy-mm-dd>.md, dated by the UTC conversion time.
func DownloadFilename(now time.Time) string {
	return AppName + "-" + now.UTC().Format("2006-01-02") + ".md"
}
