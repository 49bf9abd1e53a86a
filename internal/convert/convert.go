// Package convert orchestrates one journal conversion run.
//
// A Session holds the state of the most recent conversion: its status,
// the rendered document, and an advisory summary. Each run replaces the
// state wholesale; a failed run clears it, so stale partial output is
// never visible. Conversions are deterministic pure functions of the
// input file, so there are no retries.
package convert

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarvNC/day-one-to-md/internal/archive"
	"github.com/MarvNC/day-one-to-md/internal/export"
	"github.com/MarvNC/day-one-to-md/internal/journal"
	"github.com/MarvNC/day-one-to-md/internal/output"
)

// journalTarget is the filename searched for inside export archives.
// Matched as a case-insensitive suffix, so nested paths qualify.
const journalTarget = "journal.json"

var (
	// ErrUnsupportedFileType is returned for filename suffixes other
	// than .json and .zip, before any read is attempted.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyEntryList is returned when the parsed document has zero
	// entries.
	ErrEmptyEntryList = errors.New("journal has no entries")
	// ErrEmptyRenderedOutput is returned when rendering produced only
	// whitespace. The normalizer's placeholder fallback should make
	// this unreachable; it is checked anyway.
	ErrEmptyRenderedOutput = errors.New("rendered document is empty")
)

// Status is the session state reported after each conversion attempt.
type Status int

const (
	// StatusIdle means no conversion has run yet.
	StatusIdle Status = iota
	// StatusProcessing means a conversion is in flight.
	StatusProcessing
	// StatusSuccess means the last conversion produced a document.
	StatusSuccess
	// StatusError means the last conversion failed.
	StatusError
)

// String returns the advisory name of a status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusProcessing:
		return "processing"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Session holds the state of the most recent conversion run.
type Session struct {
	Status Status
	// Output is the rendered markdown document. Empty unless Status
	// is StatusSuccess.
	Output string
	// Records are the normalized records in rendered (sorted) order.
	Records []journal.Record
	// Summary is the advisory success message: entry count plus first
	// and last entry timestamps.
	Summary string
	// Err is the failure of the last run, nil unless Status is
	// StatusError.
	Err error
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Status: StatusIdle}
}

// Convert runs one conversion of the named export file.
//
// The file type is decided by suffix before any read: .json parses
// directly, .zip goes through the archive locator, anything else fails
// with ErrUnsupportedFileType. On success the session holds the rendered
// document; on failure all output state is cleared and the error is both
// stored and returned.
func (s *Session) Convert(path string) error {
	s.reset(StatusProcessing)

	text, err := loadSource(path)
	if err != nil {
		return s.fail(err)
	}

	doc, err := journal.Parse([]byte(text))
	if err != nil {
		return s.fail(err)
	}
	if len(doc.Entries) == 0 {
		return s.fail(ErrEmptyEntryList)
	}

	records := export.Sorted(journal.Normalize(doc))
	rendered := export.FormatMarkdown(records)
	if strings.TrimSpace(rendered) == "" {
		return s.fail(ErrEmptyRenderedOutput)
	}

	s.Status = StatusSuccess
	s.Output = rendered
	s.Records = records
	s.Summary = summarize(records)
	return nil
}

// reset clears all per-run state and sets the given status.
func (s *Session) reset(status Status) {
	s.Status = status
	s.Output = ""
	s.Records = nil
	s.Summary = ""
	s.Err = nil
}

// fail records a terminal error for the current run.
func (s *Session) fail(err error) error {
	s.reset(StatusError)
	s.Err = err
	return err
}

// loadSource returns the journal document text for an input path.
func loadSource(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading %s: %v", path, err), err)
		}
		return string(data), nil
	case ".zip":
		return loadArchive(path)
	default:
		return "", fmt.Errorf("%w: %s (expected .json or .zip)", ErrUnsupportedFileType, filepath.Base(path))
	}
}

// loadArchive opens a ZIP export and locates the journal document in it.
func loadArchive(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return "", output.NewUserErrorWithCause(fmt.Sprintf("%s is not a valid ZIP archive", path), err)
		}
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("opening %s: %v", path, err), err)
	}
	defer reader.Close()

	return archive.Locate(archive.NewZipContainer(&reader.Reader), journalTarget)
}

// summarize builds the advisory success message for sorted records.
func summarize(records []journal.Record) string {
	noun := "entries"
	if len(records) == 1 {
		noun = "entry"
	}
	first := export.HeaderTimestamp(records[0].Instant)
	last := export.HeaderTimestamp(records[len(records)-1].Instant)
	return fmt.Sprintf("%d %s from %s to %s", len(records), noun, first, last)
}
