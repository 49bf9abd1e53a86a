package export

import (
	"encoding/json"
	"fmt"

	"github.com/MarvNC/day-one-to-md/internal/journal"
	"github.com/MarvNC/day-one-to-md/internal/output"
)

// FormatJSON writes the sorted records as a JSON array to the printer.
func FormatJSON(printer *output.Printer, records []journal.Record) error {
	return printer.WriteJSON(Sorted(records))
}

// MarshalRecords returns the sorted records as an indented JSON array
// with a trailing newline, ready to write to a file.
func MarshalRecords(records []journal.Record) ([]byte, error) {
	data, err := json.MarshalIndent(Sorted(records), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling records: %w", err)
	}
	return append(data, '\n'), nil
}
