// Package journal provides the Day One export schema and the entry
// normalization pipeline.
//
// A Day One export is a single JSON document holding an ordered list of
// entries. Entries are heterogeneous: timestamps and both text fields are
// optional, and the rich text field is itself a serialized JSON structure.
// This package maps every raw entry, however malformed, into a uniform
// (instant, body) record.
//
// # Parsing
//
//	doc, err := journal.Parse(data)   // ErrMalformedDocument on bad JSON
//
// # Normalization
//
//	records := journal.Normalize(doc) // always len(records) == len(doc.Entries)
//
// Normalization is total: a single malformed entry never fails the run.
// Missing or unparseable timestamps resolve to the Unix epoch sentinel,
// which sorts before every real instant. Entries with no usable text
// resolve to the "[No content]" placeholder.
package journal
