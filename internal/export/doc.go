// Package export renders normalized journal records as output documents.
//
// The canonical format is a single markdown document: records sorted
// ascending by instant (stable, so entries sharing the epoch sentinel
// keep their source order), each rendered as
//
//	# yyyy-mm-dd hh-mm-ss
//
//	<body>
//
// with blocks joined by "\n\n---\n\n". Headers are strictly UTC.
//
// A JSON rendering of the sorted records is also available for pipelines.
package export
