// Package archive locates the journal document inside an export container.
//
// A container is anything that can list named streams and read one as
// text. The real implementation wraps a ZIP archive; tests use an
// in-memory fake.
package archive
