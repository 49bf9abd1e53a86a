package archive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDocumentNotFound is returned when no stream in the container matches
// the target filename.
var ErrDocumentNotFound = errors.New("journal document not found in archive")

// ErrStreamNotFound is returned by Container.ReadText for unknown names.
var ErrStreamNotFound = errors.New("stream not found")

// Container is the capability a locator needs from an archive: an ordered
// list of stream names, and text access to any one of them.
type Container interface {
	// Names returns every stream name in source enumeration order.
	Names() []string
	// ReadText returns the decoded text content of the named stream.
	// Fails with ErrStreamNotFound for unknown names.
	ReadText(name string) (string, error)
}

// Locate finds the journal document in a container and returns its text.
//
// Matching is a case-insensitive suffix test against target, so nested
// paths like "Export/Journal.json" qualify. When several streams match,
// the shortest full path wins, favoring top-level files over deeply
// nested duplicates; equal lengths keep enumeration order. Zero matches
// fail with ErrDocumentNotFound.
func Locate(container Container, target string) (string, error) {
	suffix := strings.ToLower(target)

	best := ""
	found := false
	for _, name := range container.Names() {
		if !strings.HasSuffix(strings.ToLower(name), suffix) {
			continue
		}
		if !found || len(name) < len(best) {
			best = name
			found = true
		}
	}

	if !found {
		return "", fmt.Errorf("%w: no stream name ends with %q", ErrDocumentNotFound, target)
	}

	return container.ReadText(best)
}
