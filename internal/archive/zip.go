package archive

import (
	"archive/zip"
	"fmt"
	"io"
)

// ZipContainer adapts a ZIP archive to the Container interface.
type ZipContainer struct {
	reader *zip.Reader
}

// NewZipContainer wraps an open ZIP reader.
func NewZipContainer(reader *zip.Reader) *ZipContainer {
	return &ZipContainer{reader: reader}
}

// Names returns the archive member names in archive order.
func (c *ZipContainer) Names() []string {
	names := make([]string, 0, len(c.reader.File))
	for _, file := range c.reader.File {
		names = append(names, file.Name)
	}
	return names
}

// ReadText decompresses the named member and decodes it as text.
func (c *ZipContainer) ReadText(name string) (string, error) {
	for _, file := range c.reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", name, err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("%w: %s", ErrStreamNotFound, name)
}
