package report

import (
	"archive/zip"
	"fmt"
	"io"
)

// ArchiveFile is one named entry of a report bundle.
type ArchiveFile struct {
	Name string
	Data []byte
}

// WriteArchive writes the files into a zip stream in the given order. The
// writer is flushed and closed before returning on every path.
func WriteArchive(w io.Writer, files []ArchiveFile) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		entry, err := zw.Create(f.Name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create zip entry %s: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			zw.Close()
			return fmt.Errorf("write zip entry %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}
