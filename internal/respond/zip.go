package respond

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/docpages/doc2jpeg/internal/converter"
)

// ZipFilename is the download name offered for zip responses.
const ZipFilename = "pages.zip"

// CreateZipArchive writes the pages into a deflate-compressed zip file,
// created as a temp file outside the workspace. The caller registers the
// returned path with the workspace so it is reclaimed with everything else.
func CreateZipArchive(pages []converter.PageImage) (string, error) {
	tmp, err := os.CreateTemp("", "doc2jpeg-pages-*.zip")
	if err != nil {
		return "", fmt.Errorf("failed to create zip temp file: %w", err)
	}
	zipPath := tmp.Name()

	zw := zip.NewWriter(tmp)
	for _, page := range pages {
		entry, err := zw.Create(fmt.Sprintf("page-%d.jpg", page.Index))
		if err != nil {
			tmp.Close()
			return zipPath, fmt.Errorf("failed to add zip entry: %w", err)
		}
		src, err := os.Open(page.Path)
		if err != nil {
			tmp.Close()
			return zipPath, fmt.Errorf("failed to read page %d: %w", page.Index, err)
		}
		_, err = io.Copy(entry, src)
		src.Close()
		if err != nil {
			tmp.Close()
			return zipPath, fmt.Errorf("failed to write zip entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return zipPath, fmt.Errorf("failed to finalize zip: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return zipPath, fmt.Errorf("failed to close zip file: %w", err)
	}
	return zipPath, nil
}
