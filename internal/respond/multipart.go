package respond

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/docpages/doc2jpeg/internal/converter"
)

const (
	boundaryPrefix = "page-image-boundary"

	// ChunkSize is the read size used when forwarding file bytes.
	ChunkSize = 1 << 20
)

// NewBoundary returns a multipart boundary token unique to one request.
func NewBoundary() string {
	return boundaryPrefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// MultipartContentType is the Content-Type header value for a multipart
// page stream with the given boundary.
func MultipartContentType(boundary string) string {
	return "multipart/mixed; boundary=" + boundary
}

// WriteMultipart emits each page as one part: boundary line, fixed headers
// with the exact file byte size, a blank line, the raw JPEG bytes forwarded
// in fixed-size chunks, and a trailing CRLF. The closing delimiter follows
// the last page. Writing stops at the first error so a disconnected client
// does not keep the file reads going.
func WriteMultipart(w io.Writer, boundary string, pages []converter.PageImage) error {
	for _, page := range pages {
		header := fmt.Sprintf(
			"--%s\r\nContent-Type: image/jpeg\r\nContent-Disposition: attachment; filename=\"page-%d.jpg\"\r\nContent-Length: %d\r\n\r\n",
			boundary, page.Index, page.Size,
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		if err := StreamFile(w, page.Path); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "--"+boundary+"--\r\n")
	return err
}

// StreamFile forwards a file's bytes verbatim in fixed-size chunks.
func StreamFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, ChunkSize)
	_, err = io.CopyBuffer(w, f, buf)
	return err
}
