package respond

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docpages/doc2jpeg/internal/converter"
)

func writePages(t *testing.T, contents ...string) []converter.PageImage {
	t.Helper()
	dir := t.TempDir()
	pages := make([]converter.PageImage, 0, len(contents))
	for i, data := range contents {
		path := filepath.Join(dir, fmt.Sprintf("page-%d.jpg", i+1))
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("failed to write page file: %v", err)
		}
		pages = append(pages, converter.PageImage{Index: i + 1, Path: path, Size: int64(len(data))})
	}
	return pages
}

func TestWriteMultipart(t *testing.T) {
	contents := []string{"first-page-bytes", "second", "third-page"}
	pages := writePages(t, contents...)
	boundary := NewBoundary()

	var buf bytes.Buffer
	if err := WriteMultipart(&buf, boundary, pages); err != nil {
		t.Fatalf("WriteMultipart failed: %v", err)
	}

	mr := multipart.NewReader(&buf, boundary)
	for i, want := range contents {
		part, err := mr.NextPart()
		if err != nil {
			t.Fatalf("part %d: %v", i+1, err)
		}
		if ct := part.Header.Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("part %d Content-Type = %q", i+1, ct)
		}
		wantDisp := fmt.Sprintf("attachment; filename=\"page-%d.jpg\"", i+1)
		if disp := part.Header.Get("Content-Disposition"); disp != wantDisp {
			t.Errorf("part %d Content-Disposition = %q, expected %q", i+1, disp, wantDisp)
		}
		if cl := part.Header.Get("Content-Length"); cl != fmt.Sprintf("%d", len(want)) {
			t.Errorf("part %d Content-Length = %q, expected %d", i+1, cl, len(want))
		}
		got, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("part %d read: %v", i+1, err)
		}
		if string(got) != want {
			t.Errorf("part %d body = %q, expected %q", i+1, got, want)
		}
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("expected EOF after last part, got %v", err)
	}
}

func TestWriteMultipartStopsOnWriteError(t *testing.T) {
	pages := writePages(t, strings.Repeat("x", 4096))
	w := &failingWriter{failAfter: 10}
	if err := WriteMultipart(w, NewBoundary(), pages); err == nil {
		t.Fatal("expected write error to propagate")
	}
}

type failingWriter struct {
	written   int
	failAfter int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written >= w.failAfter {
		return 0, io.ErrClosedPipe
	}
	w.written += len(p)
	return len(p), nil
}

func TestNewBoundaryUniquePerRequest(t *testing.T) {
	a, b := NewBoundary(), NewBoundary()
	if a == b {
		t.Fatal("boundaries must not collide across requests")
	}
	if !strings.HasPrefix(a, boundaryPrefix) {
		t.Errorf("boundary %q missing prefix", a)
	}
}

func TestCreateZipArchive(t *testing.T) {
	contents := []string{"page one", "page two contents"}
	pages := writePages(t, contents...)

	zipPath, err := CreateZipArchive(pages)
	if zipPath != "" {
		defer os.Remove(zipPath)
	}
	if err != nil {
		t.Fatalf("CreateZipArchive failed: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != len(contents) {
		t.Fatalf("expected %d entries, got %d", len(contents), len(zr.File))
	}
	for i, f := range zr.File {
		wantName := fmt.Sprintf("page-%d.jpg", i+1)
		if f.Name != wantName {
			t.Errorf("entry %d name = %q, expected %q", i, f.Name, wantName)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("entry %d open: %v", i, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("entry %d read: %v", i, err)
		}
		if string(got) != contents[i] {
			t.Errorf("entry %d body = %q, expected %q", i, got, contents[i])
		}
	}
}

func TestBuildJSONPayload(t *testing.T) {
	contents := []string{"alpha", "beta", "gamma"}
	pages := writePages(t, contents...)

	payload, err := BuildJSONPayload(pages)
	if err != nil {
		t.Fatalf("BuildJSONPayload failed: %v", err)
	}
	if len(payload) != len(contents) {
		t.Fatalf("expected %d entries, got %d", len(contents), len(payload))
	}
	for i, entry := range payload {
		if entry.Page != i+1 {
			t.Errorf("entry %d page = %d", i, entry.Page)
		}
		if entry.Filename != fmt.Sprintf("page-%d.jpg", i+1) {
			t.Errorf("entry %d filename = %q", i, entry.Filename)
		}
		const prefix = "data:image/jpeg;base64,"
		if !strings.HasPrefix(entry.Data, prefix) {
			t.Fatalf("entry %d data missing URI prefix: %q", i, entry.Data)
		}
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(entry.Data, prefix))
		if err != nil {
			t.Fatalf("entry %d base64 decode: %v", i, err)
		}
		if string(decoded) != contents[i] {
			t.Errorf("entry %d decoded = %q, expected %q", i, decoded, contents[i])
		}
	}
}

func TestBuildJSONPayloadMissingFile(t *testing.T) {
	pages := []converter.PageImage{{Index: 1, Path: filepath.Join(t.TempDir(), "gone.jpg"), Size: 1}}
	if _, err := BuildJSONPayload(pages); err == nil {
		t.Fatal("expected error for missing page file")
	}
}
