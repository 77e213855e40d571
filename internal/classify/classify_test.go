package classify

import "testing"

func TestClassifyByExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected Category
	}{
		{"report.pdf", CategoryPDF},
		{"report.PDF", CategoryPDF},
		{"notes.doc", CategoryOffice},
		{"notes.docx", CategoryOffice},
		{"sheet.xls", CategoryOffice},
		{"sheet.xlsx", CategoryOffice},
		{"deck.ppt", CategoryOffice},
		{"deck.PPTX", CategoryOffice},
		{"clip.mp4", CategoryVideo},
		{"clip.mov", CategoryVideo},
		{"clip.avi", CategoryVideo},
		{"photo.jpg", CategoryUnknown},
		{"archive.zip", CategoryUnknown},
		{"noext", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.filename, ""); got != tt.expected {
			t.Errorf("Classify(%q) = %s, expected %s", tt.filename, got, tt.expected)
		}
	}
}

func TestClassifyByContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    Category
	}{
		{"application/pdf", CategoryPDF},
		{"Application/PDF", CategoryPDF},
		{"application/pdf; charset=binary", CategoryPDF},
		{"application/msword", CategoryOffice},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", CategoryOffice},
		{"video/mp4", CategoryVideo},
		{"video/quicktime", CategoryVideo},
		{"video/x-msvideo", CategoryVideo},
		{"text/plain", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		if got := Classify("", tt.contentType); got != tt.expected {
			t.Errorf("Classify(content type %q) = %s, expected %s", tt.contentType, got, tt.expected)
		}
	}
}

func TestFilenameWinsOverContentType(t *testing.T) {
	// A usable filename extension takes precedence over the declared type.
	if got := Classify("clip.mp4", "application/pdf"); got != CategoryVideo {
		t.Errorf("expected filename extension to win, got %s", got)
	}
	// A filename without an extension falls back to the declared type.
	if got := Classify("upload", "application/pdf"); got != CategoryPDF {
		t.Errorf("expected content type fallback, got %s", got)
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions(CategoryOffice)
	if len(exts) != 6 {
		t.Fatalf("expected 6 office extensions, got %d: %v", len(exts), exts)
	}
	if exts[0] != ".doc" {
		t.Errorf("expected sorted output starting with .doc, got %v", exts)
	}
	if got := SupportedExtensions(CategoryUnknown); len(got) != 0 {
		t.Errorf("expected no extensions for unknown, got %v", got)
	}
}
