package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// Category is the logical kind of an uploaded asset. It decides which
// converter handles the file.
type Category string

const (
	CategoryPDF     Category = "pdf"
	CategoryOffice  Category = "office"
	CategoryVideo   Category = "video"
	CategoryUnknown Category = "unknown"
)

var categoryByExt = map[string]Category{
	".pdf":  CategoryPDF,
	".doc":  CategoryOffice,
	".docx": CategoryOffice,
	".xls":  CategoryOffice,
	".xlsx": CategoryOffice,
	".ppt":  CategoryOffice,
	".pptx": CategoryOffice,
	".mp4":  CategoryVideo,
	".mov":  CategoryVideo,
	".avi":  CategoryVideo,
}

// extByContentType maps a declared content type to a canonical extension,
// used only when the upload carries no usable filename.
var extByContentType = map[string]string{
	"application/pdf":               ".pdf",
	"application/msword":            ".doc",
	"application/vnd.ms-excel":      ".xls",
	"application/vnd.ms-powerpoint": ".ppt",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
}

// Ext derives a lowercase extension from the filename, falling back to the
// declared content type when the filename has none.
func Ext(filename, contentType string) string {
	if filename != "" {
		if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
			return ext
		}
	}
	if contentType == "" {
		return ""
	}
	// Strip media type parameters (e.g. "; charset=...").
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return extByContentType[mediaType]
}

// Classify never fails: anything it does not recognize is CategoryUnknown
// and left for the caller to reject.
func Classify(filename, contentType string) Category {
	ext := Ext(filename, contentType)
	if cat, ok := categoryByExt[ext]; ok {
		return cat
	}
	return CategoryUnknown
}

// SupportedExtensions returns the known extensions for a category, for the
// formats listing endpoint.
func SupportedExtensions(cat Category) []string {
	var exts []string
	for ext, c := range categoryByExt {
		if c == cat {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
