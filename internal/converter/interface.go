package converter

import (
	"context"
	"time"

	"github.com/docpages/doc2jpeg/internal/classify"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

// ConvertOptions holds configuration for a conversion operation
type ConvertOptions struct {
	Quality int           // JPEG quality (1-100)
	DPI     float64       // Render resolution for PDF pages
	Timeout time.Duration // Deadline for external tool invocations
}

// PageImage is one ordered JPEG artifact produced by a conversion.
type PageImage struct {
	Index int    // 1-based page index
	Path  string // backing file inside the workspace
	Size  int64  // byte size, known once written
}

// Converter defines the interface for category converters
type Converter interface {
	// Name returns the unique name of this converter
	Name() string

	// Category returns the asset category this converter handles
	Category() classify.Category

	// Convert renders srcPath into ordered JPEG page files inside ws.
	// It should:
	// 1. Write every intermediate artifact under ws (or Register it)
	// 2. Produce page files in document order
	// 3. Return paths only for files that actually exist on disk
	Convert(ctx context.Context, srcPath string, ws *workspace.Workspace, opts ConvertOptions) ([]string, error)
}

// ConverterInfo provides information about a registered converter
type ConverterInfo struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Extensions []string `json:"extensions"`
}
