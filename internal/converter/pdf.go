package converter

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	fitz "github.com/gen2brain/go-fitz"

	"github.com/docpages/doc2jpeg/internal/classify"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

// PDFConverter rasterizes PDF pages to JPEG files using MuPDF (go-fitz).
type PDFConverter struct{}

// NewPDFConverter creates a new PDF page rasterizer
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

func (c *PDFConverter) Name() string { return "pdf2jpeg" }

func (c *PDFConverter) Category() classify.Category { return classify.CategoryPDF }

func (c *PDFConverter) Convert(ctx context.Context, srcPath string, ws *workspace.Workspace, opts ConvertOptions) ([]string, error) {
	return c.renderPages(ctx, srcPath, ws.Root(), opts)
}

// renderPages writes page-<n>.jpg files into outDir, one per page, in
// document order. The office converter reuses it for its intermediate PDF.
func (c *PDFConverter) renderPages(ctx context.Context, pdfPath, outDir string, opts ConvertOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %v", ErrConversionFailed, err)
	}
	defer doc.Close()

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = 150
	}

	numPages := doc.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%w: PDF has no pages", ErrConversionFailed)
	}

	paths := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to render page %d: %v", ErrConversionFailed, i+1, err)
		}
		pagePath := filepath.Join(outDir, fmt.Sprintf("page-%d.jpg", i+1))
		f, err := os.Create(pagePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create page file: %v", ErrConversionFailed, err)
		}
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: failed to encode page %d: %v", ErrConversionFailed, i+1, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("%w: failed to write page %d: %v", ErrConversionFailed, i+1, err)
		}
		paths = append(paths, pagePath)
	}
	return paths, nil
}
