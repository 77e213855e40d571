package converter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/docpages/doc2jpeg/internal/classify"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

// OfficeConverter converts office documents to an intermediate PDF with
// LibreOffice, then rasterizes that PDF.
type OfficeConverter struct {
	Bin string // soffice binary name or path
	pdf *PDFConverter
}

// NewOfficeConverter creates a new office document converter
func NewOfficeConverter(bin string) *OfficeConverter {
	return &OfficeConverter{Bin: bin, pdf: NewPDFConverter()}
}

func (c *OfficeConverter) Name() string { return "office2jpeg" }

func (c *OfficeConverter) Category() classify.Category { return classify.CategoryOffice }

func (c *OfficeConverter) Convert(ctx context.Context, srcPath string, ws *workspace.Workspace, opts ConvertOptions) ([]string, error) {
	if _, err := exec.LookPath(c.Bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolMissing, c.Bin)
	}

	scratch, err := ws.Dir("office")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Bin, "--headless", "--convert-to", "pdf", "--outdir", scratch, srcPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s failed: %v, output: %s", ErrConversionFailed, c.Bin, err, strings.TrimSpace(string(output)))
	}

	// soffice derives the output name from the input basename.
	base := filepath.Base(srcPath)
	pdfPath := filepath.Join(scratch, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("%w: %s did not create output file %s", ErrConversionFailed, c.Bin, pdfPath)
	}

	return c.pdf.renderPages(ctx, pdfPath, ws.Root(), opts)
}
