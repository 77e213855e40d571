package converter

import (
	"context"
	"fmt"
	"os"

	"github.com/docpages/doc2jpeg/internal/classify"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

// Dispatch routes a classified asset to its registered converter and
// normalizes the result into ordered PageImages. A job never partially
// succeeds: any page that fails to materialize fails the whole call, and
// the caller reclaims the workspace before the error propagates.
func Dispatch(ctx context.Context, cat classify.Category, srcPath string, ws *workspace.Workspace, opts ConvertOptions) ([]PageImage, error) {
	c, ok := Get(cat)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, cat)
	}

	paths, err := c.Convert(ctx, srcPath, ws, opts)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: converter produced no pages", ErrConversionFailed)
	}

	pages := make([]PageImage, 0, len(paths))
	for i, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d missing: %v", ErrConversionFailed, i+1, err)
		}
		pages = append(pages, PageImage{Index: i + 1, Path: p, Size: fi.Size()})
	}
	return pages, nil
}

// RegisterBuiltinConverters registers the production converters for every
// supported category.
func RegisterBuiltinConverters(sofficeBin, ffmpegBin string) {
	Register(NewPDFConverter())
	Register(NewOfficeConverter(sofficeBin))
	Register(NewVideoConverter(ffmpegBin))
}
