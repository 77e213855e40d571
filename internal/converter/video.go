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

// VideoConverter extracts the first frame of a video as a JPEG using ffmpeg.
type VideoConverter struct {
	Bin string // ffmpeg binary name or path
}

// NewVideoConverter creates a new video frame extractor
func NewVideoConverter(bin string) *VideoConverter {
	return &VideoConverter{Bin: bin}
}

func (c *VideoConverter) Name() string { return "video2jpeg" }

func (c *VideoConverter) Category() classify.Category { return classify.CategoryVideo }

func (c *VideoConverter) Convert(ctx context.Context, srcPath string, ws *workspace.Workspace, opts ConvertOptions) ([]string, error) {
	if _, err := exec.LookPath(c.Bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolMissing, c.Bin)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	framePath := filepath.Join(ws.Root(), "page-1.jpg")
	cmd := exec.CommandContext(ctx, c.Bin, "-y", "-i", srcPath, "-frames:v", "1", "-q:v", "2", framePath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s failed: %v, output: %s", ErrConversionFailed, c.Bin, err, strings.TrimSpace(string(output)))
	}

	if _, err := os.Stat(framePath); err != nil {
		return nil, fmt.Errorf("%w: %s did not create output file", ErrConversionFailed, c.Bin)
	}

	return []string{framePath}, nil
}
