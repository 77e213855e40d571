package screenshot

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	viewportWidth  = 1920
	viewportHeight = 1080
	jpegQuality    = 90
)

// Failure taxonomy. ErrNavigation means the target URL is presumed to be
// the problem (bad host, timeout); ErrRenderer means the headless browser
// itself could not run.
var (
	ErrNavigation = errors.New("failed to capture screenshot")
	ErrRenderer   = errors.New("unexpected screenshot error")
)

// Capturer takes full-viewport JPEG screenshots of web pages with a
// headless Chrome instance. Each Capture call starts a fresh browser.
type Capturer struct {
	Timeout time.Duration
}

// NewCapturer creates a Capturer with the given navigation deadline.
func NewCapturer(timeout time.Duration) *Capturer {
	return &Capturer{Timeout: timeout}
}

// Capture navigates to url and returns the rendered page as JPEG bytes.
func (c *Capturer) Capture(ctx context.Context, url string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	var buf []byte
	err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight),
		chromedp.Navigate(url),
		chromedp.FullScreenshot(&buf, jpegQuality),
	)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, fmt.Errorf("%w: %v", ErrRenderer, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNavigation, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty capture", ErrRenderer)
	}
	return buf, nil
}
