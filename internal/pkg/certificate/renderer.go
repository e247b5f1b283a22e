package certificate

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// networkIdleEvent is the lifecycle event Chrome emits once a frame has had
// no network connections for 500ms, the same quiescence point puppeteer
// calls networkidle0.
const networkIdleEvent = "networkIdle"

// isFrameNetworkIdle reports whether a CDP event is the network-idle
// lifecycle event for the given frame.
func isFrameNetworkIdle(ev interface{}, frameID cdp.FrameID) bool {
	e, ok := ev.(*page.EventLifecycleEvent)
	return ok && e.FrameID == frameID && e.Name == networkIdleEvent
}

// A4 paper dimensions in inches; landscape orientation is requested through
// the print options, not by swapping width and height.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Renderer converts a final HTML document into a PDF by driving a headless
// Chrome process. Each call launches its own browser process and tears it
// down before returning, on success and on error alike.
type Renderer struct {
	chromePath string
	timeout    time.Duration
}

// NewRenderer creates a Renderer. chromePath may be empty to use the Chrome
// binary found on PATH; timeout bounds the whole launch-load-print cycle.
func NewRenderer(chromePath string, timeout time.Duration) *Renderer {
	return &Renderer{
		chromePath: chromePath,
		timeout:    timeout,
	}
}

// RenderPDF renders the HTML document to a landscape A4 PDF with printed
// backgrounds and zero margins. The result is atomic: a complete PDF buffer
// or an error, never partial output.
func (r *Renderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	// The deferred cancels guarantee the Chrome process is terminated on
	// every exit path, including page-load failures.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		// Set the document and block until the frame reports network idle.
		// Templates are arbitrary author HTML and may pull external images,
		// fonts, or CSS; capturing before those fetches settle would drop
		// them from the PDF. The surrounding timeout bounds the wait.
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
				return err
			}

			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			frameID := frameTree.Frame.ID

			// The listener must be in place before the content is set, or
			// the idle event can fire unobserved.
			idle := make(chan struct{}, 1)
			listenCtx, cancelListen := context.WithCancel(ctx)
			defer cancelListen()
			chromedp.ListenTarget(listenCtx, func(ev interface{}) {
				if isFrameNetworkIdle(ev, frameID) {
					select {
					case idle <- struct{}{}:
					default:
					}
				}
			})

			if err := page.SetDocumentContent(frameID, html).Do(ctx); err != nil {
				return err
			}

			select {
			case <-idle:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return pdf, nil
}
