package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrExportTimeout marks an export that exceeded its rendering budget. The
// caller reports it distinctly from other failures so users see "took too
// long" instead of a generic error.
var ErrExportTimeout = errors.New("pdf export timed out")

// Generator drives a headless chromium to turn the print page description
// into PDF bytes or a thumbnail image. Each call launches a fresh browser;
// exports are rare enough that keeping one warm is not worth the state.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// ExportPDF prints the given self-contained HTML onto A4 pages. The context
// deadline bounds the whole operation; on expiry the error wraps
// ErrExportTimeout.
func (g *Generator) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	page, cleanup, err := g.openPage(ctx, html)
	defer cleanup()
	if err != nil {
		return nil, g.mapTimeout(ctx, err)
	}

	if err := (proto.EmulationSetEmulatedMedia{Media: "print"}).Call(page); err != nil {
		return nil, g.mapTimeout(ctx, fmt.Errorf("set print media: %w", err))
	}

	params := &proto.PagePrintToPDF{
		PrintBackground:   true,
		PaperWidth:        float64Ptr(8.27),
		PaperHeight:       float64Ptr(11.69),
		MarginTop:         float64Ptr(0),
		MarginBottom:      float64Ptr(0),
		MarginLeft:        float64Ptr(0),
		MarginRight:       float64Ptr(0),
		PreferCSSPageSize: true,
	}
	reader, err := page.PDF(params)
	if err != nil {
		return nil, g.mapTimeout(ctx, fmt.Errorf("print to pdf: %w", err))
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, g.mapTimeout(ctx, fmt.Errorf("read pdf bytes: %w", err))
	}
	return data, nil
}

// Screenshot captures the rendered page as a JPEG, used for template
// selector thumbnails.
func (g *Generator) Screenshot(ctx context.Context, html string, quality int) ([]byte, error) {
	page, cleanup, err := g.openPage(ctx, html)
	defer cleanup()
	if err != nil {
		return nil, g.mapTimeout(ctx, err)
	}

	req := &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: intPtr(quality),
	}
	data, err := page.Screenshot(true, req)
	if err != nil {
		return nil, g.mapTimeout(ctx, fmt.Errorf("capture screenshot: %w", err))
	}
	return data, nil
}

func (g *Generator) openPage(ctx context.Context, html string) (_ *rod.Page, cleanup func(), err error) {
	cleanup = func() {}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	defer func() {
		if err != nil {
			launch.Cleanup()
		}
	}()

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, cleanup, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(browserURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, cleanup, fmt.Errorf("connect browser: %w", err)
	}
	cleanup = func() {
		_ = browser.Close()
		launch.Cleanup()
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("open page: %w", err)
	}
	prev := cleanup
	cleanup = func() {
		_ = page.Close()
		prev()
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, cleanup, fmt.Errorf("set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, cleanup, fmt.Errorf("wait for page load: %w", err)
	}

	// Settle web fonts before measuring; give up after 3s so a missing
	// font never stalls the export.
	if _, evalErr := page.Timeout(5 * time.Second).Eval(`() => {
	  if (document && document.fonts && document.fonts.ready) {
	    return Promise.race([
	      document.fonts.ready.then(() => true),
	      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
	    ]);
	  }
	  return true;
	}`); evalErr != nil {
		g.logger.Warn("font readiness wait failed, continuing", slog.Any("error", evalErr))
	}

	return page, cleanup, nil
}

// mapTimeout replaces context-expiry failures with the dedicated timeout
// sentinel while preserving the underlying cause.
func (g *Generator) mapTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExportTimeout, err)
	}
	return err
}

func float64Ptr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}
