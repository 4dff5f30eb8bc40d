package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter is told about every page a static export writes.
type Reporter interface {
	Start(pages int)
	Wrote(n int, rel string, size int)
	Finish()
}

// NewReporter returns a CIReporter when running under CI and a
// TerminalReporter otherwise. Both write to w.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: w}
	}
	return &TerminalReporter{Out: w}
}

// TerminalReporter draws a page counter that names the file being written and
// prints a size summary when the export finishes.
type TerminalReporter struct {
	Out io.Writer // defaults to os.Stderr

	bar   *progressbar.ProgressBar
	pages int
	bytes int
}

func (r *TerminalReporter) Start(pages int) {
	r.pages, r.bytes = 0, 0
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(writerOr(r.Out)),
		progressbar.OptionSetDescription("export"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Wrote(n int, rel string, size int) {
	r.pages = n
	r.bytes += size
	if r.bar != nil {
		r.bar.Describe("export " + rel)
		_ = r.bar.Set(n)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintf(writerOr(r.Out), "Exported %d pages, %s\n", r.pages, kilobytes(r.bytes))
}

// CIReporter prints one line per written page.
type CIReporter struct {
	Out   io.Writer // defaults to os.Stderr
	total int
	bytes int
}

func (r *CIReporter) out() io.Writer { return writerOr(r.Out) }

func (r *CIReporter) Start(pages int) {
	r.total, r.bytes = pages, 0
	fmt.Fprintf(r.out(), "export: %d pages\n", pages)
}

func (r *CIReporter) Wrote(n int, rel string, size int) {
	r.bytes += size
	fmt.Fprintf(r.out(), "export: [%d/%d] %s (%s)\n", n, r.total, rel, kilobytes(size))
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out(), "export: done, %s written\n", kilobytes(r.bytes))
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

func kilobytes(n int) string {
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
