package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(2)
	r.Wrote(1, "fa/index.html", 2048)
	r.Wrote(2, "en/index.html", 1024)
	r.Finish()

	want := "export: 2 pages\n" +
		"export: [1/2] fa/index.html (2.0 KB)\n" +
		"export: [2/2] en/index.html (1.0 KB)\n" +
		"export: done, 3.0 KB written\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTerminalReporterSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}

	r.Start(1)
	r.Wrote(1, "index.html", 512)
	r.Finish()

	if !strings.Contains(buf.String(), "Exported 1 pages, 0.5 KB") {
		t.Errorf("summary missing from %q", buf.String())
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	var buf bytes.Buffer
	r, ok := NewReporter(&buf).(*CIReporter)
	if !ok {
		t.Fatal("expected CIReporter when CI is set")
	}
	if r.Out != &buf {
		t.Error("CIReporter should write to the given writer")
	}
}
