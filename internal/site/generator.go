package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/progress"
	"github.com/mahmoudabadi/portfolio/internal/render"
	"github.com/mahmoudabadi/portfolio/internal/view"
)

// Generator writes a static snapshot of the portfolio: the initial page of
// every locale plus the client assets. Exported pages carry no session, so
// they render the initial state only.
type Generator struct {
	Store     *locale.Store
	Renderer  *render.Renderer
	Assets    fs.FS // served under /static/
	OutputDir string
	Default   locale.Code // written again as the root index.html
	Reporter  progress.Reporter
}

// Generate builds the site. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if g.Assets != nil {
		if err := copyFS(g.Assets, filepath.Join(g.OutputDir, "static")); err != nil {
			return 0, fmt.Errorf("writing static assets: %w", err)
		}
	}

	def := g.Default
	if def == "" {
		def = locale.Default
	}

	type page struct {
		code locale.Code
		rel  string
	}
	var pages []page
	for _, c := range locale.Codes() {
		pages = append(pages, page{c, path.Join(string(c), "index.html")})
	}
	pages = append(pages, page{def, "index.html"})

	if g.Reporter != nil {
		g.Reporter.Start(len(pages))
		defer g.Reporter.Finish()
	}
	for i, p := range pages {
		size, err := g.renderPage(p.code, p.rel)
		if err != nil {
			return i, fmt.Errorf("rendering %s: %w", p.rel, err)
		}
		if g.Reporter != nil {
			g.Reporter.Wrote(i+1, p.rel, size)
		}
	}
	return len(pages), nil
}

// renderPage writes the initial page of code to rel and returns its size.
func (g *Generator) renderPage(code locale.Code, rel string) (int, error) {
	ctrl := view.NewController(g.Store, code)

	var buf bytes.Buffer
	if err := g.Renderer.Page(&buf, ctrl, ""); err != nil {
		return 0, err
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	return buf.Len(), os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// copyFS writes every file of src below dst.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
