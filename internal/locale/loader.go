package locale

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed bundles/*.yaml
var embedded embed.FS

// bundlePattern matches bundle files anywhere under the content root. The
// file stem is the language code: fa.yaml, ar.yml, ...
const bundlePattern = "**/*.{yaml,yml}"

// Embedded loads the bundles compiled into the binary.
func Embedded() (*Store, error) {
	sub, err := fs.Sub(embedded, "bundles")
	if err != nil {
		return nil, fmt.Errorf("opening embedded bundles: %w", err)
	}
	return Load(sub)
}

// LoadDir loads bundles from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("accessing content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads one bundle per supported language from fsys. Every supported
// code must be present exactly once; files named after anything else are
// rejected.
func Load(fsys fs.FS) (*Store, error) {
	matches, err := doublestar.Glob(fsys, bundlePattern)
	if err != nil {
		return nil, fmt.Errorf("listing bundles: %w", err)
	}

	bundles := make(map[Code]Locale, len(Codes()))
	for _, name := range matches {
		stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
		code, err := ParseCode(stem)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", name, err)
		}
		if _, dup := bundles[code]; dup {
			return nil, fmt.Errorf("bundle %s: duplicate bundle for %q", name, code)
		}

		loc, err := decodeBundle(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", name, err)
		}
		loc.Code = code
		if err := loc.validate(); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", name, err)
		}
		bundles[code] = loc
	}

	for _, c := range Codes() {
		if _, ok := bundles[c]; !ok {
			return nil, fmt.Errorf("missing bundle for %q", c)
		}
	}

	return &Store{bundles: bundles}, nil
}

func decodeBundle(fsys fs.FS, name string) (Locale, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Locale{}, err
	}
	defer f.Close()

	var loc Locale
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&loc); err != nil {
		if errors.Is(err, io.EOF) {
			return Locale{}, errors.New("empty bundle")
		}
		return Locale{}, fmt.Errorf("decoding: %w", err)
	}
	return loc, nil
}

// validate checks the fields a page cannot render without. Icon categories
// are already checked while decoding.
func (l Locale) validate() error {
	if !l.Direction.Valid() {
		return fmt.Errorf("invalid direction %q: must be ltr or rtl", l.Direction)
	}
	for _, id := range []string{"home", "about", "skills", "projects", "contact"} {
		if l.Nav.Label(id) == "" {
			return fmt.Errorf("nav.%s is required", id)
		}
	}
	for i, s := range l.Skills.List {
		if s.Title == "" {
			return fmt.Errorf("skills.list[%d].title is required", i)
		}
		if !s.Icon.Valid() {
			return fmt.Errorf("skills.list[%d].icon is required", i)
		}
	}
	for i, p := range l.Projects.List {
		if p.Title == "" {
			return fmt.Errorf("projects.list[%d].title is required", i)
		}
		if !p.Icon.Valid() {
			return fmt.Errorf("projects.list[%d].icon is required", i)
		}
	}
	return nil
}
