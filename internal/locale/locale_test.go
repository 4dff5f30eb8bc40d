package locale

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mahmoudabadi/portfolio/internal/icon"
)

func embeddedStore(t *testing.T) *Store {
	t.Helper()
	s, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	return s
}

func TestEmbeddedBundlesLoad(t *testing.T) {
	s := embeddedStore(t)
	for _, c := range Codes() {
		l := s.Get(c)
		if l.Code != c {
			t.Errorf("Get(%q).Code = %q", c, l.Code)
		}
	}
}

func TestSectionKeysIdentical(t *testing.T) {
	s := embeddedStore(t)
	want := []string{"nav", "hero", "about", "skills", "projects", "contact"}
	for _, c := range Codes() {
		if got := s.Get(c).SectionKeys(); !slices.Equal(got, want) {
			t.Errorf("%s: sections = %v, want %v", c, got, want)
		}
	}
}

func TestListLengthsMatch(t *testing.T) {
	s := embeddedStore(t)
	ref := s.Get(Persian)
	for _, c := range Codes() {
		l := s.Get(c)
		if len(l.Skills.List) != len(ref.Skills.List) {
			t.Errorf("%s: %d skills, want %d", c, len(l.Skills.List), len(ref.Skills.List))
		}
		if len(l.Projects.List) != len(ref.Projects.List) {
			t.Errorf("%s: %d projects, want %d", c, len(l.Projects.List), len(ref.Projects.List))
		}
	}
	if err := CheckParity(s); err != nil {
		t.Errorf("CheckParity: %v", err)
	}
}

func TestIconCategoriesInEnumerations(t *testing.T) {
	s := embeddedStore(t)
	for _, l := range s.All() {
		for i, sk := range l.Skills.List {
			if !slices.Contains(icon.Skills(), sk.Icon) {
				t.Errorf("%s skills[%d]: icon %q not in skill set", l.Code, i, sk.Icon)
			}
		}
		for i, p := range l.Projects.List {
			if !slices.Contains(icon.Projects(), p.Icon) {
				t.Errorf("%s projects[%d]: icon %q not in project set", l.Code, i, p.Icon)
			}
		}
	}
}

func TestDirections(t *testing.T) {
	s := embeddedStore(t)
	tests := map[Code]Direction{Persian: RTL, Arabic: RTL, English: LTR}
	for c, want := range tests {
		if got := s.Get(c).Direction; got != want {
			t.Errorf("%s direction = %q, want %q", c, got, want)
		}
	}
}

func TestEnglishNavLabels(t *testing.T) {
	nav := embeddedStore(t).Get(English).Nav
	want := []string{"Home", "About", "Skills", "Projects", "Contact"}
	got := []string{nav.Home, nav.About, nav.Skills, nav.Projects, nav.Contact}
	if !slices.Equal(got, want) {
		t.Errorf("nav = %v, want %v", got, want)
	}
}

func TestEnglishElectronicsSkill(t *testing.T) {
	sk := embeddedStore(t).Get(English).Skills.List[3]
	if sk.Title != "Electronics (Arduino, ESP)" {
		t.Errorf("title = %q", sk.Title)
	}
	if sk.Icon != icon.SkillElectronics {
		t.Errorf("icon = %q", sk.Icon)
	}
	if len(sk.Projects) != 2 || sk.Projects[0].Title != "Smart Home" || sk.Projects[1].Title != "Temp Monitoring" {
		t.Errorf("projects = %+v", sk.Projects)
	}
}

func TestGetPanicsOnUnsupported(t *testing.T) {
	s := embeddedStore(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported code")
		}
	}()
	s.Get(Code("de"))
}

func TestLookup(t *testing.T) {
	s := embeddedStore(t)
	if _, ok := s.Lookup(Code("de")); ok {
		t.Error("Lookup(de) should fail")
	}
	if l, ok := s.Lookup(Arabic); !ok || l.Code != Arabic {
		t.Errorf("Lookup(ar) = %v, %v", l.Code, ok)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := embeddedStore(t)
	l := s.Get(English)
	l.Skills.List[0].Title = "changed"
	l.Skills.List[0].Projects[0].Title = "changed"
	l.Projects.List[0].Title = "changed"

	again := s.Get(English)
	if again.Skills.List[0].Title == "changed" || again.Skills.List[0].Projects[0].Title == "changed" {
		t.Error("mutating a returned skill leaked into the store")
	}
	if again.Projects.List[0].Title == "changed" {
		t.Error("mutating a returned project leaked into the store")
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    Code
		wantErr bool
	}{
		{"fa", Persian, false},
		{" EN ", English, false},
		{"ar", Arabic, false},
		{"de", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedLanguage) {
				t.Errorf("ParseCode(%q): expected ErrUnsupportedLanguage, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestProjectTags(t *testing.T) {
	p := Project{Tech: "C++, Arduino,  ESP8266 ,,"}
	want := []string{"C++", "Arduino", "ESP8266"}
	if got := p.Tags(); !slices.Equal(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
	if got := (Project{}).Tags(); len(got) != 0 {
		t.Errorf("empty tech should give no tags, got %v", got)
	}
}

func TestNativeNames(t *testing.T) {
	if English.NativeName() != "English" || Persian.NativeName() != "فارسی" || Arabic.NativeName() != "العربية" {
		t.Error("unexpected native names")
	}
}

// bundle builds a minimal valid bundle with the given skill and project icons.
func bundle(dir string, skills []string, projects []string) string {
	var b strings.Builder
	b.WriteString("direction: " + dir + "\n")
	b.WriteString("nav: {home: h, about: a, skills: s, projects: p, contact: c}\n")
	b.WriteString("hero: {name: n}\n")
	b.WriteString("about: {title: t}\n")
	b.WriteString("skills:\n  title: s\n  list:\n")
	for _, s := range skills {
		b.WriteString("    - {title: x, icon: " + s + "}\n")
	}
	b.WriteString("projects:\n  title: p\n  list:\n")
	for _, p := range projects {
		b.WriteString("    - {title: y, tech: 'Go, YAML', icon: " + p + "}\n")
	}
	b.WriteString("contact: {title: c}\n")
	return b.String()
}

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadRejectsUnknownIcon(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("rtl", []string{"painting"}, nil),
		"ar.yaml": bundle("rtl", []string{"quran"}, nil),
		"en.yaml": bundle("ltr", []string{"quran"}, nil),
	})
	_, err := Load(fsys)
	if !errors.Is(err, icon.ErrUnknown) {
		t.Fatalf("expected icon.ErrUnknown, got %v", err)
	}
}

func TestLoadRejectsMissingBundle(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("rtl", nil, nil),
		"en.yaml": bundle("ltr", nil, nil),
	})
	_, err := Load(fsys)
	if err == nil || !strings.Contains(err.Error(), `"ar"`) {
		t.Fatalf("expected missing ar bundle error, got %v", err)
	}
}

func TestLoadRejectsUnknownCode(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("rtl", nil, nil),
		"ar.yaml": bundle("rtl", nil, nil),
		"en.yaml": bundle("ltr", nil, nil),
		"de.yaml": bundle("ltr", nil, nil),
	})
	if _, err := Load(fsys); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestLoadRejectsDuplicate(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml":       bundle("rtl", nil, nil),
		"nested/fa.yml": bundle("rtl", nil, nil),
		"ar.yaml":       bundle("rtl", nil, nil),
		"en.yaml":       bundle("ltr", nil, nil),
	})
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadRejectsBadDirection(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("up", nil, nil),
		"ar.yaml": bundle("rtl", nil, nil),
		"en.yaml": bundle("ltr", nil, nil),
	})
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "direction") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("rtl", nil, nil) + "footer: {text: x}\n",
		"ar.yaml": bundle("rtl", nil, nil),
		"en.yaml": bundle("ltr", nil, nil),
	})
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestCheckParityReportsDivergence(t *testing.T) {
	fsys := mapFS(map[string]string{
		"fa.yaml": bundle("rtl", []string{"quran", "mech"}, []string{"bot"}),
		"ar.yaml": bundle("rtl", []string{"quran"}, []string{"bot"}),
		"en.yaml": bundle("ltr", []string{"quran", "robotics"}, []string{"home"}),
	})
	s, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	err = CheckParity(s)
	var perr *ParityError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParityError, got %v", err)
	}
	joined := strings.Join(perr.Problems, "\n")
	for _, want := range []string{
		"ar: skills.list has 1 entries, want 2",
		`en: skills.list[1].icon is "robotics", want "mech"`,
		`en: projects.list[0].icon is "home", want "bot"`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing problem %q in:\n%s", want, joined)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"fa.yaml": bundle("rtl", []string{"quran"}, []string{"bot"}),
		"ar.yaml": bundle("rtl", []string{"quran"}, []string{"bot"}),
		"en.yml":  bundle("ltr", []string{"quran"}, []string{"bot"}),
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := s.Get(English).Projects.List[0].Tags(); !slices.Equal(got, []string{"Go", "YAML"}) {
		t.Errorf("tags = %v", got)
	}

	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}
