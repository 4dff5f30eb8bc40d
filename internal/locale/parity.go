package locale

import (
	"fmt"
	"slices"
	"strings"
)

// ParityError lists every structural difference found between bundles.
type ParityError struct {
	Problems []string
}

func (e *ParityError) Error() string {
	return fmt.Sprintf("locale bundles diverge (%d problems):\n  %s",
		len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// CheckParity verifies that every bundle has the same shape as the default
// bundle: same populated sections, same number of skills and projects, and
// at each index the same icon category and number of sub-projects. Index i
// must mean the same skill or project in every language.
func CheckParity(s *Store) error {
	ref, ok := s.bundles[Default]
	if !ok {
		return &ParityError{Problems: []string{fmt.Sprintf("missing reference bundle %q", Default)}}
	}

	var problems []string
	add := func(c Code, format string, args ...any) {
		problems = append(problems, fmt.Sprintf("%s: ", c)+fmt.Sprintf(format, args...))
	}

	for _, c := range Codes() {
		if c == Default {
			continue
		}
		l, ok := s.bundles[c]
		if !ok {
			add(c, "bundle missing")
			continue
		}

		if got, want := l.SectionKeys(), ref.SectionKeys(); !slices.Equal(got, want) {
			add(c, "sections %v, want %v", got, want)
		}

		if got, want := len(l.Skills.List), len(ref.Skills.List); got != want {
			add(c, "skills.list has %d entries, want %d", got, want)
		}
		for i := 0; i < min(len(l.Skills.List), len(ref.Skills.List)); i++ {
			got, want := l.Skills.List[i], ref.Skills.List[i]
			if got.Icon != want.Icon {
				add(c, "skills.list[%d].icon is %q, want %q", i, got.Icon, want.Icon)
			}
			if len(got.Projects) != len(want.Projects) {
				add(c, "skills.list[%d].projects has %d entries, want %d", i, len(got.Projects), len(want.Projects))
			}
		}

		if got, want := len(l.Projects.List), len(ref.Projects.List); got != want {
			add(c, "projects.list has %d entries, want %d", got, want)
		}
		for i := 0; i < min(len(l.Projects.List), len(ref.Projects.List)); i++ {
			got, want := l.Projects.List[i], ref.Projects.List[i]
			if got.Icon != want.Icon {
				add(c, "projects.list[%d].icon is %q, want %q", i, got.Icon, want.Icon)
			}
		}
	}

	if len(problems) > 0 {
		return &ParityError{Problems: problems}
	}
	return nil
}
