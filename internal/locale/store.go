package locale

import "fmt"

// Store is the immutable table of locale bundles. It is built once by Load
// and only read afterwards, so it is safe for concurrent use.
type Store struct {
	bundles map[Code]Locale
}

// Get returns the bundle for code. The set of codes is closed; asking for
// anything else is a programming error and panics. Use Lookup for untrusted
// input.
func (s *Store) Get(code Code) Locale {
	l, ok := s.bundles[code]
	if !ok {
		panic(fmt.Sprintf("locale: unsupported language %q", code))
	}
	return l.clone()
}

// Lookup returns the bundle for code and whether it exists.
func (s *Store) Lookup(code Code) (Locale, bool) {
	l, ok := s.bundles[code]
	if !ok {
		return Locale{}, false
	}
	return l.clone(), true
}

// All returns every bundle in canonical code order.
func (s *Store) All() []Locale {
	out := make([]Locale, 0, len(s.bundles))
	for _, c := range Codes() {
		if l, ok := s.bundles[c]; ok {
			out = append(out, l.clone())
		}
	}
	return out
}
