// Package path splits and joins slash-separated strings. It never touches
// the filesystem.
package path

import (
	"strings"

	"github.com/emilianobovetti/grampa"
)

// Sep is the separator used by the package-level functions.
var Sep = defaultSep

// Path applies the helpers with an explicit separator. An empty Sep falls
// back to the package-level Sep.
type Path struct {
	Sep string
}

func (p Path) sep() string {
	if p.Sep == "" {
		return Sep
	}
	return p.Sep
}

// Basename returns the last separator-delimited element of s.
func (p Path) Basename(s string) string {
	parts := strings.Split(s, p.sep())
	return parts[len(parts)-1]
}

// Dirname returns s without its last element.
func (p Path) Dirname(s string) string {
	parts := strings.Split(s, p.sep())
	return strings.Join(parts[:len(parts)-1], p.sep())
}

// Join renders each element with grampa.Stringify and joins them with the
// separator. Nil, Undefined and holes render as empty elements.
func (p Path) Join(elems ...any) string {
	l := grampa.Slice(elems)
	parts := make([]string, len(l))
	for i, x := range l {
		switch grampa.KindOf(x) {
		case grampa.KindNull, grampa.KindUndefined:
			continue
		}
		if x == grampa.Hole {
			continue
		}
		parts[i] = grampa.Stringify(x)
	}
	return strings.Join(parts, p.sep())
}

// Basename is Path{}.Basename.
func Basename(s string) string { return Path{}.Basename(s) }

// Dirname is Path{}.Dirname.
func Dirname(s string) string { return Path{}.Dirname(s) }

// Join is Path{}.Join.
func Join(elems ...any) string { return Path{}.Join(elems...) }
