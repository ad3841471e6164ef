package routa

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Reverser keeps track of named path patterns and builds URLs from them, so
// links need not hardcode paths that routing already declares.
type Reverser struct {
	pats map[string][]patternSeg
}

// NewReverser inits the reverser.
func NewReverser() *Reverser {
	return &Reverser{pats: make(map[string][]patternSeg)}
}

// Reverse builds the URL for the named pattern, consuming one value per
// ":name" segment in order; a trailing ":name*" segment consumes all
// remaining values.
func (r *Reverser) Reverse(name string, vals ...string) (string, error) {
	segs, ok := r.pats[name]
	if !ok {
		return "", fmt.Errorf("no pattern named: %q, got: %v", name, lo.Keys(r.pats))
	}

	var parts []string

	for _, seg := range segs {
		switch seg.kind {
		case segRepeat:
			for _, val := range vals {
				parts = append(parts, url.PathEscape(val))
			}

			vals = nil
		case segParam:
			if len(vals) == 0 {
				return "", fmt.Errorf("pattern %q: no value left for parameter %q", name, seg.text)
			}

			parts = append(parts, url.PathEscape(vals[0]))
			vals = vals[1:]
		default:
			parts = append(parts, seg.text)
		}
	}

	if len(vals) > 0 {
		return "", fmt.Errorf("pattern %q: %d unused values", name, len(vals))
	}

	return "/" + strings.Join(parts, "/"), nil
}

// Named is a convenience method that panics if naming the pattern fails.
func (r *Reverser) Named(name, pattern string) string {
	pattern, err := r.NamedPattern(name, pattern)
	if err != nil {
		panic("routa: " + err.Error())
	}

	return pattern
}

// NamedPattern registers pattern under name while returning it as well, so
// registration can be inlined into a routing call.
func (r *Reverser) NamedPattern(name, pattern string) (string, error) {
	if _, exists := r.pats[name]; exists {
		return pattern, fmt.Errorf("pattern with name %q already exists", name)
	}

	r.pats[name] = compileSegments(pattern)

	return pattern, nil
}
