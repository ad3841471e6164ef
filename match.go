package routa

import (
	"net/url"
	"strings"
)

// Params holds the named values captured while matching a pathname, keyed by
// parameter name. Single-segment captures hold one value, repeatable captures
// hold one value per delimited piece.
type Params map[string][]string

// Get returns the first captured value for name, or "" when absent.
func (p Params) Get(name string) string {
	if vs := p[name]; len(vs) > 0 {
		return vs[0]
	}

	return ""
}

// Values returns all captured values for name.
func (p Params) Values(name string) []string { return p[name] }

// Has reports whether a capture for name exists.
func (p Params) Has(name string) bool { _, ok := p[name]; return ok }

// MatchOptions controls how a compiled pattern matches pathnames.
type MatchOptions struct {
	// Prefix makes the matcher accept any pathname that starts with the
	// pattern, leaving trailing segments unmatched. The default anchors the
	// pattern to the end of the pathname.
	Prefix bool

	// CaseSensitive disables the default case-insensitive comparison of
	// literal segments.
	CaseSensitive bool

	// StrictSlash requires the pathname's trailing slash to match the
	// pattern exactly. The default tolerates one trailing slash either way.
	StrictSlash bool

	// Delimiter splits the remainder captured by a repeatable segment into
	// its sequence of values. Defaults to "/".
	Delimiter string
}

// Matcher reports whether a pathname structurally matches a compiled pattern
// and returns the captured parameters. A malformed percent-escape in a
// captured segment is a hard failure carrying [CodeBadRequest], not a
// no-match: a broken escape means a broken client, not a different route.
type Matcher func(pathname string) (Params, bool, error)

const (
	segLiteral = iota
	segParam
	segRepeat
)

type patternSeg struct {
	kind int
	text string // literal text or parameter name
}

// CompilePattern compiles a path pattern into a [Matcher]. Patterns consist
// of slash-separated literal segments, single-capture ":name" segments, and
// a final repeatable ":name*" segment capturing everything that remains.
// Compilation panics when a repeatable segment is not last; patterns come
// from code, not from clients.
func CompilePattern(pattern string, opts MatchOptions) Matcher {
	if opts.Delimiter == "" {
		opts.Delimiter = "/"
	}

	segs := compileSegments(pattern)
	wantTrailing := len(pattern) > 1 && strings.HasSuffix(pattern, "/")

	return func(pathname string) (Params, bool, error) {
		if opts.StrictSlash && !opts.Prefix {
			gotTrailing := len(pathname) > 1 && strings.HasSuffix(pathname, "/")
			if gotTrailing != wantTrailing {
				return nil, false, nil
			}
		}

		return matchSegments(segs, pathname, opts)
	}
}

func compileSegments(pattern string) []patternSeg {
	var segs []patternSeg

	for _, raw := range splitPath(pattern) {
		switch {
		case strings.HasPrefix(raw, ":") && strings.HasSuffix(raw, "*"):
			segs = append(segs, patternSeg{segRepeat, raw[1 : len(raw)-1]})
		case strings.HasPrefix(raw, ":"):
			segs = append(segs, patternSeg{segParam, raw[1:]})
		default:
			segs = append(segs, patternSeg{segLiteral, raw})
		}
	}

	for i, seg := range segs {
		if seg.kind == segRepeat && i != len(segs)-1 {
			panic("routa: repeatable segment must be the last pattern segment")
		}
	}

	return segs
}

func matchSegments(segs []patternSeg, pathname string, opts MatchOptions) (Params, bool, error) {
	parts := splitPath(pathname)
	params := Params{}

	for i, seg := range segs {
		switch seg.kind {
		case segRepeat:
			rest := parts[i:]
			if len(rest) == 0 {
				// unmatched repeatable capture is omitted, not empty
				return params, true, nil
			}

			raw := strings.Join(rest, "/")
			vals, err := decodePieces(strings.Split(raw, opts.Delimiter))
			if err != nil {
				return nil, false, err
			}

			params[seg.text] = vals

			return params, true, nil

		case segParam:
			if i >= len(parts) || parts[i] == "" {
				return nil, false, nil
			}

			val, err := decodeSegment(parts[i])
			if err != nil {
				return nil, false, err
			}

			params[seg.text] = []string{val}

		default:
			if i >= len(parts) || !literalEqual(seg.text, parts[i], opts.CaseSensitive) {
				return nil, false, nil
			}
		}
	}

	if !opts.Prefix && len(parts) > len(segs) {
		return nil, false, nil
	}

	return params, true, nil
}

// decodeSegment percent-decodes one captured raw segment.
func decodeSegment(raw string) (string, error) {
	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", Errorf(CodeBadRequest, "malformed path segment %q", raw)
	}

	return val, nil
}

func decodePieces(raw []string) ([]string, error) {
	vals := make([]string, 0, len(raw))
	for _, piece := range raw {
		val, err := decodeSegment(piece)
		if err != nil {
			return nil, err
		}

		vals = append(vals, val)
	}

	return vals, nil
}

func literalEqual(want, got string, caseSensitive bool) bool {
	if caseSensitive {
		return want == got
	}

	return strings.EqualFold(want, got)
}

// splitPath splits on "/" while dropping empty leading/trailing segments so
// that "/a/b", "a/b" and "/a/b/" segment identically (the trailing slash is
// optional unless StrictSlash re-checks it).
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}

	return strings.Split(p, "/")
}
