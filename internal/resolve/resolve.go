// Package resolve turns an inbound request URL into the structured intent
// consumed by the upstream URL builder. The first path segment is ambiguous:
// it names either a language or a data category. The resolver applies a
// fixed precedence order — language match first, category fallback second,
// query override last — and normalizes the record id into a closed kind.
package resolve

import (
	"net/url"
	"strings"

	"github.com/loregate/loregate/internal/langdir"
)

// Reserved id tokens and the default branch.
const (
	IDIndex       = "index"
	IDAll         = "all"
	DefaultBranch = "main"
)

// Kind classifies the resolved id into one of the three upstream URL shapes.
type Kind int

const (
	// KindRecord is any id that is not a reserved token.
	KindRecord Kind = iota
	// KindIndex is the per-language category listing.
	KindIndex
	// KindBulk is the pre-gzipped full category archive.
	KindBulk
)

// Request is the resolved intent for a single inbound request. It is a pure
// function of the request URL and is never mutated after resolution.
type Request struct {
	Language langdir.Key
	Category string
	ID       string
	Kind     Kind
	Branch   string
}

// InvalidURLError reports a request that cannot be resolved: an empty path
// or a language that fails the final directory membership check.
type InvalidURLError struct {
	Reason string
}

func (e *InvalidURLError) Error() string {
	return e.Reason
}

// Resolve parses rawURL into a Request.
//
// Precedence order:
//  1. The first non-empty path segment is required; its absence is an
//     InvalidURLError.
//  2. If the first segment canonicalizes as a language, it is the language
//     and the category/id shift right by one. Otherwise it is the category
//     and the language defaults to english.
//  3. A missing id defaults to the reserved "index" token.
//  4. A canonicalizable "lang" (checked first) or "language" query value
//     overrides whatever language the path produced.
//  5. The "branch" query value defaults to "main".
func Resolve(rawURL string) (Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Request{}, &InvalidURLError{Reason: "Invalid URL Format"}
	}

	segs := splitSegments(u.Path)
	if len(segs) == 0 {
		return Request{}, &InvalidURLError{Reason: "Invalid URL Format"}
	}

	var (
		language langdir.Key
		category string
		id       string
	)
	if key, ok := langdir.Canonicalize(segs[0]); ok {
		language = key
		category = segAt(segs, 1)
		id = segAt(segs, 2)
	} else {
		language = langdir.KeyEnglish
		category = segs[0]
		id = segAt(segs, 1)
	}
	if id == "" {
		id = IDIndex
	}

	query := u.Query()
	if token := firstQueryValue(query, "lang", "language"); token != "" {
		if key, ok := langdir.Canonicalize(token); ok {
			language = key
		}
	}

	branch := query.Get("branch")
	if branch == "" {
		branch = DefaultBranch
	}

	// Always true by construction, asserted in case the directory and the
	// resolution paths above ever drift apart.
	if !langdir.IsKey(language) {
		return Request{}, &InvalidURLError{Reason: "Invalid Language"}
	}

	return Request{
		Language: language,
		Category: category,
		ID:       id,
		Kind:     kindOf(id),
		Branch:   branch,
	}, nil
}

// kindOf normalizes an id into the closed kind enumeration.
func kindOf(id string) Kind {
	switch id {
	case IDAll:
		return KindBulk
	case IDIndex:
		return KindIndex
	default:
		return KindRecord
	}
}

// splitSegments returns the non-empty segments of a URL path.
func splitSegments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func segAt(segs []string, i int) string {
	if i < len(segs) {
		return segs[i]
	}
	return ""
}

// firstQueryValue returns the first non-empty value among the named query
// parameters, checked in order.
func firstQueryValue(query url.Values, names ...string) string {
	for _, name := range names {
		if v := query.Get(name); v != "" {
			return v
		}
	}
	return ""
}
