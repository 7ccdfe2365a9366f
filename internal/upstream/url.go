// Package upstream builds the fixed-shape URLs of the published data
// repositories and fetches them. Three shapes exist, keyed on the resolved
// request kind: the per-language category index, the single record document,
// and the pre-gzipped bulk archive.
package upstream

import (
	"fmt"

	"github.com/loregate/loregate/internal/langdir"
	"github.com/loregate/loregate/internal/resolve"
)

// BuildURL maps a resolved request onto its upstream URL. Pure and total:
// an unknown category or branch yields a URL that 404s upstream, never a
// local error.
func BuildURL(dataBaseURL, distBaseURL string, req resolve.Request) string {
	switch req.Kind {
	case resolve.KindBulk:
		// Bulk archives are named by the lowercase language key.
		return fmt.Sprintf("%s/%s/data/gzips/%s-%s.min.json.gzip",
			distBaseURL, req.Branch, req.Language, req.Category)
	case resolve.KindIndex:
		return fmt.Sprintf("%s/%s/src/data/index/%s/%s.json",
			dataBaseURL, req.Branch, langdir.DisplayForm(req.Language), req.Category)
	default:
		return fmt.Sprintf("%s/%s/src/data/%s/%s/%s.json",
			dataBaseURL, req.Branch, langdir.DisplayForm(req.Language), req.Category, req.ID)
	}
}
