package server

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/loregate/loregate/internal/langdir"
)

// HelpPayload describes the request surface: valid languages, locale
// aliases, known categories, and example URLs. Built once at server
// construction and shared read-only across all requests.
type HelpPayload struct {
	Languages     []langdir.Key          `json:"languages"`
	LocaleAliases map[string]langdir.Key `json:"localeAliases"`
	Categories    []string               `json:"categories"`
	Examples      []string               `json:"examples"`
}

// categories lists the folders published in the data repository. Requests
// are not validated against this list; it exists for the help payload only,
// and an unknown category simply 404s upstream.
var categories = []string{
	"achievements",
	"animals",
	"artifacts",
	"characters",
	"constellations",
	"domains",
	"enemies",
	"foods",
	"geographies",
	"materials",
	"namecards",
	"outfits",
	"talents",
	"weapons",
	"windgliders",
}

var examples = []string{
	"/artifacts",
	"/artifacts/adventurer",
	"/japanese/artifacts/adventurer",
	"/artifacts/adventurer?lang=ja",
	"/weapons/all",
	"/characters/index?branch=v4.2",
}

func buildHelp() HelpPayload {
	return HelpPayload{
		Languages:     langdir.Keys(),
		LocaleAliases: langdir.Aliases(),
		Categories:    categories,
		Examples:      examples,
	}
}

// writeHelp renders the root help page: JSON by default, an HTML listing
// when the request's Content-Type header asks for text/html.
func (s *Server) writeHelp(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, s.helpHTML()); err != nil {
			logrus.WithError(err).Error("[Gateway] failed to write help page")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.help); err != nil {
		logrus.WithError(err).Error("[Gateway] failed to write help payload")
	}
}

// helpHTML renders the help payload as a minimal HTML listing.
func (s *Server) helpHTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>loregate</title></head>\n<body>\n")
	b.WriteString("<h1>loregate</h1>\n")
	b.WriteString("<p>Path shapes: /&lt;category&gt;, /&lt;category&gt;/&lt;id&gt;, /&lt;language&gt;/&lt;category&gt;, /&lt;language&gt;/&lt;category&gt;/&lt;id&gt;</p>\n")
	b.WriteString("<p>Reserved ids: <code>index</code> (listing), <code>all</code> (bulk archive). Query: <code>lang</code>|<code>language</code>, <code>branch</code>.</p>\n")

	b.WriteString("<h2>Languages</h2>\n<ul>\n")
	for _, k := range s.help.Languages {
		fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(string(k)))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Locale aliases</h2>\n<ul>\n")
	aliases := make([]string, 0, len(s.help.LocaleAliases))
	for a := range s.help.LocaleAliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		fmt.Fprintf(&b, "<li>%s &rarr; %s</li>\n",
			html.EscapeString(a), html.EscapeString(string(s.help.LocaleAliases[a])))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Categories</h2>\n<ul>\n")
	for _, c := range s.help.Categories {
		fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(c))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Examples</h2>\n<ul>\n")
	for _, e := range s.help.Examples {
		escaped := html.EscapeString(e)
		fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>\n", escaped, escaped)
	}
	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}
