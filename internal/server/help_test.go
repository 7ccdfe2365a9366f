package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRootHelpJSON(t *testing.T) {
	s := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for the root help page")
	}))

	rec := doGet(s, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var help HelpPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &help); err != nil {
		t.Fatalf("unmarshal help payload: %v", err)
	}
	if len(help.Languages) != 15 {
		t.Errorf("languages: got %d, want 15", len(help.Languages))
	}
	if help.LocaleAliases["ja"] != "japanese" {
		t.Errorf("alias ja: got %q, want japanese", help.LocaleAliases["ja"])
	}
	if len(help.Categories) == 0 || len(help.Examples) == 0 {
		t.Error("help payload missing categories or examples")
	}
}

func TestRootHelpHTML(t *testing.T) {
	s := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for the root help page")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Content-Type", "text/html")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q, want text/html", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"<h1>loregate</h1>", "japanese", "artifacts", "zh-cn"} {
		if !strings.Contains(body, want) {
			t.Errorf("help page missing %q", want)
		}
	}
}

func TestHelpPayloadIsRequestIndependent(t *testing.T) {
	s := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := doGet(s, "/").Body.String()
	second := doGet(s, "/").Body.String()
	if first != second {
		t.Error("help payload differs between requests")
	}
}
