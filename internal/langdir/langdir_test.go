package langdir

import (
	"strings"
	"testing"
)

func TestCanonicalizeKnownKeys(t *testing.T) {
	tests := []struct {
		token string
		want  Key
	}{
		{"english", "english"},
		{"English", "english"},
		{"JAPANESE", "japanese"},
		{"chinesesimplified", "chinesesimplified"},
		{"ChineseTraditional", "chinesetraditional"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Canonicalize(tt.token)
			if !ok {
				t.Fatalf("Canonicalize(%q) returned not found", tt.token)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeAliases(t *testing.T) {
	// Every alias must resolve to its key regardless of casing.
	for alias, want := range Aliases() {
		for _, token := range []string{alias, strings.ToUpper(alias)} {
			got, ok := Canonicalize(token)
			if !ok {
				t.Fatalf("Canonicalize(%q) returned not found", token)
			}
			if got != want {
				t.Errorf("Canonicalize(%q): got %q, want %q", token, got, want)
			}
		}
	}
}

func TestAliasesResolveToDirectoryKeys(t *testing.T) {
	for alias, key := range Aliases() {
		if !IsKey(key) {
			t.Errorf("alias %q resolves to %q which is not a directory key", alias, key)
		}
	}
}

func TestAliasesManyToOne(t *testing.T) {
	// The two Chinese short codes share a variant, as do ja/jp and ko/kr.
	pairs := [][2]string{{"chs", "zh-cn"}, {"cht", "zh-tw"}, {"ja", "jp"}, {"ko", "kr"}}
	for _, p := range pairs {
		a, okA := Canonicalize(p[0])
		b, okB := Canonicalize(p[1])
		if !okA || !okB {
			t.Fatalf("aliases %q/%q not found", p[0], p[1])
		}
		if a != b {
			t.Errorf("aliases %q and %q resolve to %q and %q, want same key", p[0], p[1], a, b)
		}
	}
}

func TestCanonicalizeUnknownToken(t *testing.T) {
	for _, token := range []string{"", "klingon", "en-US", "xx", "123"} {
		if got, ok := Canonicalize(token); ok {
			t.Errorf("Canonicalize(%q) = %q, want not found", token, got)
		}
	}
}

func TestDisplayForm(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{"english", "English"},
		{"chinesesimplified", "ChineseSimplified"},
		{"chinesetraditional", "ChineseTraditional"},
		{"japanese", "Japanese"},
	}
	for _, tt := range tests {
		if got := DisplayForm(tt.key); got != tt.want {
			t.Errorf("DisplayForm(%q): got %q, want %q", tt.key, got, tt.want)
		}
	}
	if got := DisplayForm("klingon"); got != "" {
		t.Errorf("DisplayForm of unknown key: got %q, want empty", got)
	}
}

func TestKeysSortedAndComplete(t *testing.T) {
	ks := Keys()
	if len(ks) != 15 {
		t.Fatalf("expected 15 languages, got %d", len(ks))
	}
	for i := 1; i < len(ks); i++ {
		if ks[i-1] >= ks[i] {
			t.Errorf("keys not sorted: %q before %q", ks[i-1], ks[i])
		}
	}
	for _, k := range ks {
		if DisplayForm(k) == "" {
			t.Errorf("key %q has empty display form", k)
		}
		if strings.ToLower(string(k)) != string(k) {
			t.Errorf("key %q is not lowercase", k)
		}
	}
}
