// Package langdir provides the static directory of languages published in
// the upstream data repository. Each language has a canonical lowercase key
// used in request paths and bulk-archive filenames, and a display-cased form
// used as the path segment inside the repository tree. A locale-alias table
// maps short ISO-style codes onto canonical keys.
package langdir

import (
	"sort"
	"strings"
)

// Key is a canonical lowercase language key, e.g. "chinesesimplified".
type Key string

// KeyEnglish is the default language when a request names none.
const KeyEnglish Key = "english"

// entry pairs a canonical key with its display-cased repository form.
type entry struct {
	key     Key
	display string
}

// byKey is the map-based index for O(1) display-form lookups.
var byKey map[Key]string

// byAlias maps lowercase locale aliases onto canonical keys.
var byAlias map[string]Key

// keys is the pre-built sorted slice returned by Keys().
var keys []Key

func init() {
	entries := directoryEntries()
	byKey = make(map[Key]string, len(entries))
	keys = make([]Key, len(entries))
	for i, e := range entries {
		byKey[e.key] = e.display
		keys[i] = e.key
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	byAlias = aliasEntries()
}

// Canonicalize maps an arbitrary language token onto a canonical key.
// Matching is case-insensitive; a direct key match wins over an alias match.
// The second return value is false when the token names no known language,
// which is not an error by itself.
func Canonicalize(token string) (Key, bool) {
	t := strings.ToLower(token)
	if _, ok := byKey[Key(t)]; ok {
		return Key(t), true
	}
	k, ok := byAlias[t]
	return k, ok
}

// IsKey reports whether k is a genuine member of the directory's key set.
func IsKey(k Key) bool {
	_, ok := byKey[k]
	return ok
}

// DisplayForm returns the display-cased repository path segment for a key,
// e.g. "chinesesimplified" → "ChineseSimplified". Unknown keys yield "".
func DisplayForm(k Key) string {
	return byKey[k]
}

// Keys returns a sorted copy of the canonical key set.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Aliases returns a copy of the locale-alias table.
func Aliases() map[string]Key {
	out := make(map[string]Key, len(byAlias))
	for a, k := range byAlias {
		out[a] = k
	}
	return out
}

// directoryEntries returns the full list of published languages. The display
// form must match the repository folder name exactly, including casing.
func directoryEntries() []entry {
	return []entry{
		{"chinesesimplified", "ChineseSimplified"},
		{"chinesetraditional", "ChineseTraditional"},
		{"english", "English"},
		{"french", "French"},
		{"german", "German"},
		{"indonesian", "Indonesian"},
		{"italian", "Italian"},
		{"japanese", "Japanese"},
		{"korean", "Korean"},
		{"portuguese", "Portuguese"},
		{"russian", "Russian"},
		{"spanish", "Spanish"},
		{"thai", "Thai"},
		{"turkish", "Turkish"},
		{"vietnamese", "Vietnamese"},
	}
}

// aliasEntries returns the locale-alias table. Aliases are many-to-one:
// several codes may resolve to the same canonical key.
func aliasEntries() map[string]Key {
	return map[string]Key{
		"chs":   "chinesesimplified",
		"zh-cn": "chinesesimplified",
		"cht":   "chinesetraditional",
		"zh-tw": "chinesetraditional",
		"en":    "english",
		"fr":    "french",
		"de":    "german",
		"id":    "indonesian",
		"it":    "italian",
		"ja":    "japanese",
		"jp":    "japanese",
		"ko":    "korean",
		"kr":    "korean",
		"pt":    "portuguese",
		"ru":    "russian",
		"es":    "spanish",
		"th":    "thai",
		"tr":    "turkish",
		"vi":    "vietnamese",
	}
}
