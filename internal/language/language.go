// Package language normalizes free-form language identifiers to a canonical
// form. Callers may pass an ISO 639-1 code ("es"), an English name
// ("Spanish"), a native name ("español"), or a common three-letter
// abbreviation ("spa"); Code and Name map all of these to the canonical code
// and English name respectively.
//
// The rule for the rest of the application: cache keys always use the
// canonical code, prompt templates always receive the full English name.
package language

import "strings"

// entry describes one supported language: its canonical ISO 639-1 code, its
// English name, and every alias that should resolve to it.
type entry struct {
	code    string
	name    string
	aliases []string
}

var entries = []entry{
	{"es", "Spanish", []string{"spa", "español", "espanol", "castilian", "castellano"}},
	{"en", "English", []string{"eng"}},
	{"fr", "French", []string{"fra", "français", "francais"}},
	{"de", "German", []string{"deu", "ger", "deutsch"}},
	{"it", "Italian", []string{"ita", "italiano"}},
	{"pt", "Portuguese", []string{"por", "português", "portugues"}},
	{"ja", "Japanese", []string{"jpn", "日本語", "nihongo"}},
	{"zh", "Chinese", []string{"cmn", "chn", "中文", "mandarin"}},
	{"ko", "Korean", []string{"kor", "한국어", "hangul"}},
	{"ru", "Russian", []string{"rus", "русский"}},
	{"ar", "Arabic", []string{"ara", "العربية"}},
	{"nl", "Dutch", []string{"nld", "nederlands"}},
	{"sv", "Swedish", []string{"swe", "svenska"}},
	{"no", "Norwegian", []string{"nor", "norsk"}},
	{"da", "Danish", []string{"dan", "dansk"}},
	{"pl", "Polish", []string{"pol", "polski"}},
	{"cs", "Czech", []string{"ces", "čeština", "cestina"}},
	{"hu", "Hungarian", []string{"hun", "magyar"}},
	{"fi", "Finnish", []string{"fin", "suomi"}},
	{"tr", "Turkish", []string{"tur", "türkçe", "turkce"}},
	{"el", "Greek", []string{"ell", "ελληνικά", "ellinika"}},
	{"he", "Hebrew", []string{"heb", "עברית"}},
	{"hi", "Hindi", []string{"hin", "हिन्दी"}},
	{"th", "Thai", []string{"tha", "ไทย"}},
	{"vi", "Vietnamese", []string{"vie", "tiếng việt", "tieng viet"}},
}

// byAlias maps every lowercased code, name, and alias to its entry.
var byAlias = buildIndex()

func buildIndex() map[string]entry {
	index := make(map[string]entry)
	for _, e := range entries {
		index[e.code] = e
		index[strings.ToLower(e.name)] = e
		for _, alias := range e.aliases {
			index[strings.ToLower(alias)] = e
		}
	}
	return index
}

// lookup resolves input to a known entry. The second return value reports
// whether the input matched.
func lookup(input string) (entry, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return entry{}, false
	}
	e, ok := byAlias[cleaned]
	return e, ok
}

// Code returns the canonical ISO 639-1 code for the given language
// identifier. Unrecognized input is returned unchanged so that callers
// degrade gracefully rather than failing on an unsupported language.
func Code(input string) string {
	if e, ok := lookup(input); ok {
		return e.code
	}
	return input
}

// Name returns the full English name for the given language identifier.
// Unrecognized input is returned unchanged.
func Name(input string) string {
	if e, ok := lookup(input); ok {
		return e.name
	}
	return input
}

// Known reports whether the input resolves to a supported language.
func Known(input string) bool {
	_, ok := lookup(input)
	return ok
}
