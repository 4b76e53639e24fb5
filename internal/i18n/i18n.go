// Package i18n provides localized UI strings.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLang is returned by Parse for unsupported language codes.
var ErrUnknownLang = errors.New("unknown language")

// Languages returns the supported language codes, default first.
func Languages() []Lang {
	out := make([]Lang, 0, len(ui))
	for l := range ui {
		if l != DefaultLang {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]Lang{DefaultLang}, out...)
}

// Name returns the language's own display name.
func (l Lang) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Next returns the following supported language, wrapping around.
func (l Lang) Next() Lang {
	langs := Languages()
	for i, candidate := range langs {
		if candidate == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return DefaultLang
}

// Translator looks up strings for one language.
type Translator func(key string) string

// T returns a translator for lang. Keys missing in lang fall back to the
// default language and then to the key itself.
func T(lang Lang) Translator {
	return func(key string) string {
		if s, ok := ui[lang][key]; ok && s != "" {
			return s
		}
		if s, ok := ui[DefaultLang][key]; ok {
			return s
		}
		return key
	}
}

// Parse accepts an exact supported code, case-insensitive, with "_" or "-".
func Parse(code string) (Lang, error) {
	normalized := Lang(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-"))
	if _, ok := ui[normalized]; ok {
		return normalized, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownLang, code)
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.BrazilianPortuguese,
})

var matchedLangs = []Lang{LangEN, LangPTBR}

// Match picks the closest supported language for a BCP 47 tag or a POSIX
// locale such as "pt_BR.UTF-8". Unmatched input yields DefaultLang.
func Match(locale string) Lang {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(language.Make(locale))
	if conf == language.No || idx < 0 || idx >= len(matchedLangs) {
		return DefaultLang
	}
	return matchedLangs[idx]
}
