package i18n

import (
	"sort"

	"github.com/srgjo27/epic_events/internal/core/domain"
)

// Resolve picks the text to display for lang. The alternate-language value is
// used only when it is present and non-empty, otherwise the primary value is
// returned (which may itself be empty).
func Resolve(lang domain.Language, text domain.LocalizedText) string {
	if lang == domain.AlternateLanguage && text.Secondary != nil && *text.Secondary != "" {
		return *text.Secondary
	}

	return text.Primary
}

// Translate looks up a static UI string. Unknown keys come back unchanged so a
// missing entry shows up on the page and in tests instead of rendering blank.
func Translate(lang domain.Language, key string) string {
	if table, ok := catalog[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}

	return key
}

// Translator binds Translate to one language, for use inside templates.
type Translator struct {
	Lang domain.Language
}

func (t Translator) T(key string) string {
	return Translate(t.Lang, key)
}

func (t Translator) Text(text domain.LocalizedText) string {
	return Resolve(t.Lang, text)
}

// MissingKeys reports, per language, the keys that some other language
// defines but this one does not.
func MissingKeys() map[domain.Language][]string {
	all := make(map[string]struct{})
	for _, table := range catalog {
		for k := range table {
			all[k] = struct{}{}
		}
	}

	missing := make(map[domain.Language][]string)
	for lang, table := range catalog {
		for k := range all {
			if _, ok := table[k]; !ok {
				missing[lang] = append(missing[lang], k)
			}
		}
		sort.Strings(missing[lang])
	}

	for lang, keys := range missing {
		if len(keys) == 0 {
			delete(missing, lang)
		}
	}

	return missing
}

func Languages() []domain.Language {
	return []domain.Language{domain.DefaultLanguage, domain.AlternateLanguage}
}
