package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/i18n"
)

func strPtr(s string) *string {
	return &s
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		lang domain.Language
		text domain.LocalizedText
		want string
	}{
		{"default language uses primary", domain.LanguageEnglish, domain.NewLocalizedText("Racing", strPtr("பந்தயம்")), "Racing"},
		{"alternate language uses secondary", domain.LanguageTamil, domain.NewLocalizedText("Racing", strPtr("பந்தயம்")), "பந்தயம்"},
		{"alternate falls back when secondary is nil", domain.LanguageTamil, domain.NewLocalizedText("Racing", nil), "Racing"},
		{"alternate falls back when secondary is empty", domain.LanguageTamil, domain.NewLocalizedText("Racing", strPtr("")), "Racing"},
		{"absent primary resolves to empty", domain.LanguageEnglish, domain.LocalizedText{}, ""},
		{"absent primary and secondary in alternate", domain.LanguageTamil, domain.LocalizedText{}, ""},
		{"default language ignores secondary even if primary empty", domain.LanguageEnglish, domain.NewLocalizedText("", strPtr("பந்தயம்")), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.Resolve(tc.lang, tc.text))
		})
	}
}

func TestTranslate_KnownKey(t *testing.T) {
	assert.Equal(t, "Book Now", i18n.Translate(domain.LanguageEnglish, "nav.bookNow"))
	assert.Equal(t, "முகப்பு", i18n.Translate(domain.LanguageTamil, "nav.home"))
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "nav.nowhere", i18n.Translate(domain.LanguageEnglish, "nav.nowhere"))
	assert.Equal(t, "nav.nowhere", i18n.Translate(domain.LanguageTamil, "nav.nowhere"))
	assert.Equal(t, "nav.home", i18n.Translate(domain.Language("fr"), "nav.home"))
}

func TestCatalogIsComplete(t *testing.T) {
	assert.Empty(t, i18n.MissingKeys())
}

func TestCatalogHasNoBlankEntries(t *testing.T) {
	keys := []string{
		"nav.home", "nav.games", "nav.gallery", "nav.bookNow",
		"hero.title", "hero.subtitle",
		"booking.success", "booking.failure", "booking.selectGames", "booking.missingFields",
		"contact.title", "footer.rights",
	}

	for _, lang := range i18n.Languages() {
		for _, key := range keys {
			got := i18n.Translate(lang, key)
			assert.NotEmpty(t, got, "%s/%s", lang, key)
			assert.NotEqual(t, key, got, "%s/%s", lang, key)
		}
	}
}

func TestTranslator(t *testing.T) {
	tr := i18n.Translator{Lang: domain.LanguageTamil}

	assert.Equal(t, "English", tr.T("language.toggle"))
	assert.Equal(t, "Racing", tr.Text(domain.NewLocalizedText("Racing", nil)))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, domain.LanguageTamil, domain.ParseLanguage("ta"))
	assert.Equal(t, domain.LanguageEnglish, domain.ParseLanguage("en"))
	assert.Equal(t, domain.LanguageEnglish, domain.ParseLanguage("de"))
	assert.Equal(t, domain.LanguageEnglish, domain.LanguageTamil.Other())
	assert.Equal(t, domain.LanguageTamil, domain.LanguageEnglish.Other())
}
