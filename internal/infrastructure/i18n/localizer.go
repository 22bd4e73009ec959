// Package i18n provides the compiled-in label catalog.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bnema/confirm/internal/application/port"
)

// Keys of the built-in catalog.
const (
	KeyCancelAction = "cancelAction"
	KeyOKAction     = "okAction"
)

var translations = map[string]map[language.Tag]string{
	KeyCancelAction: {
		language.English:           "Cancel",
		language.French:            "Annuler",
		language.German:            "Abbrechen",
		language.Spanish:           "Cancelar",
		language.Italian:           "Annulla",
		language.Portuguese:        "Cancelar",
		language.Dutch:             "Annuleren",
		language.Russian:           "Отмена",
		language.Japanese:          "キャンセル",
		language.SimplifiedChinese: "取消",
	},
	KeyOKAction: {
		language.English:           "OK",
		language.French:            "OK",
		language.German:            "OK",
		language.Spanish:           "Aceptar",
		language.Italian:           "OK",
		language.Portuguese:        "OK",
		language.Dutch:             "OK",
		language.Russian:           "ОК",
		language.Japanese:          "OK",
		language.SimplifiedChinese: "确定",
	},
}

// Localizer resolves catalog keys for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

var _ port.Localizer = (*Localizer)(nil)

// New returns a Localizer for locale, a BCP 47 tag or a POSIX locale such
// as fr_FR.UTF-8. An empty locale reads LC_ALL, LC_MESSAGES then LANG.
// Unsupported languages fall back to English.
func New(locale string) *Localizer {
	if strings.TrimSpace(locale) == "" {
		locale = envLocale()
	}

	cat := buildCatalog()
	supported := cat.Languages()
	matcher := language.NewMatcher(supported)

	tag := language.English
	if requested, ok := parseLocale(locale); ok {
		if _, idx, confidence := matcher.Match(requested); confidence != language.No {
			tag = supported[idx]
		}
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Localize returns the translated string for key, or "" for unknown keys.
func (l *Localizer) Localize(key string) string {
	if _, ok := translations[key]; !ok {
		return ""
	}
	return l.printer.Sprintf(key)
}

// Language reports the language the Localizer resolved to.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byLang := range translations {
		for tag, text := range byLang {
			// SetString only fails on malformed message syntax.
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}

func envLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// parseLocale accepts BCP 47 tags and POSIX locale names.
func parseLocale(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
