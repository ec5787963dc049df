// Package i18n provides localized message lookup for host-facing strings.
// Catalogs are TOML files embedded at build time, one per locale, selected
// with a language matcher so partial matches (e.g. "de" against "de-DE")
// resolve sensibly.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// fallbackLocale is used when no preferred language matches a catalog.
// It is listed first so the matcher treats it as the default.
const fallbackLocale = "en-US"

// Translator resolves message ids against one locale's catalog.
type Translator struct {
	tag      language.Tag
	messages map[string]string
}

// Supported returns the tags of every embedded catalog, fallback first.
//
// Returns:
//   - []language.Tag: the supported locales
//   - error: error when an embedded catalog has an unparseable name
func Supported() ([]language.Tag, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	tags := []language.Tag{language.MustParse(fallbackLocale)}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".toml")
		if name == fallbackLocale {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %q: %w", entry.Name(), err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// New creates a Translator for the best match among the preferred languages.
// Falls back to en-US when nothing matches.
//
// Parameters:
//   - preferred: BCP 47 language tags in preference order (e.g. "de-DE")
//
// Returns:
//   - *Translator: the translator for the matched locale
//   - error: error when catalog loading or parsing fails
func New(preferred ...string) (*Translator, error) {
	supported, err := Supported()
	if err != nil {
		return nil, err
	}
	matcher := language.NewMatcher(supported)

	preferredTags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			preferredTags = append(preferredTags, tag)
		}
	}
	_, index, _ := matcher.Match(preferredTags...)
	matched := supported[index]

	data, err := localeFS.ReadFile(path.Join("locales", matched.String()+".toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog for %s: %w", matched, err)
	}

	messages := make(map[string]string)
	if err := toml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse catalog for %s: %w", matched, err)
	}

	return &Translator{tag: matched, messages: messages}, nil
}

// Tag returns the locale this translator resolved to.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Format looks up a message by id and substitutes {name} placeholders from
// args. An unknown id returns the id itself so missing translations stay
// visible instead of failing.
//
// Parameters:
//   - id: the message id
//   - args: placeholder values, keyed by placeholder name (may be nil)
//
// Returns:
//   - string: the formatted message
func (t *Translator) Format(id string, args map[string]string) string {
	message, ok := t.messages[id]
	if !ok {
		return id
	}
	for name, value := range args {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}
	return message
}
