package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale. Every message key must
// exist here; other locales translate a subset or all of them.
const BaseLocale = "en-US"

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the transcript messages of every shipped locale,
// registered with x/text so printers can format them.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*.yaml
var embeddedLocaleFS embed.FS

// Load reads the locale files embedded in this package.
func Load() (*Bundle, error) {
	return LoadFromFS(embeddedLocaleFS)
}

// LoadFromFS reads locale files from fsys, validates them against the
// base locale and registers every message with x/text.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", path, err)
		}
		var lf localeFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", path, err)
		}
		if err := b.add(path, lf); err != nil {
			return nil, err
		}
	}

	base, ok := b.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	for locale, msgs := range b.locales {
		for key := range msgs {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("locale %s: key %q does not exist in %s", locale, key, BaseLocale)
			}
		}
	}

	if err := b.register(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(path string, lf localeFile) error {
	locale := strings.TrimSpace(lf.Locale)
	if locale == "" {
		return fmt.Errorf("locale file %s: locale is required", path)
	}
	fromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if locale != fromPath {
		return fmt.Errorf("locale file %s: locale %q must match the filename", path, locale)
	}
	if len(lf.Messages) == 0 {
		return fmt.Errorf("locale file %s: messages map is required", path)
	}
	b.locales[locale] = lf.Messages
	return nil
}

func (b *Bundle) register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		msgs := b.locales[locale]
		keys := make([]string, 0, len(msgs))
		for key := range msgs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, msgs[key]); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale shipped with the binary.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the available locale ids, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Printer returns a message printer for the locale, falling back to the
// base locale for anything the bundle does not carry.
func (b *Bundle) Printer(locale string) *message.Printer {
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}
