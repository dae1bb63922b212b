// Package i18n renders localized messages for issue codes.
//
// Locale tables are registrable at runtime. Translation consults the active
// locale first, falls back to the default locale's table when the active
// locale lacks the code or is unregistered, and falls back further to a
// generic "Validation error: {code}" string. Registering or replacing a
// table never affects issues already constructed.
package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is the seed locale; its table is the terminal lookup before
// the generic fallback.
const DefaultLocale = "en"

// Renderer produces a message for one code given the issue's parameters.
// The params map may be nil.
type Renderer func(params map[string]any) string

var (
	mu      sync.RWMutex
	names   []string // registered locale names, default first
	tags    []language.Tag
	tables  map[string]map[string]Renderer
	matcher language.Matcher
	active  language.Tag
)

func init() { reset() }

func reset() {
	names = []string{DefaultLocale}
	tags = []language.Tag{language.English}
	tables = map[string]map[string]Renderer{DefaultLocale: defaultTable()}
	matcher = language.NewMatcher(tags)
	active = language.English
}

// Reset restores the default-locale-only registry and the default active
// locale. Intended for host program setup and tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reset()
}

// Register adds or replaces a locale's translation table. The table is
// copied; later mutation by the caller has no effect.
func Register(locale string, table map[string]Renderer) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("i18n: invalid locale %q: %w", locale, err)
	}
	name := tag.String()
	cp := make(map[string]Renderer, len(table))
	for code, r := range table {
		cp[code] = r
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := tables[name]; !ok {
		names = append(names, name)
		tags = append(tags, tag)
		matcher = language.NewMatcher(tags)
	}
	tables[name] = cp
	return nil
}

// SetLocale switches the active locale. Unregistered locales are accepted;
// translation then resolves through the default locale.
func SetLocale(locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("i18n: invalid locale %q: %w", locale, err)
	}
	mu.Lock()
	active = tag
	mu.Unlock()
	return nil
}

// Locale returns the active locale identifier.
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return active.String()
}

// T renders the message for code under the active locale, applying the
// fallback chain: active locale -> default locale -> generic string.
// Regional variants resolve to registered base languages (en-GB -> en).
func T(code string, params map[string]any) string {
	mu.RLock()
	defer mu.RUnlock()
	_, idx, conf := matcher.Match(active)
	if conf > language.No {
		if r, ok := tables[names[idx]][code]; ok {
			return r(params)
		}
	}
	if r, ok := tables[DefaultLocale][code]; ok {
		return r(params)
	}
	return fmt.Sprintf("Validation error: %s", code)
}

// Static returns a Renderer that ignores params.
func Static(msg string) Renderer {
	return func(map[string]any) string { return msg }
}
