package belanja

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/prasetyo/belanja/i18n"
	"github.com/prasetyo/belanja/kvstore"
)

const (
	keyLanguage = "language"
	keyDarkMode = "darkMode"
)

// Currencies lists the selectable currency codes. IDR is the default.
var Currencies = []string{"IDR", "USD", "EUR", "JPY", "GBP"}

// ValidCurrency reports whether code is a selectable currency.
func ValidCurrency(code string) bool { return slices.Contains(Currencies, code) }

// Preferences are the application-wide display settings. Language and
// theme are persisted; Currency only lives for one invocation and is
// never stored: amounts are formatted under it but never converted.
type Preferences struct {
	Language i18n.Lang
	DarkMode bool
	Currency string
}

// LoadPreferences reads the persisted settings, substituting the
// documented defaults (Indonesian, light theme, IDR) for anything
// absent or unreadable.
func LoadPreferences(kv kvstore.Store) Preferences {
	p := Preferences{Language: i18n.Indonesian, Currency: "IDR"}

	if v, ok, err := kv.Get(keyLanguage); err != nil {
		slog.Warn("could not read language preference", "err", err)
	} else if ok {
		if lang, err := i18n.ParseLang(v); err != nil {
			slog.Warn("ignoring invalid stored language", "value", v)
		} else {
			p.Language = lang
		}
	}

	if v, ok, err := kv.Get(keyDarkMode); err != nil {
		slog.Warn("could not read theme preference", "err", err)
	} else if ok {
		p.DarkMode = v == "true"
	}

	return p
}

// SaveLanguage persists the display language.
func SaveLanguage(kv kvstore.Store, lang i18n.Lang) error {
	if err := kv.Set(keyLanguage, string(lang)); err != nil {
		return fmt.Errorf("could not save language: %w", err)
	}
	return nil
}

// SaveTheme persists the dark-mode flag.
func SaveTheme(kv kvstore.Store, dark bool) error {
	if err := kv.Set(keyDarkMode, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("could not save theme: %w", err)
	}
	return nil
}
