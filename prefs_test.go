package belanja

import (
	"testing"

	"github.com/prasetyo/belanja/i18n"
	"github.com/prasetyo/belanja/kvstore"
)

func TestLoadPreferences_Defaults(t *testing.T) {
	p := LoadPreferences(kvstore.NewMem())
	if p.Language != i18n.Indonesian {
		t.Errorf("default language = %s, want id", p.Language)
	}
	if p.DarkMode {
		t.Error("default theme should be light")
	}
	if p.Currency != "IDR" {
		t.Errorf("default currency = %s, want IDR", p.Currency)
	}
}

func TestPreferences_SaveLoad(t *testing.T) {
	kv := kvstore.NewMem()
	if err := SaveLanguage(kv, i18n.English); err != nil {
		t.Fatalf("SaveLanguage: %v", err)
	}
	if err := SaveTheme(kv, true); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	p := LoadPreferences(kv)
	if p.Language != i18n.English {
		t.Errorf("language = %s, want en", p.Language)
	}
	if !p.DarkMode {
		t.Error("theme = light, want dark")
	}
	// The currency never persists; it stays the session default.
	if p.Currency != "IDR" {
		t.Errorf("currency = %s, want the IDR default", p.Currency)
	}
}

func TestLoadPreferences_InvalidLanguage(t *testing.T) {
	kv := kvstore.NewMem()
	kv.Set("language", "fr")
	if p := LoadPreferences(kv); p.Language != i18n.Indonesian {
		t.Errorf("invalid stored language should fall back to id, got %s", p.Language)
	}
}

func TestValidCurrency(t *testing.T) {
	for _, code := range Currencies {
		if !ValidCurrency(code) {
			t.Errorf("ValidCurrency(%s) = false", code)
		}
	}
	if ValidCurrency("BTC") {
		t.Error("ValidCurrency(BTC) = true")
	}
}
