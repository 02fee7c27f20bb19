package main

import "testing"

func TestTranslations_TotalCoverage(t *testing.T) {
	ensureTranslationCoverage()
	es := translations["es"]
	if len(es) == 0 {
		t.Fatalf("spanish translations missing")
	}

	for lang, dict := range translations {
		for key := range es {
			if _, ok := dict[key]; !ok {
				t.Fatalf("language %s missing key %s", lang, key)
			}
		}
	}
}

func TestTrFallbacks(t *testing.T) {
	if got := tr("xx", "list_empty"); got != translations["es"]["list_empty"] {
		t.Fatalf("unknown language should fall back to es, got %q", got)
	}
	if got := tr("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("missing key should return itself, got %q", got)
	}
}
