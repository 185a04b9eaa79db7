package translator

import (
	"errors"
	"slices"
	"testing"
)

func TestLoadDir(t *testing.T) {
	t.Run("LoadDir_Success", func(t *testing.T) {
		tr, err := LoadDir("./locales/")
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}

		if got := tr.Languages(); !slices.Equal(got, []string{"en", "it", "pt"}) {
			t.Fatalf("Languages: %v", got)
		}
		if got := tr.Keys(); !slices.Equal(got, []string{"farewell", "greetings", "network_error"}) {
			t.Fatalf("Keys: %v", got)
		}

		// The TOML file and the YAML file land in the same store.
		got, err := tr.Translate("network_error", "pt", []Binding{{Placeholder: "HOST", Value: "example.com"}})
		if err != nil {
			t.Fatalf("Translate: %v", err)
		}
		if got != "Não foi possível contactar example.com." {
			t.Fatalf("Translate: %q", got)
		}
	})

	t.Run("LoadDir_Fail", func(t *testing.T) {
		_, err := LoadDir("./testdata/error/")
		if err == nil {
			t.Fatal("LoadDir: expected error")
		}
		t.Logf("LoadDir: %v", err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("LoadFile_Success", func(t *testing.T) {
		tr, err := LoadFile("./locales/greetings.yaml")
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}

		got, err := tr.Translate("greetings", "pt", []Binding{{Placeholder: "NAME", Value: "Julian"}})
		if err != nil {
			t.Fatalf("Translate: %v", err)
		}
		if got != "Bom dia, Julian!" {
			t.Fatalf("Translate: %q", got)
		}
	})

	t.Run("LoadFile_MissingLanguage", func(t *testing.T) {
		_, err := LoadFile("./testdata/missing_language.yaml")
		if !errors.Is(err, &Error{Kind: ErrMissingLanguage, Value: "pt"}) {
			t.Fatalf("LoadFile: %v", err)
		}
	})

	t.Run("LoadFile_UnknownLanguage", func(t *testing.T) {
		_, err := LoadFile("./testdata/unknown_language.yaml")
		if !errors.Is(err, &Error{Kind: ErrUnknownLanguage, Value: "cz"}) {
			t.Fatalf("LoadFile: %v", err)
		}
	})
}
