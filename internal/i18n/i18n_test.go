package i18n

import (
	"errors"
	"testing"
)

func TestTFallsBackToDefaultLang(t *testing.T) {
	tr := T(LangPTBR)
	if got := tr("equation.reset"); got != "Redefinir" {
		t.Fatalf("expected pt-br string, got %q", got)
	}
	ui[LangEN]["test.only"] = "English only"
	t.Cleanup(func() { delete(ui[LangEN], "test.only") })
	if got := tr("test.only"); got != "English only" {
		t.Fatalf("expected fallback to default language, got %q", got)
	}
	if got := tr("missing.key"); got != "missing.key" {
		t.Fatalf("expected key for missing string, got %q", got)
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for _, lang := range Languages() {
		for key := range ui[DefaultLang] {
			if _, ok := ui[lang][key]; !ok {
				t.Fatalf("%s missing key %q", lang, key)
			}
		}
	}
}

func TestLanguagesDefaultFirst(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != LangEN || langs[1] != LangPTBR {
		t.Fatalf("unexpected languages: %v", langs)
	}
	if LangPTBR.Next() != LangEN || LangEN.Next() != LangPTBR {
		t.Fatalf("unexpected language cycle")
	}
}

func TestParse(t *testing.T) {
	for _, in := range []string{"pt-br", "PT_BR", " pt-BR "} {
		got, err := Parse(in)
		if err != nil || got != LangPTBR {
			t.Fatalf("Parse(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := Parse("de"); !errors.Is(err, ErrUnknownLang) {
		t.Fatalf("expected ErrUnknownLang, got %v", err)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   Lang
	}{
		{locale: "pt_BR.UTF-8", want: LangPTBR},
		{locale: "pt-BR", want: LangPTBR},
		{locale: "en_US.UTF-8", want: LangEN},
		{locale: "C", want: LangEN},
		{locale: "", want: LangEN},
		{locale: "ja-JP", want: LangEN},
	}
	for _, tt := range tests {
		if got := Match(tt.locale); got != tt.want {
			t.Fatalf("Match(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}
