package lang

import (
	"testing"
	"testing/fstest"

	"pvdiscs.dev/host"
)

type localeSender struct {
	host.Sender
	locale string
}

func (l localeSender) Locale() string { return l.locale }

type console struct{ host.Sender }

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		args     []string
		want     string
	}{
		{"no placeholders", "hello", nil, "hello"},
		{"sequential", "%s and %s", []string{"a", "b"}, "a and b"},
		{"positional", "%2$s before %1$s", []string{"a", "b"}, "b before a"},
		{"escaped percent", "100%% of %s", []string{"discs"}, "100% of discs"},
		{"missing argument", "%s and %s", []string{"a"}, "a and "},
		{"trailing percent", "50%", nil, "50%"},
		{"unknown verb", "%d left", []string{"a"}, "%d left"},
		{"non ascii", "Трек \"%s\"", []string{"x"}, "Трек \"x\""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.template, tc.args...); got != tc.want {
				t.Errorf("Format(%q): got %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestEmbeddedLocalesAreComplete(t *testing.T) {
	s, err := Load("en_us")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for locale, table := range s.languages {
		for key := range s.languages["en_us"] {
			if _, ok := table[key]; !ok {
				t.Errorf("%s has no translation for %s", locale, key)
			}
		}
	}
}

func TestEmbeddedLocales(t *testing.T) {
	s, err := Load("en_us")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	en := s.Language("en_us")
	for key := range en {
		if _, ok := s.Language("ru_ru")[key]; !ok {
			t.Errorf("ru_ru is missing %s even with fallback", key)
		}
	}

	if got := s.Language("ru_RU")["pv.addon.discs.label.unknown_track"]; got != "Неизвестный трек" {
		t.Errorf("locale names should ignore case, got %q", got)
	}
	if got := s.Language("ru_ru")["pv.addon.discs.usage.burn"]; got != en["pv.addon.discs.usage.burn"] {
		t.Errorf("missing ru key should fall back to en, got %q", got)
	}
	if got := s.Language("xx_xx")["pv.addon.discs.label.unknown_track"]; got != "Unknown track" {
		t.Errorf("unknown locale should use the fallback, got %q", got)
	}
}

func TestServerLanguage(t *testing.T) {
	s, err := Load("en_us")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ru := s.ServerLanguage(localeSender{locale: "ru_ru"})
	if ru["pv.addon.discs.label.unknown_track"] != "Неизвестный трек" {
		t.Errorf("player locale ignored")
	}
	en := s.ServerLanguage(console{})
	if en["pv.addon.discs.label.unknown_track"] != "Unknown track" {
		t.Errorf("console should get the fallback language")
	}
}

func TestRender(t *testing.T) {
	s, err := Load("en_us")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := s.Render(host.Translatable("pv.addon.discs.error.unknown_subcommand", "burn, erase"), "en_us")
	if got != "Unknown subcommand. Available subcommands: burn, erase" {
		t.Errorf("render: got %q", got)
	}
	if got := s.Render(host.Literal("plain"), "ru_ru"); got != "plain" {
		t.Errorf("literal: got %q", got)
	}
	if got := s.Render(host.Translatable("no.such.key"), "en_us"); got != "no.such.key" {
		t.Errorf("unknown key: got %q", got)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en_us.json": {Data: []byte(`{"a": "A", "b": "B"}`)},
		"l/de_de.json": {Data: []byte(`{"a": "Ä"}`)},
		"l/README.md":  {Data: []byte(`ignored`)},
	}
	s, err := LoadFS(fsys, "l", "EN_US")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	de := s.Language("de_DE")
	if de["a"] != "Ä" || de["b"] != "B" {
		t.Errorf("de: got %v", de)
	}
	if len(s.Locales()) != 2 {
		t.Errorf("locales: got %v", s.Locales())
	}

	if _, err := LoadFS(fsys, "l", "fr_fr"); err == nil {
		t.Errorf("missing fallback should fail")
	}

	bad := fstest.MapFS{"l/en_us.json": {Data: []byte(`{`)}}
	if _, err := LoadFS(bad, "l", "en_us"); err == nil {
		t.Errorf("broken json should fail")
	}
}
