// Package lang holds the addon's translations and renders chat text in a
// player's language.
package lang

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
)

//go:embed locales/*.json
var locales embed.FS

// Store maps locale names to translation tables.
type Store struct {
	fallback string

	mu        sync.RWMutex
	languages map[string]map[string]string
	merged    map[string]map[string]string
}

// Load reads the embedded locales. fallback fills in keys a locale lacks and
// is used for senders without a locale.
func Load(fallback string) (*Store, error) {
	return LoadFS(locales, "locales", fallback)
}

// LoadFS reads every <locale>.json file in dir.
func LoadFS(fsys fs.FS, dir, fallback string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	s := &Store{
		fallback:  normalize(fallback),
		languages: make(map[string]map[string]string),
		merged:    make(map[string]map[string]string),
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var table map[string]string
		if err := json.Unmarshal(b, &table); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		s.languages[normalize(strings.TrimSuffix(e.Name(), ".json"))] = table
	}

	if _, ok := s.languages[s.fallback]; !ok {
		return nil, fmt.Errorf("fallback language %q not found", fallback)
	}

	log.WithFields(log.Fields{
		"component": "lang",
		"languages": len(s.languages),
		"fallback":  s.fallback,
	}).Debug("loaded languages")
	return s, nil
}

// Locales returns the loaded locale names.
func (s *Store) Locales() []string {
	names := make([]string, 0, len(s.languages))
	for name := range s.languages {
		names = append(names, name)
	}
	return names
}

// Language returns locale's table with missing keys taken from the
// fallback. Unknown locales get the fallback table. The result is shared
// and must not be modified.
func (s *Store) Language(locale string) map[string]string {
	locale = normalize(locale)
	if _, ok := s.languages[locale]; !ok {
		locale = s.fallback
	}

	s.mu.RLock()
	table, ok := s.merged[locale]
	s.mu.RUnlock()
	if ok {
		return table
	}

	table = make(map[string]string, len(s.languages[s.fallback]))
	for k, v := range s.languages[s.fallback] {
		table[k] = v
	}
	for k, v := range s.languages[locale] {
		table[k] = v
	}

	s.mu.Lock()
	s.merged[locale] = table
	s.mu.Unlock()
	return table
}

// ServerLanguage implements host.Languages. Senders that expose a locale
// get theirs, everyone else the fallback.
func (s *Store) ServerLanguage(sender host.Sender) map[string]string {
	if l, ok := sender.(interface{ Locale() string }); ok {
		return s.Language(l.Locale())
	}
	return s.Language(s.fallback)
}

// Render turns text into a plain string in locale.
func (s *Store) Render(text host.Text, locale string) string {
	if !text.IsTranslatable() {
		return text.Content
	}
	template, ok := s.Language(locale)[text.Key]
	if !ok {
		template = text.Key
	}
	return Format(template, text.Args...)
}

// Format substitutes %s (in order), %N$s (by position) and %% the way
// Minecraft translation strings do. Missing arguments render empty.
func Format(template string, args ...string) string {
	var b strings.Builder
	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		rest := template[i+1:]
		switch {
		case rest[0] == '%':
			b.WriteByte('%')
			i++
		case rest[0] == 's':
			b.WriteString(arg(args, next))
			next++
			i++
		default:
			// %N$s
			end := strings.Index(rest, "$s")
			if end <= 0 {
				b.WriteByte(c)
				continue
			}
			n, err := strconv.Atoi(rest[:end])
			if err != nil || n < 1 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(arg(args, n-1))
			i += end + 2
		}
	}
	return b.String()
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
}
