// Package track looks up what a track URL points at.
package track

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
)

var ErrNoMetadata = errors.New("no track metadata")

// Metadata is what a track page says about itself.
type Metadata struct {
	Title       string
	Description string
	Site        string
	Image       string
	URL         string
	Fingerprint uint64
}

// Fingerprint identifies a track URL regardless of how it was typed: scheme
// and host are case-folded, the fragment and a trailing slash are dropped.
func Fingerprint(rawURL string) uint64 {
	return xxhash.Sum64String(normalize(rawURL))
}

func normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return strings.TrimSpace(rawURL)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String()
}

// Resolver fetches track pages over HTTP.
type Resolver struct {
	Client *http.Client
}

// NewResolver returns a resolver whose requests give up after timeout.
func NewResolver(timeout time.Duration) *Resolver {
	return &Resolver{Client: &http.Client{Timeout: timeout}}
}

// Resolve reads the og: and twitter: meta tags of the page at rawURL and
// falls back to its <title>.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*Metadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	rsp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", u.Redacted(), rsp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(rsp.Body)
	if err != nil {
		return nil, err
	}

	m := &Metadata{
		URL:         rawURL,
		Fingerprint: Fingerprint(rawURL),
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		prop, ok := s.Attr("property")
		if !ok {
			prop, _ = s.Attr("name")
		}
		content, _ := s.Attr("content")

		p := strings.Split(prop, ":")
		if len(p) < 2 || (p[0] != "twitter" && p[0] != "og") || content == "" {
			return
		}

		switch p[1] {
		case "site_name":
			m.Site = content
		case "site":
			if m.Site == "" {
				m.Site = content
			}
		case "title":
			if m.Title == "" || p[0] == "og" {
				m.Title = content
			}
		case "description":
			if m.Description == "" {
				m.Description = content
			}
		case "image":
			if m.Image == "" {
				m.Image = content
			}
		case "url":
			m.URL = content
		}
	})

	if m.Title == "" {
		m.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if m.Title == "" {
		return nil, ErrNoMetadata
	}
	return m, nil
}
