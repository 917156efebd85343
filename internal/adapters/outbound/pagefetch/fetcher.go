package pagefetch

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/seokraft/seokraft/internal/domain"
)

// Fetcher implements domain.PageFetcher: it downloads a live page and
// extracts the metadata it actually serves into a Record, so published
// pages can be audited with the same rules as source documents.
type Fetcher struct {
	client *http.Client
}

func New() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 15 * time.Second}}
}

func (f *Fetcher) Fetch(pageURL string) (domain.Record, error) {
	resp, err := f.client.Get(pageURL)
	if err != nil {
		return domain.Record{}, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.Record{}, fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.Record{}, fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	return extract(doc), nil
}

func extract(doc *goquery.Document) domain.Record {
	rec := domain.Record{
		Title:             strings.TrimSpace(doc.Find("title").First().Text()),
		Description:       metaContent(doc, "description"),
		RobotsDirective:   metaContent(doc, "robots"),
		SocialTitle:       ogContent(doc, "og:title"),
		SocialDescription: ogContent(doc, "og:description"),
		SocialImageURL:    ogContent(doc, "og:image"),
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		rec.CanonicalURL = strings.TrimSpace(href)
	}

	if raw := metaContent(doc, "keywords"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				rec.Keywords = append(rec.Keywords, k)
			}
		}
	}

	if jsonLD := doc.Find(`script[type="application/ld+json"]`).First().Text(); jsonLD != "" {
		rec.JSONLD = strings.TrimSpace(jsonLD)
	}

	return rec
}

func metaContent(doc *goquery.Document, name string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().Attr("content")
	return strings.TrimSpace(content)
}

func ogContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
