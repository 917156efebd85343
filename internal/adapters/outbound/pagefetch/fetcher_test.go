package pagefetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html><head>
<title> Modular Office Buildings for Rent </title>
<meta name="description" content="Explore flexible modular offices.">
<meta name="keywords" content="modular, office , , rental">
<meta name="robots" content="index,follow">
<link rel="canonical" href="https://example.com/offices">
<meta property="og:title" content="Modular Offices">
<meta property="og:description" content="Flexible space.">
<meta property="og:image" content="https://example.com/card.png">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Product"}</script>
</head><body><h1>Offices</h1></body></html>`

func TestFetch_ExtractsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	rec, err := New().Fetch(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Modular Office Buildings for Rent", rec.Title)
	assert.Equal(t, "Explore flexible modular offices.", rec.Description)
	assert.Equal(t, []string{"modular", "office", "rental"}, rec.Keywords)
	assert.Equal(t, "index,follow", rec.RobotsDirective)
	assert.Equal(t, "https://example.com/offices", rec.CanonicalURL)
	assert.Equal(t, "Modular Offices", rec.SocialTitle)
	assert.Equal(t, "Flexible space.", rec.SocialDescription)
	assert.Equal(t, "https://example.com/card.png", rec.SocialImageURL)
	assert.JSONEq(t, `{"@context":"https://schema.org","@type":"Product"}`, rec.JSONLD)
}

func TestFetch_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><head></head><body></body></html>"))
	}))
	defer srv.Close()

	rec, err := New().Fetch(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.Keywords)
	assert.Empty(t, rec.JSONLD)
}

func TestFetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().Fetch(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // shut down before fetching

	_, err := New().Fetch(srv.URL)
	assert.Error(t, err)
}
