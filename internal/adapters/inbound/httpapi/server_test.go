package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seokraft/seokraft/internal/adapters/inbound/httpapi"
	"github.com/seokraft/seokraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	httpapi.New().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestValidate_CompleteRecord(t *testing.T) {
	body := `{
		"title": "Professional Solar Panel Installation Services",
		"description": "Get expert solar panel installation for your home or business. Our certified team delivers reliable renewable energy solutions. Contact us for a free quote today.",
		"focus_keyword": "solar panel installation",
		"keywords": ["solar", "renewable energy", "installation"],
		"canonical_url": "https://example.com/services/solar"
	}`

	rec := doRequest(t, http.MethodPost, "/v1/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.IsValid)
	assert.GreaterOrEqual(t, report.Score, 80)
}

func TestValidate_BrokenRecord(t *testing.T) {
	body := `{"title": "<script>alert(1)</script>", "description": ""}`

	rec := doRequest(t, http.MethodPost, "/v1/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Issues)
}

func TestValidate_MalformedBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/v1/validate", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid record")
}

func TestValidate_WrongMethod(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/v1/validate", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
