package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarlcorp/zident/internal/config"
	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.MaxBatch = 50
	srv := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestGenerateChineseMale(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/identities", `{"country":"CN","gender":"男","age_min":30,"age_max":30}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var id identity.Identity
	require.NoError(t, json.Unmarshal(body, &id))

	assert.Equal(t, registry.CN, id.Country)
	assert.Equal(t, identity.Male, id.Gender)
	assert.Equal(t, time.Now().Year()-30, id.BirthDate.Year())
	require.Len(t, id.IDNumber, 18)
	assert.True(t, identity.ValidResidentID(id.IDNumber), id.IDNumber)
	assert.Equal(t, 1, int(id.IDNumber[16]-'0')%2, "17th digit odd for male")
	assert.NoError(t, identity.Validate(id))
}

func TestGenerateWithoutCreditCard(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/identities", `{"country":"US","generate_credit_card":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.NotContains(t, raw, "credit_card")
	assert.Contains(t, raw, "social_media")
	assert.Regexp(t, regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`), raw["id_number"])
}

func TestGenerateDefaultsToConfiguredCountry(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/identities", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var id identity.Identity
	require.NoError(t, json.Unmarshal(body, &id))
	assert.Equal(t, registry.CN, id.Country)
	assert.NotNil(t, id.CreditCard)
	assert.NotEmpty(t, id.AvatarURL)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  string
		field string
	}{
		{"inverted ages", "/v1/identities", `{"age_min":40,"age_max":30}`, "age_max"},
		{"age too high", "/v1/identities", `{"age_max":150}`, "age_max"},
		{"age too low", "/v1/identities", `{"age_min":-3}`, "age_min"},
		{"unknown country", "/v1/identities", `{"country":"atlantis"}`, "country"},
		{"unknown gender", "/v1/identities", `{"gender":"robot"}`, "gender"},
		{"zero count", "/v1/identities/batch", `{"count":0}`, "count"},
		{"count above limit", "/v1/identities/batch", `{"count":51}`, "count"},
		{"batch with bad ages", "/v1/identities/batch", `{"count":2,"age_min":99,"age_max":1}`, "age_max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			resp, body := post(t, ts, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

			var e struct {
				Error   string            `json:"error"`
				Details map[string]string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, "validation failed", e.Error)
			assert.Contains(t, e.Details, tt.field)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{`{`, `{"country":"CN","colour":"red"}`, `[]`} {
		resp, b := post(t, ts, "/v1/identities", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Contains(t, string(b), "invalid request body")
	}
}

func TestBatch(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/identities/batch", `{"count":25,"country":"JP","age_min":25,"age_max":30}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out struct {
		Count      int                 `json:"count"`
		Identities []identity.Identity `json:"identities"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 25, out.Count)
	require.Len(t, out.Identities, 25)

	year := time.Now().Year()
	seen := make(map[string]bool)
	for _, id := range out.Identities {
		assert.Equal(t, registry.JP, id.Country)
		age := year - id.BirthDate.Year()
		assert.True(t, age >= 25 && age <= 30, "age %d", age)
		assert.False(t, seen[id.ID], "duplicate id %s", id.ID)
		seen[id.ID] = true
	}
}

func TestCountries(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/v1/countries")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Nationality string `json:"nationality"`
		Regions     []struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, len(registry.Codes()))

	for i, code := range registry.Codes() {
		assert.Equal(t, string(code), out[i].Code)
		assert.NotEmpty(t, out[i].Name)
		assert.NotEmpty(t, out[i].Regions, code)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := post(t, ts, "/v1/identities/batch", `{"count":3,"country":"AU"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = post(t, ts, "/v1/identities", `{"age_min":200}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	text := string(body)
	assert.Contains(t, text, `zident_identities_generated_total{country="AU"} 3`)
	assert.Contains(t, text, `zident_validation_failures_total{route="/v1/identities"} 1`)
	assert.Contains(t, text, `zident_http_request_duration_seconds_count{route="/v1/identities/batch",status="200"} 1`)
}

func TestServersDoNotShareCollectors(t *testing.T) {
	cfg := config.Default()
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.NotPanics(t, func() {
		New(cfg, log, nil)
		New(cfg, log, nil)
	})
}
