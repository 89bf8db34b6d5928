package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/httpapi"
	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/memory"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewServer(memory.New()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postExperiment(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/experiments", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRunExperiment(t *testing.T) {
	srv := newTestServer(t)

	resp := postExperiment(t, srv, `{"trials":100,"walk_length":25,"threshold":10,"seed":42}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary domain.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 100, summary.Trials)
	assert.Equal(t, 25, summary.WalkLength)
	assert.Equal(t, 100, summary.Histogram.Total())
}

func TestRunExperiment_Reproducible(t *testing.T) {
	srv := newTestServer(t)

	var first, second domain.Summary
	resp := postExperiment(t, srv, `{"trials":200,"walk_length":25,"threshold":10,"seed":7}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp = postExperiment(t, srv, `{"trials":200,"walk_length":25,"threshold":10,"seed":7}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	assert.Equal(t, first, second, "seeded requests must be reproducible")
}

func TestRunExperiment_InvalidArguments(t *testing.T) {
	srv := newTestServer(t)

	resp := postExperiment(t, srv, `{"trials":0,"walk_length":25,"threshold":10}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postExperiment(t, srv, `{"trials":10,"walk_length":-1,"threshold":10}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postExperiment(t, srv, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStoreAndRetrieve(t *testing.T) {
	srv := newTestServer(t)

	resp := postExperiment(t, srv, `{"name":"baseline","trials":100,"walk_length":25,"threshold":10,"seed":42}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := http.Get(srv.URL + "/experiments")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var list map[string][]string
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	assert.Contains(t, list["experiments"], "baseline")

	getResp, err := http.Get(srv.URL + "/experiments/baseline")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var summary domain.Summary
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&summary))
	assert.Equal(t, int64(42), summary.Seed)
}

func TestGetExperiment_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/experiments/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsExposed(t *testing.T) {
	srv := newTestServer(t)

	// Generate some walks so the counters move.
	resp := postExperiment(t, srv, `{"trials":10,"walk_length":25,"threshold":10,"seed":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, "distribution_walks_total")
	assert.Contains(t, body, "distribution_steps_total")
}
