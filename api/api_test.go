// SPDX-License-Identifier: MIT
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourcolor/api"
	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/observability"
	"github.com/katalvlaran/fourcolor/pipeline"
)

type coloringBody struct {
	RunID        string   `json:"run_id"`
	Feasible     bool     `json:"feasible"`
	Gated        bool     `json:"gated"`
	Colors       []string `json:"colors"`
	CrossChecked bool     `json:"cross_checked"`
	Planarity    *struct {
		Verdict   string `json:"verdict"`
		Reason    string `json:"reason"`
		Component []int  `json:"component"`
	} `json:"planarity"`
	Stats struct {
		Nodes       int64 `json:"nodes"`
		Assignments int64 `json:"assignments"`
		Backtracks  int64 `json:"backtracks"`
		MaxDepth    int   `json:"max_depth"`
	} `json:"stats"`
}

type errorBody struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id"`
}

func newTestServer(t *testing.T) (http.Handler, *observability.Collector) {
	t.Helper()
	metrics := observability.NewCollector()
	runner := pipeline.New(pipeline.WithObserver(metrics))
	srv := api.NewServer(api.Config{
		MaxVertices:    8,
		MaxBodyBytes:   4096,
		RequestTimeout: 5 * time.Second,
		Palette:        coloring.DefaultPalette(),
		Strategy:       coloring.Recursive,
		PlanarityGate:  true,
	}, runner, nil, metrics)

	return srv.Routes(), metrics
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

const c4 = `[[0,1,0,1],[1,0,1,0],[0,1,0,1],[1,0,1,0]]`

const k5 = `[[0,1,1,1,1],[1,0,1,1,1],[1,1,0,1,1],[1,1,1,0,1],[1,1,1,1,0]]`

func TestCreateColoring(t *testing.T) {
	h, _ := newTestServer(t)

	rec := post(t, h, "/v1/colorings", `{"matrix":`+c4+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got coloringBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.RunID)
	assert.True(t, got.Feasible)
	assert.False(t, got.Gated)
	assert.Equal(t, []string{"red", "green", "red", "green"}, got.Colors)
	require.NotNil(t, got.Planarity)
	assert.Equal(t, "maybe-planar", got.Planarity.Verdict)
	assert.Equal(t, int64(6), got.Stats.Nodes)
	assert.Equal(t, 4, got.Stats.MaxDepth)
}

func TestCreateColoring_Options(t *testing.T) {
	h, _ := newTestServer(t)

	rec := post(t, h, "/v1/colorings", `{"matrix":`+k5+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var gated coloringBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gated))
	assert.True(t, gated.Gated)
	assert.False(t, gated.Feasible)
	assert.Nil(t, gated.Colors)
	assert.Equal(t, "euler-bound", gated.Planarity.Reason)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, gated.Planarity.Component)

	rec = post(t, h, "/v1/colorings",
		`{"matrix":`+k5+`,"planarity_gate":false,"strategy":"iterative","cross_check":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var searched coloringBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searched))
	assert.False(t, searched.Gated)
	assert.False(t, searched.Feasible)
	assert.True(t, searched.CrossChecked)
	assert.Nil(t, searched.Planarity)
	assert.Positive(t, searched.Stats.Backtracks)

	rec = post(t, h, "/v1/colorings", `{"matrix":[[0,1],[1,0]],"palette":["black","white"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var custom coloringBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &custom))
	assert.Equal(t, []string{"black", "white"}, custom.Colors)

	rec = post(t, h, "/v1/colorings", `{"matrix":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var empty coloringBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &empty))
	assert.True(t, empty.Feasible)
	assert.Equal(t, []string{}, empty.Colors)
}

func TestCreateColoring_BadRequests(t *testing.T) {
	h, _ := newTestServer(t)
	cases := []struct {
		name string
		body string
		code int
		msg  string
	}{
		{"not json", `{"matrix":`, http.StatusBadRequest, "invalid JSON"},
		{"unknown field", `{"matrix":[[0]],"colours":[]}`, http.StatusBadRequest, "invalid JSON"},
		{"missing matrix", `{}`, http.StatusBadRequest, "Matrix is required"},
		{"non binary", `{"matrix":[[0,2],[2,0]]}`, http.StatusBadRequest, "must be one of"},
		{"non square", `{"matrix":[[0,1],[1]]}`, http.StatusBadRequest, "square"},
		{"asymmetric", `{"matrix":[[0,1],[0,0]]}`, http.StatusBadRequest, "symmetric"},
		{"strategy", `{"matrix":[[0]],"strategy":"greedy"}`, http.StatusBadRequest, "must be one of"},
		{"palette repeat", `{"matrix":[[0]],"palette":["red","red"]}`, http.StatusBadRequest, "must not repeat"},
		{"too many vertices", `{"matrix":[[0],[0],[0],[0],[0],[0],[0],[0],[0]]}`, http.StatusRequestEntityTooLarge, "limit 8"},
		{"body too large", `{"matrix":[[0]],"palette":["` + strings.Repeat("x", 5000) + `"]}`, http.StatusRequestEntityTooLarge, "4096 bytes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, "/v1/colorings", tc.body)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())
			var got errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.code, got.Code)
			assert.Contains(t, got.Error, tc.msg)
			assert.NotEmpty(t, got.RequestID)
		})
	}
}

func TestCheckPlanarity(t *testing.T) {
	h, _ := newTestServer(t)

	rec := post(t, h, "/v1/planarity", `{"matrix":`+k5+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Verdict string `json:"verdict"`
		Edges   int    `json:"edges"`
		Bound   int    `json:"bound"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "non-planar", got.Verdict)
	assert.Equal(t, 10, got.Edges)
	assert.Equal(t, 9, got.Bound)

	rec = post(t, h, "/v1/planarity", `{"matrix":`+c4+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"verdict":"maybe-planar"`)

	rec = post(t, h, "/v1/planarity", `{"matrix":[[0,1]]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mrec := httptest.NewRecorder()
	h.ServeHTTP(mrec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := mrec.Body.String()
	assert.Contains(t, body, `fourcolor_planarity_checks_total{verdict="non-planar"} 1`)
	assert.Contains(t, body, `fourcolor_planarity_checks_total{verdict="maybe-planar"} 1`)
	assert.Contains(t, body, "fourcolor_planarity_rejections_total 0", "a query is not a gate rejection")
}

func TestCreateColoring_Deadline(t *testing.T) {
	h, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/v1/colorings",
		strings.NewReader(`{"matrix":`+k5+`,"planarity_gate":false}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusGatewayTimeout, got.Code)
	assert.Contains(t, got.Error, "deadline")
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	post(t, h, "/v1/colorings", `{"matrix":`+c4+`}`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fourcolor_searches_total{outcome="feasible",strategy="recursive"} 1`)
	assert.Contains(t, body, `fourcolor_http_requests_total{method="POST",route="/v1/colorings",status="200"} 1`)
	assert.Contains(t, body, `fourcolor_http_requests_total{method="GET",route="/healthz",status="200"} 1`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/colorings", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
