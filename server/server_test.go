package server_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarkit/contract-sim/server"
	"github.com/stellarkit/contract-sim/simulate"
	"github.com/stellarkit/contract-sim/wasm"
)

func newTestServer(t *testing.T, maxBody int64) http.Handler {
	t.Helper()
	srv := server.New(simulate.New(simulate.DefaultPolicy()), nil, maxBody)
	return srv.Routes()
}

func simulateBody(t *testing.T, req simulate.Request) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func validRequest() simulate.Request {
	m := &wasm.Module{
		Funcs:   []uint32{0},
		Exports: []wasm.Export{{Name: "balance", Kind: wasm.KindFunc, Idx: 0}},
	}
	return simulate.Request{
		WasmBinary: base64.StdEncoding.EncodeToString(m.Encode()),
		ContractID: "C" + strings.Repeat("A", 55),
		Name:       "token",
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSimulateDeployHappyPath(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contracts/simulate-deploy", simulateBody(t, validRequest()))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res simulate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.NotZero(t, res.GasEstimate.TotalCostStroops)
}

func TestSimulateDeployInvalidInputStill200(t *testing.T) {
	h := newTestServer(t, 1<<20)
	body := simulateBody(t, simulate.Request{
		WasmBinary: "not base64!!",
		ContractID: "C" + strings.Repeat("A", 55),
		Name:       "token",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contracts/simulate-deploy", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var res simulate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "InvalidBase64", res.Errors[0].Code)
}

func TestSimulateDeployMalformedJSON(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contracts/simulate-deploy", strings.NewReader("{nope"))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateDeployBodyTooLarge(t *testing.T) {
	h := newTestServer(t, 64)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contracts/simulate-deploy", simulateBody(t, validRequest()))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contracts/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
