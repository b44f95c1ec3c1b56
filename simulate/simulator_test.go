package simulate_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarkit/contract-sim/simulate"
	"github.com/stellarkit/contract-sim/wasm"
)

var validContractID = "C" + strings.Repeat("A", 55)

func encodeModule(m *wasm.Module) string {
	return base64.StdEncoding.EncodeToString(m.Encode())
}

func validRequest(m *wasm.Module) simulate.Request {
	return simulate.Request{
		WasmBinary: encodeModule(m),
		ContractID: validContractID,
		Name:       "token",
	}
}

// tokenModule is a small well-formed contract: one function exported as
// "balance", one memory page, no tables.
func tokenModule() *wasm.Module {
	return &wasm.Module{
		Funcs:    []uint32{0},
		Memories: []wasm.Limits{{Min: 1}},
		Exports:  []wasm.Export{{Name: "balance", Kind: wasm.KindFunc, Idx: 0}},
	}
}

func TestSimulateInvalidBase64(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(simulate.Request{
		WasmBinary: "not-base64!!!",
		ContractID: "also-bad", // must not be reported: encoding fails first
		Name:       "",
	})

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "InvalidBase64", res.Errors[0].Code)
	assert.Equal(t, "wasm_binary", res.Errors[0].Field)
	assert.Empty(t, res.Warnings)
	assert.Zero(t, res.GasEstimate.TotalCostStroops)
	assert.Zero(t, res.PerformanceMetrics.EstimatedExecutionTimeMS)
	assert.Nil(t, res.ABIPreview)
	assert.Nil(t, res.ContractFunctions)
}

func TestSimulateEmptyModule(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(simulate.Request{
		WasmBinary: "", // decodes to zero bytes
		ContractID: validContractID,
		Name:       "token",
	})

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "EmptyWasm", res.Errors[0].Code)
	assert.Equal(t, "wasm_binary", res.Errors[0].Field)
	assert.Zero(t, res.GasEstimate)
	assert.Zero(t, res.PerformanceMetrics.MemoryEstimateKB)
}

func TestSimulateInvalidContractID(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	req := validRequest(tokenModule())
	req.ContractID = "GABC"
	res := sim.Simulate(req)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "InvalidContractId", res.Errors[0].Code)
	assert.Equal(t, "contract_id", res.Errors[0].Field)
}

func TestSimulateEmptyName(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	req := validRequest(tokenModule())
	req.Name = ""
	res := sim.Simulate(req)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "InvalidName", res.Errors[0].Code)
	assert.Equal(t, "name", res.Errors[0].Field)
}

func TestSimulateZeroFunctions(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(simulate.Request{
		WasmBinary: base64.StdEncoding.EncodeToString(wasm.EncodeHeader(wasm.Version)),
		ContractID: validContractID,
		Name:       "empty",
	})

	require.False(t, res.Valid)
	require.NotEmpty(t, res.Errors)
	for _, e := range res.Errors {
		assert.Equal(t, "WasmValidationError", e.Code)
	}
	assert.Contains(t, res.Errors[0].Message, "No functions found")
	assert.Zero(t, res.GasEstimate.TotalCostStroops)
	assert.Zero(t, res.PerformanceMetrics.FunctionCount)
}

func TestSimulateGarbageModule(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(simulate.Request{
		WasmBinary: base64.StdEncoding.EncodeToString([]byte("definitely not wasm at all")),
		ContractID: validContractID,
		Name:       "garbage",
	})

	require.False(t, res.Valid)
	require.NotEmpty(t, res.Errors)
	// The decode-level parse error comes before the policy error.
	assert.Contains(t, res.Errors[0].Message, "WASM parsing error")
}

func TestSimulateHappyPath(t *testing.T) {
	// One function, no tables, one memory page, padded to 2KB.
	m := tokenModule()
	m.Customs = []wasm.CustomSection{{Name: "pad", Data: make([]byte, 2100)}}

	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(validRequest(m))

	require.True(t, res.Valid, "errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)

	pol := simulate.DefaultPolicy()
	sizeKB := int64(len(m.Encode()) / 1024)
	wantDeployment := pol.BaseDeploymentCost +
		sizeKB*pol.CostPerKB +
		1*pol.CostPerFunction +
		0*pol.CostPerTable +
		1*pol.CostPerMemoryPage
	assert.Equal(t, wantDeployment, res.GasEstimate.DeploymentCostStroops)
	assert.Equal(t, int64(0), res.GasEstimate.StorageCostStroops)
	assert.Equal(t, wantDeployment, res.GasEstimate.TotalCostStroops)
	assert.InDelta(t, float64(wantDeployment)/1e7, res.GasEstimate.TotalCostXLM, 1e-12)

	assert.Equal(t, uint32(1), res.PerformanceMetrics.FunctionCount)
	assert.Equal(t, uint32(0), res.PerformanceMetrics.TableSizeBytes)
	assert.Equal(t, uint64(64), res.PerformanceMetrics.MemoryEstimateKB)
	assert.Equal(t, uint64(2), res.PerformanceMetrics.EstimatedExecutionTimeMS)

	// "balance" is in the extraction vocabulary.
	require.NotNil(t, res.ABIPreview)
	require.Len(t, res.ContractFunctions, 1)
	assert.Equal(t, "balance", res.ContractFunctions[0].Name)
	assert.True(t, res.ContractFunctions[0].IsView)
	assert.Equal(t, uint32(0), res.ContractFunctions[0].ParamCount)
}

func TestSimulateNoVocabularyMatch(t *testing.T) {
	m := &wasm.Module{
		Funcs:   []uint32{0},
		Exports: []wasm.Export{{Name: "zzqq", Kind: wasm.KindFunc, Idx: 0}},
	}
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(validRequest(m))

	require.True(t, res.Valid)
	assert.Nil(t, res.ABIPreview, "preview omitted when nothing was extracted")
	assert.Nil(t, res.ContractFunctions)
}

func TestSimulateStructuralWarningsSurfaceOnValidResult(t *testing.T) {
	// Valid module (has a function) but no exports: warning, not error.
	m := &wasm.Module{Funcs: []uint32{0}}
	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(validRequest(m))

	require.True(t, res.Valid)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, "WasmWarning", res.Warnings[0].Code)
	assert.Equal(t, simulate.SeverityLow, res.Warnings[0].Severity)
	assert.Contains(t, res.Warnings[0].Message, "No exported functions")
}

func TestSimulateDeterminism(t *testing.T) {
	m := tokenModule()
	m.Tables = []wasm.Limits{{Min: 1}}
	m.Data = [][]byte{{1, 2, 3}}
	req := validRequest(m)

	sim := simulate.New(simulate.DefaultPolicy())
	first := sim.Simulate(req)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, sim.Simulate(req))
	}
}

func TestSimulateConcurrentUse(t *testing.T) {
	sim := simulate.New(simulate.DefaultPolicy())
	req := validRequest(tokenModule())
	want := sim.Simulate(req)

	done := make(chan simulate.Result, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- sim.Simulate(req) }()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
