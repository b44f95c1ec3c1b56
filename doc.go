// Package contractsim provides a pre-deployment simulation pipeline for
// Soroban smart-contract WASM binaries.
//
// Given a base64-encoded contract binary, the pipeline statically validates
// the module's container structure, estimates deployment and storage cost in
// stroops, flags likely performance problems, and extracts a best-effort ABI
// preview. The module is never instantiated or executed; every result is a
// pure function of the input bytes plus a versioned cost policy.
//
// # Architecture Overview
//
// The repository is organized into packages with distinct responsibilities:
//
//	contract-sim/
//	├── simulate/    The six-stage pipeline: decode, validate, extract,
//	│                estimate, analyze, aggregate
//	├── wasm/        Error-tolerant pull scanner over WASM binary sections
//	├── errors/      Structured error taxonomy shared by the pipeline
//	├── server/      HTTP adapter exposing the simulate endpoint
//	├── config/      Server configuration loading
//	└── cmd/         contract-sim CLI (one-shot file reports and serve mode)
//
// # Quick Start
//
// Simulate a contract binary in-process:
//
//	sim := simulate.New(simulate.DefaultPolicy())
//	res := sim.Simulate(simulate.Request{
//	    WasmBinary: base64.StdEncoding.EncodeToString(wasmBytes),
//	    ContractID: "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC",
//	    Name:       "token",
//	})
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Code, e.Message)
//	    }
//	}
//
// # Safety
//
// The scanner in package wasm treats its input as untrusted. A decode failure
// in one section never prevents later sections from being scanned, and a
// malformed module always degrades to a structured invalid result rather than
// an error escaping the pipeline. Callers should still cap input size before
// handing bytes to the pipeline; the server package does this for HTTP.
//
// # Determinism
//
// For fixed input bytes, identifier, and name, repeated simulations produce
// identical validity, cost, and performance figures. The only wall-clock
// sensitivity is the advisory SlowSimulation warning emitted when a run
// approaches the caller's timeout budget.
package contractsim
