// Package wasm provides an error-tolerant pull scanner over the WebAssembly
// binary container format.
//
// Unlike a full decoder, the Scanner only walks section framing: each call to
// Next yields one raw section record, and the caller chooses which payloads
// to interpret via the Parse* functions. Because payload decoding is
// decoupled from framing, a malformed payload in one section never prevents
// later sections from being scanned, which is the property the simulation
// pipeline's best-effort structural report depends on.
//
// The package also includes a small Module encoder for synthesizing binaries
// in tests.
package wasm
