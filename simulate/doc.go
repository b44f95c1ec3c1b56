// Package simulate implements the pre-deployment simulation pipeline for
// Soroban contract binaries.
//
// The pipeline is strictly sequential; each stage consumes the previous
// stage's immutable output:
//
//  1. decode      base64 request payload to raw module bytes
//  2. validate    structural scan of the binary container
//  3. extract     best-effort ABI preview
//  4. estimate    deterministic gas cost in stroops
//  5. analyze     heuristic performance report
//  6. aggregate   merge everything into one Result
//
// A failed decode or an invalid structure short-circuits the pipeline: the
// Result carries zeroed cost and performance blocks, never partial figures.
// The interface extractor can never fail the pipeline; at worst it
// contributes an empty preview.
//
// No stage performs I/O or reads shared mutable state, so concurrent
// simulations need no coordination. The only wall-clock dependency is the
// aggregator's advisory SlowSimulation budget check.
package simulate
