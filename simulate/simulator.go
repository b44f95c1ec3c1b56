package simulate

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stellarkit/contract-sim/errors"
)

// Simulator runs the simulation pipeline. It holds no mutable state beyond
// the policy, so one Simulator is safe for concurrent use; every call
// operates on its own buffers and produces its own result.
type Simulator struct {
	policy Policy

	// now is swappable for deterministic budget tests.
	now func() time.Time
}

// New creates a Simulator with the given cost policy.
func New(policy Policy) *Simulator {
	return &Simulator{policy: policy, now: time.Now}
}

// Policy returns the policy the simulator quotes costs against.
func (s *Simulator) Policy() Policy {
	return s.policy
}

// Simulate runs the full pipeline: decode, structural validation, interface
// extraction, cost estimation, performance analysis, and aggregation. It
// never returns an error; every failure path is expressed as a Result with
// Valid false and a populated error list.
func (s *Simulator) Simulate(req Request) (res Result) {
	start := s.now()

	// Any unexpected fault still degrades to a structured invalid result
	// rather than escaping the pipeline boundary.
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("simulation panic", zap.Any("panic", r))
			res = invalidResult(errors.Internal(fmt.Errorf("%v", r)))
		}
	}()

	data, derr := decodeRequest(req)
	if derr != nil {
		Logger().Debug("request rejected", zap.String("code", derr.Code()), zap.String("field", derr.Field))
		return invalidResult(derr)
	}

	rep := ValidateModule(data)
	if !rep.Valid {
		errs := make([]Error, 0, len(rep.Errors))
		for _, msg := range rep.Errors {
			errs = append(errs, Error{
				Code:    "WasmValidationError",
				Message: msg,
				Field:   "wasm_binary",
			})
		}
		res = zeroResult()
		res.Errors = errs
		return res
	}

	abi := ExtractABI(data)
	gas := EstimateGas(len(data), rep, s.policy)
	perf := AnalyzePerformance(len(data), rep, abi, s.policy)

	// Structural warnings come first, in scan order, then performance
	// warnings in analyzer order.
	warnings := make([]Warning, 0, len(rep.Warnings)+len(perf.Warnings)+1)
	for _, msg := range rep.Warnings {
		warnings = append(warnings, Warning{
			Code:     "WasmWarning",
			Message:  msg,
			Severity: SeverityLow,
		})
	}
	warnings = append(warnings, perf.Warnings...)

	if elapsed := s.now().Sub(start); elapsed > s.policy.SoftBudget {
		warnings = append(warnings, Warning{
			Code: "SlowSimulation",
			Message: fmt.Sprintf("Simulation took %dms - approaching %s limit",
				elapsed.Milliseconds(), s.policy.HardBudget),
			Severity: SeverityMedium,
		})
	}

	res = Result{
		Valid:       true,
		Errors:      []Error{},
		Warnings:    warnings,
		GasEstimate: gas,
		PerformanceMetrics: PerformanceMetrics{
			EstimatedExecutionTimeMS: perf.EstimatedExecutionTimeMS,
			MemoryEstimateKB:         perf.MemoryEstimateKB,
			FunctionCount:            rep.FunctionCount,
			TableSizeBytes:           rep.TableCount * 8, // fixed per-table byte estimate
			DataSectionBytes:         rep.DataSectionEntries,
			Warnings:                 []Warning{},
		},
	}

	if len(abi.Types) > 0 {
		res.ABIPreview = &ABIPreview{
			FunctionCount: len(abi.Functions),
			TypeCount:     len(abi.Types),
		}
	}
	if len(abi.Functions) > 0 {
		res.ContractFunctions = abi.Functions
	}

	return res
}

// invalidResult builds a failed result carrying exactly one error entry.
func invalidResult(err *errors.Error) Result {
	res := zeroResult()
	res.Errors = []Error{{
		Code:    err.Code(),
		Message: err.Message(),
		Field:   err.Field,
	}}
	return res
}

// zeroResult is the shape of every failed simulation: zeroed cost and
// performance placeholders, never partial figures.
func zeroResult() Result {
	return Result{
		Valid:    false,
		Errors:   []Error{},
		Warnings: []Warning{},
		PerformanceMetrics: PerformanceMetrics{
			Warnings: []Warning{},
		},
	}
}
