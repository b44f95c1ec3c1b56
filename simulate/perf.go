package simulate

import (
	"fmt"
	"strings"

	"github.com/stellarkit/contract-sim/wasm"
)

// Performance warning codes.
const (
	CodeLargeWasm   = "LARGE_WASM"
	CodeHighMemory  = "HIGH_MEMORY"
	CodeManyTables  = "MANY_TABLES"
	CodeManyImports = "MANY_IMPORTS"
	CodeLargeData   = "LARGE_DATA"
)

// Warning trigger thresholds. Each condition is independent; any subset of
// warnings may fire for a given module.
const (
	largeWasmKB         = 100
	highMemoryPages     = 512
	manyTablesCount     = 10
	manyImportsCount    = 5
	largeDataEntryCount = 50
)

// AnalyzePerformance derives execution and memory estimates from structural
// facts and grades every exported function with the ordered complexity rules.
func AnalyzePerformance(size int, rep StructuralReport, abi ABIResult, pol Policy) PerformanceReport {
	sizeKB := uint64(size) / 1024

	report := PerformanceReport{
		EstimatedExecutionTimeMS: pol.BaseMSPerKB * max(sizeKB, 1),
		MemoryEstimateKB:         rep.MemoryPages * wasm.PageSizeKB,
	}

	if sizeKB > largeWasmKB {
		report.Warnings = append(report.Warnings, Warning{
			Code:     CodeLargeWasm,
			Message:  fmt.Sprintf("WASM size is %d KB - consider optimizing", sizeKB),
			Severity: SeverityMedium,
		})
	}
	if rep.MemoryPages > highMemoryPages {
		report.Warnings = append(report.Warnings, Warning{
			Code:     CodeHighMemory,
			Message:  fmt.Sprintf("Memory allocation is %d pages - may exceed typical limits", rep.MemoryPages),
			Severity: SeverityHigh,
		})
	}
	if rep.TableCount > manyTablesCount {
		report.Warnings = append(report.Warnings, Warning{
			Code:     CodeManyTables,
			Message:  fmt.Sprintf("%d tables detected - may impact performance", rep.TableCount),
			Severity: SeverityLow,
		})
	}

	for _, name := range rep.ExportNames {
		report.FunctionAnalysis = append(report.FunctionAnalysis, analyzeFunction(name, abi))
	}

	if len(rep.ImportNames) > manyImportsCount {
		report.Warnings = append(report.Warnings, Warning{
			Code:     CodeManyImports,
			Message:  fmt.Sprintf("%d imported functions - consider bundling", len(rep.ImportNames)),
			Severity: SeverityLow,
		})
	}
	if rep.DataSectionEntries > largeDataEntryCount {
		report.Warnings = append(report.Warnings, Warning{
			Code:     CodeLargeData,
			Message:  fmt.Sprintf("Large data section (%d entries) - consider lazy loading", rep.DataSectionEntries),
			Severity: SeverityMedium,
		})
	}

	return report
}

// complexityRule classifies a function by name and its ABI preview entry, if
// one exists. Rules are evaluated in order; the first match wins.
type complexityRule func(name string, abiFn *FunctionInfo) (FunctionAnalysis, bool)

// complexityRules is the ordered rule list. The order is the tie-break: an
// accessor-looking name wins over a parameter-count judgment even when both
// would match.
var complexityRules = []complexityRule{
	// Read-only accessors are cheap regardless of anything else.
	func(name string, _ *FunctionInfo) (FunctionAnalysis, bool) {
		if strings.HasPrefix(name, "get_") || strings.Contains(name, "_view") {
			return FunctionAnalysis{Name: name, Complexity: ComplexityLow}, true
		}
		return FunctionAnalysis{}, false
	},
	// Names suggesting iteration or batch processing.
	func(name string, _ *FunctionInfo) (FunctionAnalysis, bool) {
		if strings.Contains(name, "iterate") || strings.Contains(name, "batch") {
			return FunctionAnalysis{
				Name:           name,
				Complexity:     ComplexityHigh,
				Recommendation: "Consider adding pagination for large datasets",
			}, true
		}
		return FunctionAnalysis{}, false
	},
	// Wide parameter lists on a matched preview entry.
	func(name string, abiFn *FunctionInfo) (FunctionAnalysis, bool) {
		if abiFn != nil && abiFn.ParamCount > 5 {
			return FunctionAnalysis{
				Name:           name,
				Complexity:     ComplexityMedium,
				Recommendation: "Consider grouping parameters into structs",
			}, true
		}
		return FunctionAnalysis{}, false
	},
	// Any other matched preview entry is assumed cheap.
	func(name string, abiFn *FunctionInfo) (FunctionAnalysis, bool) {
		if abiFn != nil {
			return FunctionAnalysis{Name: name, Complexity: ComplexityLow}, true
		}
		return FunctionAnalysis{}, false
	},
}

func analyzeFunction(name string, abi ABIResult) FunctionAnalysis {
	var abiFn *FunctionInfo
	for i := range abi.Functions {
		if abi.Functions[i].Name == name {
			abiFn = &abi.Functions[i]
			break
		}
	}

	for _, rule := range complexityRules {
		if analysis, ok := rule(name, abiFn); ok {
			return analysis
		}
	}
	return FunctionAnalysis{Name: name, Complexity: ComplexityUnknown}
}
