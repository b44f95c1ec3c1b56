package simulate

// Request is the transport-agnostic simulate-deploy request.
type Request struct {
	WasmBinary string `json:"wasm_binary"`
	ContractID string `json:"contract_id"`
	Name       string `json:"name"`
}

// Result is the aggregate simulation report, the only externally visible
// output of the pipeline. When Valid is false the cost and performance
// blocks are zeroed placeholders, never partial results.
type Result struct {
	Valid              bool               `json:"valid"`
	Errors             []Error            `json:"errors"`
	Warnings           []Warning          `json:"warnings"`
	GasEstimate        GasEstimate        `json:"gas_estimate"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	ABIPreview         *ABIPreview        `json:"abi_preview"`
	ContractFunctions  []FunctionInfo     `json:"contract_functions"`
}

// Error is one fatal finding attached to a failed simulation.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Warning is one non-fatal finding attached to a simulation result.
type Warning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

// Warning severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// GasEstimate is the deterministic deployment/storage cost estimate.
// Stroops are the fixed-point integer unit; XLM is the display conversion.
type GasEstimate struct {
	TotalCostStroops      int64   `json:"total_cost_stroops"`
	TotalCostXLM          float64 `json:"total_cost_xlm"`
	WasmSizeKB            float64 `json:"wasm_size_kb"`
	ComplexityFactor      float64 `json:"complexity_factor"`
	DeploymentCostStroops int64   `json:"deployment_cost_stroops"`
	StorageCostStroops    int64   `json:"storage_cost_stroops"`
}

// PerformanceMetrics is the externally visible slice of the performance
// analysis, merged with structural counts.
type PerformanceMetrics struct {
	EstimatedExecutionTimeMS uint64    `json:"estimated_execution_time_ms"`
	MemoryEstimateKB         uint64    `json:"memory_estimate_kb"`
	FunctionCount            uint32    `json:"function_count"`
	TableSizeBytes           uint32    `json:"table_size_bytes"`
	DataSectionBytes         uint32    `json:"data_section_bytes"`
	Warnings                 []Warning `json:"warnings"`
}

// ABIPreview summarizes the best-effort interface extraction.
type ABIPreview struct {
	FunctionCount int `json:"function_count"`
	TypeCount     int `json:"type_count"`
}

// FunctionInfo is one best-effort contract function record. Absence of a
// function here does not imply the module lacks it; details are static
// guesses keyed by name, not decoded signatures.
type FunctionInfo struct {
	Name       string `json:"name"`
	ParamCount uint32 `json:"param_count"`
	ReturnType string `json:"return_type,omitempty"`
	IsView     bool   `json:"is_view"`
}

// StructuralReport holds the facts the validator pulled out of the binary
// container, plus every decode error and policy warning found on the way.
// Valid is true exactly when Errors is empty.
type StructuralReport struct {
	Valid              bool
	Errors             []string
	Warnings           []string
	FunctionCount      uint32
	TableCount         uint32
	DataSectionEntries uint32
	MemoryPages        uint64
	ExportNames        []string
	ImportNames        []string
}

// ABIResult is the interface extractor's output. It is an approximation
// layer: extraction never fails the pipeline and never claims authority.
type ABIResult struct {
	Functions []FunctionInfo
	Types     []string
	Errors    []string
}

// PerformanceReport is the performance analyzer's full output. Only part of
// it is copied onto the wire; per-function analyses stay internal.
type PerformanceReport struct {
	EstimatedExecutionTimeMS uint64
	MemoryEstimateKB         uint64
	Warnings                 []Warning
	FunctionAnalysis         []FunctionAnalysis
}

// FunctionAnalysis grades one exported function by name/shape heuristics.
type FunctionAnalysis struct {
	Name           string
	Complexity     string
	Recommendation string
}

// Complexity tiers assigned by the analyzer's ordered rules.
const (
	ComplexityLow     = "low"
	ComplexityMedium  = "medium"
	ComplexityHigh    = "high"
	ComplexityUnknown = "unknown"
)
