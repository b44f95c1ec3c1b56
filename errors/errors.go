package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred.
type Phase string

const (
	PhaseDecode   Phase = "decode"   // request payload decoding
	PhaseScan     Phase = "scan"     // binary container scanning
	PhasePolicy   Phase = "policy"   // post-scan structural policy checks
	PhaseInternal Phase = "internal" // unexpected faults
)

// Kind categorizes the error.
type Kind string

const (
	KindInvalidEncoding   Kind = "invalid_encoding"
	KindEmptyModule       Kind = "empty_module"
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindInvalidName       Kind = "invalid_name"
	KindParseFailed       Kind = "parse_failed"
	KindNoFunctions       Kind = "no_functions"
	KindInternal          Kind = "internal"
)

// wireCodes maps error kinds to the codes exposed on simulation results.
var wireCodes = map[Kind]string{
	KindInvalidEncoding:   "InvalidBase64",
	KindEmptyModule:       "EmptyWasm",
	KindInvalidIdentifier: "InvalidContractId",
	KindInvalidName:       "InvalidName",
	KindParseFailed:       "WasmValidationError",
	KindNoFunctions:       "WasmValidationError",
	KindInternal:          "InternalError",
}

// Error is the structured error type used throughout the pipeline. It carries
// enough context to be rendered as a simulation error entry without losing
// the underlying cause chain.
type Error struct {
	Phase  Phase
	Kind   Kind
	Field  string // request field the error is attributed to, if any
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by phase and kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Code returns the wire code exposed on simulation results for this error.
func (e *Error) Code() string {
	if code, ok := wireCodes[e.Kind]; ok {
		return code
	}
	return wireCodes[KindInternal]
}

// Message returns the human-readable message for result entries: the detail
// when present, with the cause appended when it adds information.
func (e *Error) Message() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Detail, e.Cause)
	case e.Detail != "":
		return e.Detail
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return string(e.Kind)
	}
}

// Convenience constructors for the pipeline's error vocabulary.

// InvalidEncoding reports a request payload that could not be decoded.
func InvalidEncoding(cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidEncoding,
		Field:  "wasm_binary",
		Detail: "failed to decode base64 WASM binary",
		Cause:  cause,
	}
}

// EmptyModule reports a decoded buffer with no bytes.
func EmptyModule() *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindEmptyModule,
		Field:  "wasm_binary",
		Detail: "WASM binary is empty",
	}
}

// InvalidIdentifier reports a contract ID that fails the identifier grammar.
func InvalidIdentifier(detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidIdentifier,
		Field:  "contract_id",
		Detail: detail,
	}
}

// InvalidName reports an empty display name.
func InvalidName() *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidName,
		Field:  "name",
		Detail: "contract name cannot be empty",
	}
}

// Internal wraps an unexpected fault so it still degrades to a structured
// result entry instead of escaping the pipeline.
func Internal(cause error) *Error {
	return &Error{
		Phase:  PhaseInternal,
		Kind:   KindInternal,
		Detail: "unexpected simulation fault",
		Cause:  cause,
	}
}
