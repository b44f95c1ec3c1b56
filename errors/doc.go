// Package errors provides structured error types for the simulation pipeline.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and map onto the wire codes carried by simulation result entries
// via Code. All errors implement the standard error interface and support
// errors.Is/As.
//
// The pipeline never lets an error escape its boundary: every *Error is
// eventually rendered into a result entry with Code, Message, and Field.
package errors
