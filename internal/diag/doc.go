// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostics describe why a Solidity file could not be read as a sequence
// of declarations. They are distinct from lint findings (see internal/rules):
// a file with any error diagnostic is not linted at all.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1xxx for the lexer, SYN2xxx for the parser).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Producers
//
// Producers talk to a Reporter. BagReporter stores into a Bag, which enforces
// an upper bound on the number of stored items and offers Sort and Dedup for
// deterministic output. ReportBuilder lets call sites attach notes before a
// single Emit.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
