package smf

import "fmt"

// DiagnosticKind categorizes why the parser skipped an input line.
type DiagnosticKind int

const (
	// DiagDecodeWarning marks a line that could not be decoded as text.
	DiagDecodeWarning DiagnosticKind = iota
	// DiagMalformedField marks a row dropped because a numeric field
	// failed to parse. The whole row is discarded.
	DiagMalformedField
	// DiagUnknownLine marks a line that matched no known shape.
	DiagUnknownLine
)

// String returns a human-readable kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagDecodeWarning:
		return "DecodeWarning"
	case DiagMalformedField:
		return "MalformedNumericField"
	case DiagUnknownLine:
		return "UnknownLine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Diagnostic records one skipped input line. Format irregularities are
// recovered locally; the parse never aborts because of a single bad
// line, it collects a Diagnostic and continues.
type Diagnostic struct {
	Line   int // 1-based line number in the input
	Kind   DiagnosticKind
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Detail)
}
