package quantmark

import "errors"

// Parse and construction failures. ParseCircuit and Materialize wrap these
// with detail; match with errors.Is.
var (
	// ErrInvalidSyntax means the input does not conform to the circuit
	// grammar from the header onward. No partial circuit is returned.
	ErrInvalidSyntax = errors.New("invalid circuit syntax")

	// ErrMalformedField means a field matched the grammar's bracket shape
	// but its contents could not be interpreted.
	ErrMalformedField = errors.New("malformed gate field")

	// ErrSameControlAndTarget means a qubit appears as both a control and a
	// target of the same gate.
	ErrSameControlAndTarget = errors.New("same control and target qubit")

	// ErrUnsupportedGate means a gate name outside the supported set reached
	// the materializer. The grammar rejects such names, so seeing this error
	// indicates the grammar and the dispatch table have drifted apart.
	ErrUnsupportedGate = errors.New("unsupported gate kind")
)
