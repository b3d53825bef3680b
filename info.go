package quantmark

import "fmt"

// CircuitInfo is a read-only summary of a finished circuit: the four
// quantities a benchmark report cares about, captured at construction time.
type CircuitInfo struct {
	qubitCount     int
	gateDepth      int
	gateCount      int
	parameterCount int
}

// NewCircuitInfo captures the summary quantities of circuit.
func NewCircuitInfo(circuit *Circuit) CircuitInfo {
	return CircuitInfo{
		qubitCount:     circuit.QubitCount(),
		gateDepth:      circuit.Depth(),
		gateCount:      circuit.GateCount(),
		parameterCount: circuit.ParameterCount(),
	}
}

// QubitCount returns the amount of qubits the circuit needs.
func (i CircuitInfo) QubitCount() int { return i.qubitCount }

// GateDepth returns the gate depth of the circuit.
func (i CircuitInfo) GateDepth() int { return i.gateDepth }

// GateCount returns the amount of gates the circuit uses.
func (i CircuitInfo) GateCount() int { return i.gateCount }

// ParameterCount returns the amount of parameters on the circuit that have
// to be optimized.
func (i CircuitInfo) ParameterCount() int { return i.parameterCount }

// String prints all attributes, one per line.
func (i CircuitInfo) String() string {
	return fmt.Sprintf(
		"QUBIT COUNT:        %d\n"+
			"GATE DEPTH:         %d\n"+
			"GATE COUNT:         %d\n"+
			"PARAMETER COUNT:    %d\n",
		i.qubitCount, i.gateDepth, i.gateCount, i.parameterCount)
}
