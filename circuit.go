package quantmark

import (
	"fmt"
	"strings"
)

// Circuit is an ordered composition of gates. It grows only through Append;
// once handed to a caller it is treated as immutable.
type Circuit struct {
	Gates []Gate
}

// Append composes the gate after the existing sequence.
func (c *Circuit) Append(g Gate) {
	c.Gates = append(c.Gates, g)
}

// QubitCount returns the number of qubits the circuit needs: the highest
// referenced index plus one.
func (c *Circuit) QubitCount() int {
	maxQubit := -1
	for _, g := range c.Gates {
		for _, q := range g.qubits() {
			maxQubit = max(maxQubit, q)
		}
	}
	return maxQubit + 1
}

// GateCount returns the number of gates in the circuit.
func (c *Circuit) GateCount() int {
	return len(c.Gates)
}

// ParameterNames returns the distinct unbound parameter names, in first-use
// order.
func (c *Circuit) ParameterNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, g := range c.Gates {
		if g.Parameter == nil || !g.Parameter.IsSymbolic() {
			continue
		}
		if name := g.Parameter.Name(); !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ParameterCount returns the number of distinct unbound parameters.
func (c *Circuit) ParameterCount() int {
	return len(c.ParameterNames())
}

// qubitTuple renders a qubit list the way the canonical printer brackets it:
// a single index keeps a trailing separator, "(0,)", while longer lists read
// "(0, 1)".
func qubitTuple(qubits []int) string {
	if len(qubits) == 1 {
		return fmt.Sprintf("(%d,)", qubits[0])
	}
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("%d", q)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String renders the gate in canonical form, e.g.
// "Rx(target=(0,), control=(1,), parameter=theta)".
func (g Gate) String() string {
	var sb strings.Builder
	sb.WriteString(string(g.Kind))
	sb.WriteString("(target=")
	sb.WriteString(qubitTuple(g.Targets))
	if len(g.Controls) > 0 {
		sb.WriteString(", control=")
		sb.WriteString(qubitTuple(g.Controls))
	}
	if g.Parameter != nil {
		sb.WriteString(", parameter=")
		sb.WriteString(g.Parameter.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// String renders the whole circuit in the canonical format the grammar
// mirrors: a "circuit:" header followed by one gate per line.
func (c *Circuit) String() string {
	var sb strings.Builder
	sb.WriteString(circuitHeader)
	sb.WriteByte('\n')
	for _, g := range c.Gates {
		sb.WriteString(g.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
