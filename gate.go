package quantmark

// GateKind identifies one of the supported gate kinds. The set is closed:
// the grammar, the constructors and the materializer all enumerate exactly
// these nine values.
type GateKind string

const (
	KindX     GateKind = "X"
	KindY     GateKind = "Y"
	KindZ     GateKind = "Z"
	KindH     GateKind = "H"
	KindPhase GateKind = "Phase"
	KindRx    GateKind = "Rx"
	KindRy    GateKind = "Ry"
	KindRz    GateKind = "Rz"
	KindSWAP  GateKind = "SWAP"
)

// Parametrized reports whether the kind carries a rotation or phase angle.
func (k GateKind) Parametrized() bool {
	switch k {
	case KindPhase, KindRx, KindRy, KindRz:
		return true
	}
	return false
}

// Gate is a single quantum operation: one target qubit (two for SWAP),
// optional control qubits, and an angle for the parametrized kinds.
type Gate struct {
	Kind      GateKind
	Targets   []int
	Controls  []int
	Parameter *Parameter
}

func fixedGate(kind GateKind, target int, controls []int) Gate {
	return Gate{Kind: kind, Targets: []int{target}, Controls: controls}
}

func angleGate(kind GateKind, param Parameter, target int, controls []int) Gate {
	return Gate{Kind: kind, Targets: []int{target}, Controls: controls, Parameter: &param}
}

// NewX returns a Pauli-X gate, controlled when control qubits are given.
func NewX(target int, controls ...int) Gate { return fixedGate(KindX, target, controls) }

// NewY returns a Pauli-Y gate.
func NewY(target int, controls ...int) Gate { return fixedGate(KindY, target, controls) }

// NewZ returns a Pauli-Z gate.
func NewZ(target int, controls ...int) Gate { return fixedGate(KindZ, target, controls) }

// NewH returns a Hadamard gate.
func NewH(target int, controls ...int) Gate { return fixedGate(KindH, target, controls) }

// NewPhase returns a phase gate with the given angle.
func NewPhase(param Parameter, target int, controls ...int) Gate {
	return angleGate(KindPhase, param, target, controls)
}

// NewRx returns an X-rotation gate with the given angle.
func NewRx(param Parameter, target int, controls ...int) Gate {
	return angleGate(KindRx, param, target, controls)
}

// NewRy returns a Y-rotation gate with the given angle.
func NewRy(param Parameter, target int, controls ...int) Gate {
	return angleGate(KindRy, param, target, controls)
}

// NewRz returns a Z-rotation gate with the given angle.
func NewRz(param Parameter, target int, controls ...int) Gate {
	return angleGate(KindRz, param, target, controls)
}

// NewSWAP returns a gate swapping the first and second qubits.
func NewSWAP(first, second int, controls ...int) Gate {
	return Gate{Kind: KindSWAP, Targets: []int{first, second}, Controls: controls}
}

// qubits returns every qubit index the gate references.
func (g Gate) qubits() []int {
	qs := make([]int, 0, len(g.Targets)+len(g.Controls))
	qs = append(qs, g.Targets...)
	qs = append(qs, g.Controls...)
	return qs
}

// References reports whether the gate acts on or is conditioned on qubit.
func (g Gate) References(qubit int) bool {
	for _, t := range g.Targets {
		if t == qubit {
			return true
		}
	}
	for _, c := range g.Controls {
		if c == qubit {
			return true
		}
	}
	return false
}

// IsControlled reports whether the gate has any control qubits.
func (g Gate) IsControlled() bool { return len(g.Controls) > 0 }
