package quantmark

import (
	"fmt"
	"strconv"
	"strings"
)

// GateRecord is the intermediate form of one parsed gate occurrence. It is
// built from a single gate substring and consumed immediately by
// Materialize; nothing holds on to it afterwards.
type GateRecord struct {
	Name      string
	Targets   []int
	Controls  []int
	Parameter *Parameter
}

// ValidateSyntax reports whether text is a well-formed canonical circuit
// string: the "circuit:" header followed by zero or more gate lines and
// nothing else. Usable as a cheap pre-check independent of ParseCircuit.
func ValidateSyntax(text string) bool {
	return circuitRegex.MatchString(text)
}

// extractQubitList returns the indices inside the named field's brackets.
// A trailing separator, as in "target=(0,)", is tolerated.
func extractQubitList(gateText, field string) ([]int, error) {
	_, area, ok := strings.Cut(gateText, field+"=(")
	if !ok {
		return nil, fmt.Errorf("%w: no %s field in %q", ErrMalformedField, field, gateText)
	}
	area, _, _ = strings.Cut(area, ")")
	parts := strings.Split(area, ",")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	qubits := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s index %q", ErrMalformedField, field, strings.TrimSpace(part))
		}
		qubits = append(qubits, n)
	}
	return qubits, nil
}

// extractParameter returns the parameter field's value, numeric when the
// token parses as a float and symbolic otherwise. Circuits carry either
// fixed angles or yet-unbound named parameters, so both readings are valid.
func extractParameter(gateText string) Parameter {
	_, area, _ := strings.Cut(gateText, "parameter=")
	token, _, _ := strings.Cut(area, ")")
	if value, err := strconv.ParseFloat(token, 64); err == nil {
		return FixedParam(value)
	}
	return SymbolicParam(token)
}

// buildRecord decomposes one gate substring into a GateRecord. Which
// extractors run is decided by the gate kind, not by textual presence, so a
// symbolic token can never be misread as a parameter of a fixed gate.
func buildRecord(gateText string) (GateRecord, error) {
	name, _, _ := strings.Cut(gateText, "(")
	targets, err := extractQubitList(gateText, "target")
	if err != nil {
		return GateRecord{}, err
	}
	rec := GateRecord{Name: name, Targets: targets}
	if strings.Contains(gateText, "control=(") {
		controls, err := extractQubitList(gateText, "control")
		if err != nil {
			return GateRecord{}, err
		}
		rec.Controls = controls
	}
	if GateKind(name).Parametrized() && strings.Contains(gateText, "parameter=") {
		param := extractParameter(gateText)
		rec.Parameter = &param
	}
	return rec, nil
}

func oneTarget(rec GateRecord) (int, error) {
	if len(rec.Targets) != 1 {
		return 0, fmt.Errorf("%w: %s wants one target, got %d", ErrMalformedField, rec.Name, len(rec.Targets))
	}
	return rec.Targets[0], nil
}

func oneAngle(rec GateRecord) (Parameter, error) {
	if rec.Parameter == nil {
		return Parameter{}, fmt.Errorf("%w: %s without a parameter", ErrMalformedField, rec.Name)
	}
	return *rec.Parameter, nil
}

func fixedFromRecord(kind GateKind) func(GateRecord) (Gate, error) {
	return func(rec GateRecord) (Gate, error) {
		target, err := oneTarget(rec)
		if err != nil {
			return Gate{}, err
		}
		return fixedGate(kind, target, rec.Controls), nil
	}
}

func angleFromRecord(kind GateKind) func(GateRecord) (Gate, error) {
	return func(rec GateRecord) (Gate, error) {
		target, err := oneTarget(rec)
		if err != nil {
			return Gate{}, err
		}
		param, err := oneAngle(rec)
		if err != nil {
			return Gate{}, err
		}
		return angleGate(kind, param, target, rec.Controls), nil
	}
}

func swapFromRecord(rec GateRecord) (Gate, error) {
	if len(rec.Targets) != 2 {
		return Gate{}, fmt.Errorf("%w: SWAP wants two targets, got %d", ErrMalformedField, len(rec.Targets))
	}
	return NewSWAP(rec.Targets[0], rec.Targets[1], rec.Controls...), nil
}

// materializers is the closed dispatch table from gate kind to constructor.
var materializers = map[GateKind]func(GateRecord) (Gate, error){
	KindX:     fixedFromRecord(KindX),
	KindY:     fixedFromRecord(KindY),
	KindZ:     fixedFromRecord(KindZ),
	KindH:     fixedFromRecord(KindH),
	KindPhase: angleFromRecord(KindPhase),
	KindRx:    angleFromRecord(KindRx),
	KindRy:    angleFromRecord(KindRy),
	KindRz:    angleFromRecord(KindRz),
	KindSWAP:  swapFromRecord,
}

// Materialize converts a gate record into a concrete gate. A qubit may not
// be a control and a target of the same gate; that is a domain rule, so it
// is checked here for every record, parsed or hand-built.
func Materialize(rec GateRecord) (Gate, error) {
	for _, t := range rec.Targets {
		for _, c := range rec.Controls {
			if t == c {
				return Gate{}, fmt.Errorf("%w: qubit %d in %s", ErrSameControlAndTarget, t, rec.Name)
			}
		}
	}
	build, ok := materializers[GateKind(rec.Name)]
	if !ok {
		return Gate{}, fmt.Errorf("%w: %q", ErrUnsupportedGate, rec.Name)
	}
	return build(rec)
}

// ParseCircuit reconstructs a circuit from its canonical string form.
// The whole input is validated first; on success the body is split into
// gate substrings in printed order and each is rebuilt and appended in
// turn. A valid header with no gates returns (nil, nil): nothing to build,
// distinct from both an error and an empty circuit value. A failed parse
// never yields a partial circuit.
func ParseCircuit(text string) (*Circuit, error) {
	if !ValidateSyntax(text) {
		return nil, ErrInvalidSyntax
	}
	gateTexts := gateRegex.FindAllString(text, -1)
	if len(gateTexts) == 0 {
		return nil, nil
	}
	circuit := &Circuit{}
	for _, gateText := range gateTexts {
		rec, err := buildRecord(gateText)
		if err != nil {
			return nil, err
		}
		gate, err := Materialize(rec)
		if err != nil {
			return nil, err
		}
		circuit.Append(gate)
	}
	return circuit, nil
}
