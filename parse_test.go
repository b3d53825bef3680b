package quantmark

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractQubitList(t *testing.T) {
	tests := []struct {
		gateText string
		field    string
		want     []int
		wantErr  bool
	}{
		{"H(target=(0,))", "target", []int{0}, false},
		{"X(target=(7,), control=(3,))", "target", []int{7}, false},
		{"X(target=(7,), control=(3,))", "control", []int{3}, false},
		{"X(target=(0,), control=(1, 2))", "control", []int{1, 2}, false},
		{"SWAP(target=(4, 9))", "target", []int{4, 9}, false},
		{"SWAP(target=(0, 1), control=())", "control", nil, false},
		{"H(target=(a,))", "target", nil, true},
		{"H(target=(0,))", "control", nil, true},
	}

	for _, tt := range tests {
		got, err := extractQubitList(tt.gateText, tt.field)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedField) {
				t.Errorf("extractQubitList(%q, %q): want ErrMalformedField, got %v", tt.gateText, tt.field, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("extractQubitList(%q, %q): %v", tt.gateText, tt.field, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("extractQubitList(%q, %q) = %v, want %v", tt.gateText, tt.field, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("extractQubitList(%q, %q) = %v, want %v", tt.gateText, tt.field, got, tt.want)
				break
			}
		}
	}
}

func TestExtractParameter(t *testing.T) {
	p := extractParameter("Rx(target=(0,), parameter=1.57)")
	if p.IsSymbolic() || p.Value() != 1.57 {
		t.Errorf("numeric parameter: got %+v", p)
	}

	p = extractParameter("Rx(target=(0,), parameter=theta)")
	if !p.IsSymbolic() || p.Name() != "theta" {
		t.Errorf("symbolic parameter: got %+v", p)
	}
}

func TestBuildRecord(t *testing.T) {
	rec, err := buildRecord("X(target=(0,), control=(1, 2))")
	if err != nil {
		t.Fatalf("buildRecord: %v", err)
	}
	if rec.Name != "X" || len(rec.Targets) != 1 || rec.Targets[0] != 0 {
		t.Errorf("record name/targets: %+v", rec)
	}
	if len(rec.Controls) != 2 || rec.Controls[0] != 1 || rec.Controls[1] != 2 {
		t.Errorf("record controls: %+v", rec)
	}
	if rec.Parameter != nil {
		t.Errorf("fixed gate picked up a parameter: %+v", rec)
	}

	rec, err = buildRecord("Phase(target=(3,), parameter=alpha)")
	if err != nil {
		t.Fatalf("buildRecord: %v", err)
	}
	if rec.Controls != nil {
		t.Errorf("uncontrolled gate has controls: %+v", rec)
	}
	if rec.Parameter == nil || !rec.Parameter.IsSymbolic() || rec.Parameter.Name() != "alpha" {
		t.Errorf("record parameter: %+v", rec)
	}
}

func TestMaterializeDisjointness(t *testing.T) {
	// A qubit may never be control and target at once, for any kind.
	for _, name := range []string{"X", "Y", "Z", "H", "Phase", "Rx", "Ry", "Rz", "SWAP"} {
		rec := GateRecord{Name: name, Targets: []int{0}, Controls: []int{0}}
		if name == "SWAP" {
			rec.Targets = []int{0, 1}
		}
		if name == "Phase" || name == "Rx" || name == "Ry" || name == "Rz" {
			p := FixedParam(0.5)
			rec.Parameter = &p
		}
		_, err := Materialize(rec)
		if !errors.Is(err, ErrSameControlAndTarget) {
			t.Errorf("%s: want ErrSameControlAndTarget, got %v", name, err)
		}
	}
}

func TestMaterializeDispatch(t *testing.T) {
	p := SymbolicParam("theta")

	g, err := Materialize(GateRecord{Name: "H", Targets: []int{0}})
	if err != nil || g.Kind != KindH || g.Targets[0] != 0 {
		t.Errorf("H: gate %+v, err %v", g, err)
	}

	g, err = Materialize(GateRecord{Name: "Rx", Targets: []int{1}, Controls: []int{0}, Parameter: &p})
	if err != nil || g.Kind != KindRx || g.Parameter == nil || g.Parameter.Name() != "theta" {
		t.Errorf("Rx: gate %+v, err %v", g, err)
	}

	g, err = Materialize(GateRecord{Name: "SWAP", Targets: []int{2, 4}})
	if err != nil || g.Kind != KindSWAP || g.Targets[0] != 2 || g.Targets[1] != 4 {
		t.Errorf("SWAP: gate %+v, err %v", g, err)
	}

	_, err = Materialize(GateRecord{Name: "CNOT", Targets: []int{0}})
	if !errors.Is(err, ErrUnsupportedGate) {
		t.Errorf("CNOT: want ErrUnsupportedGate, got %v", err)
	}

	_, err = Materialize(GateRecord{Name: "Rz", Targets: []int{0}})
	if !errors.Is(err, ErrMalformedField) {
		t.Errorf("Rz without parameter: want ErrMalformedField, got %v", err)
	}
}

func TestParseCircuit(t *testing.T) {
	text := "circuit:\nH(target=(0,))\nRx(target=(1,), parameter=0.5)\n"
	c, err := ParseCircuit(text)
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	if c == nil {
		t.Fatal("ParseCircuit returned no circuit")
	}

	info := NewCircuitInfo(c)
	fmt.Printf("Parsed circuit:\n%s", info)

	if info.QubitCount() != 2 {
		t.Errorf("qubit count = %d, want 2", info.QubitCount())
	}
	if info.GateCount() != 2 {
		t.Errorf("gate count = %d, want 2", info.GateCount())
	}
	// 0.5 is a bound numeric angle, not a free parameter.
	if info.ParameterCount() != 0 {
		t.Errorf("parameter count = %d, want 0", info.ParameterCount())
	}
}

func TestParseCircuitEmptySequence(t *testing.T) {
	// A valid header with no gates means nothing to build: no circuit and
	// no error, distinct from an empty circuit value.
	c, err := ParseCircuit("circuit:\n")
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	if c != nil {
		t.Errorf("want absent circuit, got %+v", c)
	}
}

func TestParseCircuitInvalidSyntax(t *testing.T) {
	for _, text := range []string{
		"",
		"H(target=(0,))\n",
		"circuit:\nH(target=(0,)) and more\n",
	} {
		c, err := ParseCircuit(text)
		if !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("ParseCircuit(%q): want ErrInvalidSyntax, got %v", text, err)
		}
		if c != nil {
			t.Errorf("ParseCircuit(%q): partial circuit returned", text)
		}
	}
}

func TestParseCircuitOrderPreserved(t *testing.T) {
	text := "circuit:\nH(target=(0,))\nX(target=(1,))\nZ(target=(0,))\n"
	c, err := ParseCircuit(text)
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}

	want := []GateKind{KindH, KindX, KindZ}
	if len(c.Gates) != len(want) {
		t.Fatalf("gate count = %d, want %d", len(c.Gates), len(want))
	}
	for i, kind := range want {
		if c.Gates[i].Kind != kind {
			t.Errorf("gate %d: kind %s, want %s", i, c.Gates[i].Kind, kind)
		}
	}
}

func TestParseCircuitTrailingSeparator(t *testing.T) {
	c, err := ParseCircuit("circuit:\nX(target=(0,), control=(3,))\n")
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	g := c.Gates[0]
	if len(g.Controls) != 1 || g.Controls[0] != 3 {
		t.Errorf("controls = %v, want [3]", g.Controls)
	}
}

func TestParseCircuitSymbolicParameter(t *testing.T) {
	c, err := ParseCircuit("circuit:\nRy(target=(0,), parameter=theta)\nRy(target=(1,), parameter=1.57)\n")
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}

	symbolic := c.Gates[0].Parameter
	if symbolic == nil || !symbolic.IsSymbolic() || symbolic.Name() != "theta" {
		t.Errorf("symbolic parameter = %+v, want theta", symbolic)
	}
	numeric := c.Gates[1].Parameter
	if numeric == nil || numeric.IsSymbolic() || numeric.Value() != 1.57 {
		t.Errorf("numeric parameter = %+v, want 1.57", numeric)
	}
	if c.ParameterCount() != 1 {
		t.Errorf("parameter count = %d, want 1", c.ParameterCount())
	}
}
