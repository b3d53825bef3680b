package quantmark

import "testing"

func TestValidateSyntax(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"header only", "circuit:\n", true},
		{"header without newline", "circuit:", true},
		{"single fixed gate", "circuit:\nH(target=(0,))\n", true},
		{"fixed gate with control", "circuit:\nX(target=(0,), control=(1,))\n", true},
		{"fixed gate with two controls", "circuit:\nX(target=(0,), control=(1, 2))\n", true},
		{"rotation with numeric parameter", "circuit:\nRx(target=(1,), parameter=0.5)\n", true},
		{"rotation with symbolic parameter", "circuit:\nRy(target=(0,), parameter=theta)\n", true},
		{"rotation with exponent parameter", "circuit:\nRz(target=(0,), parameter=1e-07)\n", true},
		{"phase with control and parameter", "circuit:\nPhase(target=(0,), control=(2,), parameter=1.57)\n", true},
		{"swap", "circuit:\nSWAP(target=(0, 1))\n", true},
		{"swap with control", "circuit:\nSWAP(target=(0, 1), control=(2,))\n", true},
		{"swap with empty control group", "circuit:\nSWAP(target=(0, 1), control=())\n", true},
		{"several gates", "circuit:\nH(target=(0,))\nRx(target=(1,), parameter=0.5)\nSWAP(target=(0, 1))\n", true},
		{"no trailing newline", "circuit:\nH(target=(0,))", true},

		{"empty string", "", false},
		{"missing header", "H(target=(0,))\n", false},
		{"wrong header", "qubits:\nH(target=(0,))\n", false},
		{"trailing garbage", "circuit:\nH(target=(0,))\nnot a gate\n", false},
		{"leading garbage", "junk\ncircuit:\nH(target=(0,))\n", false},
		{"gates glued together", "circuit:\nH(target=(0,))X(target=(1,))\n", false},
		{"unknown gate name", "circuit:\nQ(target=(0,))\n", false},
		{"fixed gate with parameter", "circuit:\nH(target=(0,), parameter=0.5)\n", false},
		{"rotation without parameter", "circuit:\nRx(target=(0,))\n", false},
		{"fields out of order", "circuit:\nX(control=(1,), target=(0,))\n", false},
		{"swap with one target", "circuit:\nSWAP(target=(0,))\n", false},
		{"one-qubit gate with two targets", "circuit:\nH(target=(0, 1))\n", false},
		{"non-numeric index", "circuit:\nH(target=(a,))\n", false},
	}

	for _, tt := range tests {
		if got := ValidateSyntax(tt.text); got != tt.valid {
			t.Errorf("%s: ValidateSyntax(%q) = %v, want %v", tt.name, tt.text, got, tt.valid)
		}
	}
}

// The validator must agree with the parser: it returns true exactly when
// ParseCircuit does not fail.
func TestValidatorMatchesParser(t *testing.T) {
	inputs := []string{
		"circuit:\n",
		"circuit:\nH(target=(0,))\n",
		"circuit:\nX(target=(0,), control=(1, 2))\nRz(target=(2,), parameter=beta)\n",
		"circuit:\nSWAP(target=(0, 1), control=(3,))\n",
		"",
		"circuit:\nH(target=(0,)) trailing\n",
		"H(target=(0,))\n",
		"circuit:\nRx(target=(0,))\n",
	}

	for _, text := range inputs {
		_, err := ParseCircuit(text)
		if valid := ValidateSyntax(text); valid == (err != nil) {
			t.Errorf("ValidateSyntax(%q) = %v but ParseCircuit error = %v", text, valid, err)
		}
	}
}
