package quantmark

import "regexp"

// circuitHeader is the fixed first line of the canonical circuit format.
const circuitHeader = "circuit:"

// Grammar fragments for the canonical gate format. Each fragment describes
// one printed gate family's exact field ordering and bracket punctuation;
// the whole-circuit pattern and the gate splitter both build on the same
// three fragments, so adding a gate kind touches this block only.
const (
	// controlListPattern matches the contents of a control group: a single
	// index keeps a trailing separator, "(3,)", longer lists read "(1, 2)".
	controlListPattern = `\d+,|\d+(?:, \d+)+`

	// parameterPattern matches a decimal angle (sign and exponent allowed,
	// matching %g output) or a bare symbolic token.
	parameterPattern = `-?\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|[A-Za-z_][A-Za-z0-9_]*`

	// fixedGatePattern matches the non-parametrized one-qubit gates.
	fixedGatePattern = `(?:X|Y|Z|H)\(target=\(\d+,\)(?:, control=\((?:` + controlListPattern + `)\))?\)`

	// paramGatePattern matches the parametrized one-qubit gates.
	paramGatePattern = `(?:Phase|Rx|Ry|Rz)\(target=\(\d+,\)(?:, control=\((?:` + controlListPattern + `)\))?` +
		`, parameter=(?:` + parameterPattern + `)\)`

	// swapGatePattern matches the two-qubit SWAP gate. The printer may emit
	// an empty control group for it, which reads as uncontrolled.
	swapGatePattern = `SWAP\(target=\(\d+, \d+\)(?:, control=\((?:` + controlListPattern + `|)\))?\)`

	gatePattern = `(?:` + fixedGatePattern + `|` + paramGatePattern + `|` + swapGatePattern + `)`
)

// Pre-compiled patterns shared by the validator and the splitter.
var (
	// gateRegex finds individual gate occurrences, left to right.
	gateRegex = regexp.MustCompile(gatePattern)

	// circuitRegex matches a whole well-formed circuit string: the header
	// line, then zero or more gate lines and nothing else. Anchored at both
	// ends so trailing garbage fails.
	circuitRegex = regexp.MustCompile(`^` + circuitHeader + `(?:\n(?:` + gatePattern + `(?:\n|$))*)?$`)
)
