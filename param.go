package quantmark

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parameter is a rotation or phase angle. It is either fixed (a float64
// value) or symbolic (a named placeholder left unbound for later
// optimization).
type Parameter struct {
	value    float64
	name     string
	symbolic bool
}

// FixedParam returns a parameter bound to a numeric angle.
func FixedParam(value float64) Parameter {
	return Parameter{value: value}
}

// SymbolicParam returns an unbound parameter identified by name.
func SymbolicParam(name string) Parameter {
	return Parameter{name: name, symbolic: true}
}

// IsSymbolic reports whether the parameter is an unbound placeholder.
func (p Parameter) IsSymbolic() bool { return p.symbolic }

// Value returns the numeric angle. Zero for symbolic parameters.
func (p Parameter) Value() float64 { return p.value }

// Name returns the placeholder name. Empty for fixed parameters.
func (p Parameter) Name() string { return p.name }

// String renders the parameter the way the canonical printer expects it:
// the bare name for symbolic parameters, %g formatting otherwise.
func (p Parameter) String() string {
	if p.symbolic {
		return p.name
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// ParseParamExpr parses a single angle expression, supporting plain numbers
// and pi expressions. Returns the parsed value and true on success.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func ParseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Try plain number first
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	// Try pi expression
	s = strings.ToLower(s)
	if matches := piExprRegex.FindStringSubmatch(s); matches != nil {
		negative := matches[1] == "-"
		coeffStr := matches[2]
		denomStr := matches[3]

		coeff := 1.0
		if coeffStr != "" {
			var err error
			coeff, err = strconv.ParseFloat(coeffStr, 64)
			if err != nil {
				return 0, false
			}
		}

		result := coeff * math.Pi

		if denomStr != "" {
			denom, err := strconv.ParseFloat(denomStr, 64)
			if err != nil || denom == 0 {
				return 0, false
			}
			result /= denom
		}

		if negative {
			result = -result
		}
		return result, true
	}

	return 0, false
}

// FormatParam formats an angle for display, using pi notation when possible.
// Recognizes common pi fractions: pi, pi/2, pi/4, pi/3, pi/6, pi/8, 2pi, 3pi/4, etc.
func FormatParam(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return strconv.FormatFloat(val, 'g', -1, 64)
}
