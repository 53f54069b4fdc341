package polynomial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/tiwo/polynomials/ring"
)

// FormatLiteral is a literal representation of the rendering parameters.
// The [NewFormat] function checks the literal and returns the Format.
//
// Variable: the symbol of the variable. It must start with a letter and
// contain only letters, digits and underscores. The empty string selects "x".
type FormatLiteral struct {
	Variable string `json:"variable"`
}

// Format holds checked rendering parameters.
type Format struct {
	variable string
}

// DefaultFormat renders polynomials in the variable x.
var DefaultFormat = Format{variable: "x"}

// NewFormat checks the literal and returns the corresponding Format.
func NewFormat(lit FormatLiteral) (Format, error) {

	if lit.Variable == "" {
		return DefaultFormat, nil
	}

	for i, c := range lit.Variable {
		switch {
		case unicode.IsLetter(c):
		case i > 0 && (unicode.IsDigit(c) || c == '_'):
		default:
			return Format{}, fmt.Errorf("cannot NewFormat: invalid variable %q: must start with a letter and contain only letters, digits and underscores", lit.Variable)
		}
	}

	return Format{variable: lit.Variable}, nil
}

// Variable returns the symbol of the variable.
func (f Format) Variable() string {
	return f.variable
}

// FormatLiteral returns the literal of the Format.
func (f Format) FormatLiteral() FormatLiteral {
	return FormatLiteral{Variable: f.variable}
}

// Equal returns true if the two formats render identically.
func (f Format) Equal(other Format) bool {
	return cmp.Equal(f.FormatLiteral(), other.FormatLiteral())
}

// String renders p in the variable x, see Render.
func (p Polynomial[T]) String() string {
	return p.Render(DefaultFormat)
}

// Render returns the canonical textual form of p, terms in ascending degree
// order without spaces, for example "1+2x+3x^2", "1-x^2" or "-3-6x-9x^2":
//   - the zero polynomial renders as "0";
//   - zero terms are omitted;
//   - a coefficient 1 or -1 is written as "", respectively "-", except in the constant term;
//   - a positive coefficient is preceded by "+" unless it starts the rendering;
//   - x^0 is omitted and x^1 is written as x.
func (p Polynomial[T]) Render(f Format) string {

	if p.IsZero() {
		return "0"
	}

	r := p.r

	var sb strings.Builder

	for e, c := range p.coeffs {

		switch {
		case ring.IsZero(r, c):
			continue
		case ring.IsOne(r, c):
			if e == 0 {
				sb.WriteString("1")
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
		case ring.IsMinusOne(r, c):
			if e == 0 {
				sb.WriteString("-1")
				continue
			}
			sb.WriteByte('-')
		case r.Sign(c) > 0:
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(r.Literal(c))
		default:
			sb.WriteString(r.Literal(c))
		}

		switch e {
		case 0:
		case 1:
			sb.WriteString(f.variable)
		default:
			sb.WriteString(f.variable)
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(e))
		}
	}

	return sb.String()
}
