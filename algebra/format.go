// SPDX-License-Identifier: MIT

// File: format.go
// Role: human-readable and JSON views of an Element.
//
// Text layout, per term in basis order: "<sign> <coeff> <name>", where
//   - sign is "+" for c >= 0 and "-" otherwise,
//   - coeff is |c| rounded to 15 decimals, printed without a fraction when
//     integral and omitted when it equals 1,
//   - name is omitted for the unit term unless |c| == 1.
//
// Terms are joined by single spaces; the zero element prints as "0".
package algebra

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const fmtZero = "0"

// roundCoeff rounds |v| to 15 decimal places.
func roundCoeff(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(math.Abs(v), 'f', 15, 64), 64)
	if err != nil {
		return math.Abs(v)
	}

	return r
}

// formatCoeff prints a rounded magnitude: integral values without a fraction.
func formatCoeff(r float64) string {
	if r == math.Trunc(r) && r < 1e21 {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}

	return strconv.FormatFloat(r, 'g', -1, 64)
}

// String renders e as described in the file comment.
func (e Element) String() string {
	ts := e.Terms()
	if len(ts) == 0 {
		return fmtZero
	}

	parts := make([]string, 0, len(ts))
	var sb strings.Builder
	for _, t := range ts {
		sb.Reset()
		if t.Coeff >= 0 {
			sb.WriteString("+")
		} else {
			sb.WriteString("-")
		}
		r := roundCoeff(t.Coeff)
		if r != 1 {
			sb.WriteString(" ")
			sb.WriteString(formatCoeff(r))
		}
		if t.Name != Unit || r == 1 {
			sb.WriteString(" ")
			sb.WriteString(t.Name)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, " ")
}

// jsonTerm is the wire shape of one term.
type jsonTerm struct {
	Name  string  `json:"name"`
	Coeff float64 `json:"coeff"`
}

// MarshalJSON encodes e as {"terms":[{"name":..,"coeff":..},...]} in basis order.
func (e Element) MarshalJSON() ([]byte, error) {
	ts := e.Terms()
	out := struct {
		Terms []jsonTerm `json:"terms"`
	}{Terms: make([]jsonTerm, len(ts))}
	for i, t := range ts {
		out.Terms[i] = jsonTerm{Name: t.Name, Coeff: t.Coeff}
	}

	return json.Marshal(out)
}
