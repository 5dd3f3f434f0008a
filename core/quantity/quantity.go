// core/quantity/quantity.go
// PhysicalQuantity: a numeric value tagged with a unit, plus the fixed
// SI ↔ Imperial conversion table. Tables are package literals, read-only
// after init, safe to share without synchronization.
package quantity

import (
	"errors"
	"fmt"
)

// ErrUnsupportedUnit flags a conversion pair that is not tabulated.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// Quantity keeps a value and its unit together.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

func (q Quantity) String() string {
	if q.Unit == "" {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// conv is one directed conversion: out = in*Factor + Offset.
// Offset is zero for every pair except the affine °C ↔ °F pair.
type conv struct {
	Factor float64
	Offset float64
}

type pair struct{ From, To string }

// Directed conversion table. Each SI/Imperial pair appears in both
// directions so round trips stay exact up to float rounding.
var convTable = map[pair]conv{
	{"m", "ft"}:           {Factor: 1 / 0.3048},
	{"ft", "m"}:           {Factor: 0.3048},
	{"m2", "ft2"}:         {Factor: 1 / (0.3048 * 0.3048)},
	{"ft2", "m2"}:         {Factor: 0.3048 * 0.3048},
	{"m3", "ft3"}:         {Factor: 1 / (0.3048 * 0.3048 * 0.3048)},
	{"ft3", "m3"}:         {Factor: 0.3048 * 0.3048 * 0.3048},
	{"m/s", "ft/s"}:       {Factor: 1 / 0.3048},
	{"ft/s", "m/s"}:       {Factor: 0.3048},
	{"N", "lbf"}:          {Factor: 1 / 4.4482216152605},
	{"lbf", "N"}:          {Factor: 4.4482216152605},
	{"Pa", "psi"}:         {Factor: 1 / 6894.757293168},
	{"psi", "Pa"}:         {Factor: 6894.757293168},
	{"N.m", "lbf.ft"}:     {Factor: 1 / 1.3558179483314},
	{"lbf.ft", "N.m"}:     {Factor: 1.3558179483314},
	{"kg", "lb"}:          {Factor: 1 / 0.45359237},
	{"lb", "kg"}:          {Factor: 0.45359237},
	{"kg/m3", "lb/ft3"}:   {Factor: 0.3048 * 0.3048 * 0.3048 / 0.45359237},
	{"lb/ft3", "kg/m3"}:   {Factor: 0.45359237 / (0.3048 * 0.3048 * 0.3048)},
	{"W", "hp"}:           {Factor: 1 / 745.69987158227},
	{"hp", "W"}:           {Factor: 745.69987158227},
	{"J", "BTU"}:          {Factor: 1 / 1055.05585262},
	{"BTU", "J"}:          {Factor: 1055.05585262},
	{"degC", "degF"}:      {Factor: 9.0 / 5.0, Offset: 32},
	{"degF", "degC"}:      {Factor: 5.0 / 9.0, Offset: -32 * 5.0 / 9.0},
	{"m3/s", "ft3/s"}:     {Factor: 1 / (0.3048 * 0.3048 * 0.3048)},
	{"ft3/s", "m3/s"}:     {Factor: 0.3048 * 0.3048 * 0.3048},
}

// imperialOf maps an SI unit to its tabulated Imperial counterpart.
var imperialOf = map[string]string{
	"m":     "ft",
	"m2":    "ft2",
	"m3":    "ft3",
	"m/s":   "ft/s",
	"N":     "lbf",
	"Pa":    "psi",
	"N.m":   "lbf.ft",
	"kg":    "lb",
	"kg/m3": "lb/ft3",
	"W":     "hp",
	"J":     "BTU",
	"degC":  "degF",
	"m3/s":  "ft3/s",
}

// Convert maps value from one unit to another using the fixed table.
func Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	c, ok := convTable[pair{from, to}]
	if !ok {
		return 0, fmt.Errorf("convert: %s -> %s: %w", from, to, ErrUnsupportedUnit)
	}
	return value*c.Factor + c.Offset, nil
}

// ConvertQuantity converts q into the target unit, preserving the tag.
func ConvertQuantity(q Quantity, to string) (Quantity, error) {
	v, err := Convert(q.Value, q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: to}, nil
}

// Imperial reports the Imperial counterpart of an SI unit, if tabulated.
func Imperial(unit string) (string, bool) {
	u, ok := imperialOf[unit]
	return u, ok
}

// SIPairs lists every SI unit with an Imperial counterpart (for tests/menus).
func SIPairs() []string {
	out := make([]string, 0, len(imperialOf))
	for si := range imperialOf {
		out = append(out, si)
	}
	return out
}
