// internal/output/output.go
// Result writers for the CLI: a tab-separated text form and the
// versioned JSON form. Unit conversion to the imperial system happens
// here, on output, so the formula packages stay SI-only.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"mechsolver/internal/jsonutil"
	"mechsolver/internal/registry"
	"mechsolver/pkg/api"

	"mechsolver-core/calc"
	"mechsolver-core/materials"
	"mechsolver-core/quantity"
)

// Unit systems accepted by --units.
const (
	UnitsSI       = "si"
	UnitsImperial = "imperial"
)

// ToAPI converts a calculation result into the stable wire schema,
// converting any value with an imperial counterpart when requested.
// Units without a counterpart (rpm, deg, kJ/kg) pass through unchanged.
func ToAPI(module, op string, res calc.Result, units string) (api.ResultV1, error) {
	out := api.ResultV1{Module: module, Op: op, Values: make([]api.ValueV1, 0, len(res))}
	for _, v := range res {
		if v.Label != "" {
			out.Values = append(out.Values, api.ValueV1{Name: v.Name, Label: v.Label})
			continue
		}
		q := v.Quantity
		if units == UnitsImperial {
			if imp, ok := quantity.Imperial(q.Unit); ok {
				conv, err := quantity.ConvertQuantity(q, imp)
				if err != nil {
					return api.ResultV1{}, fmt.Errorf("%s: convert %s: %w", op, q.Unit, err)
				}
				q = conv
			}
		}
		out.Values = append(out.Values, api.ValueV1{Name: v.Name, Value: q.Value, Unit: q.Unit})
	}
	return out, nil
}

// Writer emits results in one format.
type Writer interface {
	WriteResult(r api.ResultV1) error
}

// Formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewWriter picks the writer for a --output value. The format string is
// validated by the flag layer.
func NewWriter(w io.Writer, format string, header bool) Writer {
	if format == FormatJSON {
		return &jsonWriter{w: w}
	}
	return &textWriter{w: w, header: header}
}

type textWriter struct {
	w      io.Writer
	header bool
}

func (t *textWriter) WriteResult(r api.ResultV1) error {
	tw := tabwriter.NewWriter(t.w, 0, 8, 2, ' ', 0)
	if t.header {
		if _, err := fmt.Fprintf(tw, "# %s/%s\n", r.Module, r.Op); err != nil {
			return err
		}
	}
	for _, v := range r.Values {
		var err error
		if v.Label != "" {
			_, err = fmt.Fprintf(tw, "%s\t%s\t\n", v.Name, v.Label)
		} else {
			_, err = fmt.Fprintf(tw, "%s\t%g\t%s\n", v.Name, v.Value, v.Unit)
		}
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

type jsonWriter struct {
	w io.Writer
}

func (j *jsonWriter) WriteResult(r api.ResultV1) error {
	return jsonutil.EncodePretty(j.w, r)
}

// WriteMaterials prints the material table, either as aligned text or as
// a JSON array of MaterialV1 records.
func WriteMaterials(w io.Writer, table *materials.Table, format string) error {
	codes := table.Codes()
	if format == FormatJSON {
		list := make([]api.MaterialV1, 0, len(codes))
		for _, code := range codes {
			rec, err := table.Lookup(code)
			if err != nil {
				return err
			}
			list = append(list, api.MaterialV1{
				Code:                rec.Code,
				Name:                rec.Name,
				Density:             rec.Density,
				ElasticModulusGPa:   rec.ElasticModulusGPa,
				PoissonRatio:        rec.PoissonRatio,
				YieldStrengthMPa:    rec.YieldStrengthMPa,
				UltimateStrengthMPa: rec.UltimateStrengthMPa,
				ThermalConductivity: rec.ThermalConductivity,
				ThermalExpansion:    rec.ThermalExpansion,
				CostPerKg:           rec.CostPerKg,
			})
		}
		return jsonutil.EncodePretty(w, list)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "code\tname\tdensity\tE(GPa)\tyield(MPa)\tultimate(MPa)")
	for _, code := range codes {
		rec, err := table.Lookup(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\n",
			rec.Code, rec.Name, rec.Density, rec.ElasticModulusGPa,
			rec.YieldStrengthMPa, rec.UltimateStrengthMPa)
	}
	return tw.Flush()
}

// WriteCatalog prints the module/operation listing for --list.
func WriteCatalog(w io.Writer, mods []registry.Module) error {
	for _, m := range mods {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Title); err != nil {
			return err
		}
		for _, op := range m.Ops {
			params := make([]string, 0, len(op.Params))
			for _, p := range op.Params {
				s := p.Name
				if p.Optional || p.StrDefault != "" {
					s = "[" + s + "]"
				}
				params = append(params, s)
			}
			if _, err := fmt.Fprintf(w, "  %s\t%s\t%s\n", op.Name, op.Title, strings.Join(params, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
