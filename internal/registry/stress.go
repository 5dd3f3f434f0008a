package registry

import (
	"mechsolver-core/calc"
	"mechsolver-core/stress"
)

func stressModule() Module {
	return Module{
		Name:  "stress",
		Title: "Stress & strain analysis",
		Ops: []Op{
			{
				Name: "normal", Title: "Normal stress F/A", Lite: true,
				Params: []Param{
					{Name: "force", Unit: "N"},
					{Name: "area", Unit: "m2"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := stress.Normal(num(in, "force"), num(in, "area"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("normal-stress", s, "Pa")}, nil
				},
			},
			{
				Name: "shear", Title: "Average shear stress", Lite: true,
				Params: []Param{
					{Name: "force", Unit: "N"},
					{Name: "area", Unit: "m2"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := stress.Shear(num(in, "force"), num(in, "area"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("shear-stress", s, "Pa")}, nil
				},
			},
			{
				Name: "strain", Title: "Engineering strain", Lite: true,
				Params: []Param{
					{Name: "delta-length", Unit: "m"},
					{Name: "original-length", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					e, err := stress.Strain(num(in, "delta-length"), num(in, "original-length"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("strain", e, "")}, nil
				},
			},
			{
				Name: "strain-from-stress", Title: "Hookean strain from stress",
				Params: []Param{
					{Name: "stress", Unit: "Pa"},
					{Name: "elastic-modulus", Unit: "Pa"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					e, err := stress.StrainFromStress(num(in, "stress"), num(in, "elastic-modulus"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("strain", e, "")}, nil
				},
			},
			{
				Name: "bending", Title: "Bending stress Mc/I", Lite: true,
				Params: []Param{
					{Name: "moment", Unit: "N.m"},
					{Name: "distance", Unit: "m"},
					{Name: "inertia", Unit: "m4"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := stress.Bending(num(in, "moment"), num(in, "distance"), num(in, "inertia"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("bending-stress", s, "Pa")}, nil
				},
			},
			{
				Name: "torsion", Title: "Torsional shear Tr/J", Lite: true,
				Params: []Param{
					{Name: "torque", Unit: "N.m"},
					{Name: "radius", Unit: "m"},
					{Name: "polar-moment", Unit: "m4"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := stress.Torsion(num(in, "torque"), num(in, "radius"), num(in, "polar-moment"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("torsional-stress", s, "Pa")}, nil
				},
			},
			{
				Name: "principal", Title: "Principal stresses for a plane state", Lite: true,
				Params: []Param{
					{Name: "sigma-x", Unit: "Pa"},
					{Name: "sigma-y", Unit: "Pa"},
					{Name: "tau-xy", Unit: "Pa"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					p, err := stress.Principal(num(in, "sigma-x"), num(in, "sigma-y"), num(in, "tau-xy"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("sigma-1", p.Sigma1, "Pa"),
						calc.V("sigma-2", p.Sigma2, "Pa"),
						calc.V("tau-max", p.TauMax, "Pa"),
						calc.V("principal-angle", p.AngleDeg, "deg"),
					}, nil
				},
			},
			{
				Name: "von-mises", Title: "Von Mises equivalent stress", Lite: true,
				Params: []Param{
					{Name: "sigma-x", Unit: "Pa"},
					{Name: "sigma-y", Unit: "Pa"},
					{Name: "tau-xy", Unit: "Pa"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					v, err := stress.VonMises(num(in, "sigma-x"), num(in, "sigma-y"), num(in, "tau-xy"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("von-mises-stress", v, "Pa")}, nil
				},
			},
			{
				Name: "beam-deflection", Title: "Simply supported / cantilever deflection",
				Params: []Param{
					{Name: "load", Unit: "N"},
					{Name: "length", Unit: "m"},
					{Name: "elastic-modulus", Unit: "Pa"},
					{Name: "inertia", Unit: "m4"},
					{Name: "load-case", Choice: []string{stress.LoadPointCenter, stress.LoadPointEnd, stress.LoadUniform}},
				},
				Run: func(in Inputs) (calc.Result, error) {
					b, err := stress.BeamDeflection(num(in, "load"), num(in, "length"), num(in, "elastic-modulus"), num(in, "inertia"), str(in, "load-case"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("max-deflection", b.MaxDeflection, "m"),
						calc.V("max-moment", b.MaxMoment, "N.m"),
					}, nil
				},
			},
			{
				Name: "pressure-vessel", Title: "Membrane stresses in a pressure vessel",
				Params: []Param{
					{Name: "pressure", Unit: "Pa"},
					{Name: "radius", Unit: "m"},
					{Name: "thickness", Unit: "m"},
					{Name: "kind", Choice: []string{stress.VesselThinCylinder, stress.VesselThickCylinder, stress.VesselSphere}},
				},
				Run: func(in Inputs) (calc.Result, error) {
					v, err := stress.PressureVessel(num(in, "pressure"), num(in, "radius"), num(in, "thickness"), str(in, "kind"))
					if err != nil {
						return nil, err
					}
					res := calc.Result{calc.V("hoop-stress", v.HoopStress, "Pa")}
					switch v.Kind {
					case stress.VesselThinCylinder:
						res = append(res,
							calc.V("longitudinal-stress", v.LongitudinalStress, "Pa"),
							calc.V("von-mises-stress", v.VonMisesStress, "Pa"))
					case stress.VesselThickCylinder:
						res = append(res,
							calc.V("hoop-stress-outer", v.HoopStressOuter, "Pa"),
							calc.V("radial-stress-inner", v.RadialStressInner, "Pa"))
					case stress.VesselSphere:
						res = append(res, calc.V("von-mises-stress", v.VonMisesStress, "Pa"))
					}
					return res, nil
				},
			},
			{
				Name: "fatigue", Title: "Modified Goodman fatigue assessment",
				Params: []Param{
					{Name: "stress-max", Unit: "Pa"},
					{Name: "stress-min", Unit: "Pa"},
					{Name: "ultimate-strength", Unit: "Pa"},
					{Name: "endurance-limit", Unit: "Pa"},
					{Name: "surface-factor", Optional: true, Default: 0.9},
					{Name: "size-factor", Optional: true, Default: 0.95},
					{Name: "reliability-factor", Optional: true, Default: 0.897},
				},
				Run: func(in Inputs) (calc.Result, error) {
					f, err := stress.Fatigue(stress.FatigueInput{
						StressMax:         num(in, "stress-max"),
						StressMin:         num(in, "stress-min"),
						UltimateStrength:  num(in, "ultimate-strength"),
						EnduranceLimit:    num(in, "endurance-limit"),
						SurfaceFactor:     num(in, "surface-factor"),
						SizeFactor:        num(in, "size-factor"),
						ReliabilityFactor: num(in, "reliability-factor"),
					})
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("safety-factor", f.SafetyFactor, ""),
						calc.V("modified-endurance", f.ModifiedEndurance, "Pa"),
						calc.V("stress-amplitude", f.StressAmplitude, "Pa"),
						calc.V("mean-stress", f.MeanStress, "Pa"),
						calc.V("cycles-to-failure", f.CyclesToFailure, ""),
					}, nil
				},
			},
			{
				Name: "thermal", Title: "Constrained thermal stress",
				Params: []Param{
					{Name: "delta-t", Unit: "K"},
					{Name: "expansion-coeff", Unit: "1/K"},
					{Name: "elastic-modulus", Unit: "Pa"},
					{Name: "constraint", Choice: []string{stress.ConstraintFull, stress.ConstraintPartial}, StrDefault: stress.ConstraintFull, Optional: true},
				},
				Run: func(in Inputs) (calc.Result, error) {
					t, err := stress.Thermal(num(in, "delta-t"), num(in, "expansion-coeff"), num(in, "elastic-modulus"), str(in, "constraint"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("thermal-stress", t.Stress, "Pa"),
						calc.V("residual-strain", t.Strain, ""),
					}, nil
				},
			},
			{
				Name: "lamina", Title: "Composite lamina transformed moduli",
				Params: []Param{
					{Name: "e1", Unit: "Pa"},
					{Name: "e2", Unit: "Pa"},
					{Name: "nu12"},
					{Name: "g12", Unit: "Pa"},
					{Name: "theta", Unit: "deg"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					l, err := stress.Lamina(num(in, "e1"), num(in, "e2"), num(in, "nu12"), num(in, "g12"), num(in, "theta"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("ex", l.Ex, "Pa"),
						calc.V("ey", l.Ey, "Pa"),
						calc.V("gxy", l.Gxy, "Pa"),
						calc.V("nu-xy", l.NuXY, ""),
					}, nil
				},
			},
		},
	}
}
