package registry

import (
	"mechsolver-core/calc"
	"mechsolver-core/fluids"
)

func fluidsModule() Module {
	return Module{
		Name:  "fluids",
		Title: "Fluid mechanics",
		Ops: []Op{
			{
				Name: "reynolds", Title: "Reynolds number and flow regime", Lite: true,
				Params: []Param{
					{Name: "density", Unit: "kg/m3"},
					{Name: "velocity", Unit: "m/s"},
					{Name: "length", Unit: "m", Desc: "characteristic length or pipe diameter"},
					{Name: "viscosity", Unit: "Pa.s"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					re, err := fluids.Reynolds(num(in, "density"), num(in, "velocity"), num(in, "length"), num(in, "viscosity"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("reynolds-number", re, ""),
						calc.L("regime", fluids.Regime(re)),
					}, nil
				},
			},
			{
				Name: "head-loss", Title: "Darcy-Weisbach head loss", Lite: true,
				Params: []Param{
					{Name: "friction-factor"},
					{Name: "length", Unit: "m"},
					{Name: "diameter", Unit: "m"},
					{Name: "velocity", Unit: "m/s"},
					{Name: "sum-k", Optional: true, Desc: "sum of minor-loss coefficients"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					h, err := fluids.HeadLoss(num(in, "friction-factor"), num(in, "length"), num(in, "diameter"), num(in, "velocity"), num(in, "sum-k"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("major-loss", h.MajorLoss, "m"),
						calc.V("minor-loss", h.MinorLoss, "m"),
						calc.V("total-loss", h.TotalLoss, "m"),
					}, nil
				},
			},
			{
				Name: "velocity-from-flow", Title: "Mean velocity in a circular pipe",
				Params: []Param{
					{Name: "flow-rate", Unit: "m3/s"},
					{Name: "diameter", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					v, err := fluids.VelocityFromFlow(num(in, "flow-rate"), num(in, "diameter"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("velocity", v, "m/s")}, nil
				},
			},
			{
				Name: "flow-rate", Title: "Volumetric flow Q = vA", Lite: true,
				Params: []Param{
					{Name: "velocity", Unit: "m/s"},
					{Name: "area", Unit: "m2"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					q, err := fluids.FlowRate(num(in, "velocity"), num(in, "area"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("flow-rate", q, "m3/s")}, nil
				},
			},
			{
				Name: "pump-power", Title: "Pump hydraulic and shaft power",
				Params: []Param{
					{Name: "flow-rate", Unit: "m3/s"},
					{Name: "head", Unit: "m"},
					{Name: "efficiency"},
					{Name: "density", Unit: "kg/m3", Optional: true, Default: 1000},
				},
				Run: func(in Inputs) (calc.Result, error) {
					p, err := fluids.PumpPower(num(in, "flow-rate"), num(in, "head"), num(in, "efficiency"), num(in, "density"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("hydraulic-power", p.HydraulicPower, "W"),
						calc.V("shaft-power", p.ShaftPower, "W"),
					}, nil
				},
			},
			{
				Name: "orifice", Title: "Sharp-edged orifice discharge",
				Params: []Param{
					{Name: "pressure-diff", Unit: "Pa"},
					{Name: "diameter", Unit: "m"},
					{Name: "discharge-coeff", Optional: true, Default: 0.61},
					{Name: "density", Unit: "kg/m3", Optional: true, Default: 1000},
				},
				Run: func(in Inputs) (calc.Result, error) {
					o, err := fluids.Orifice(num(in, "pressure-diff"), num(in, "diameter"), num(in, "discharge-coeff"), num(in, "density"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("velocity", o.Velocity, "m/s"),
						calc.V("flow-rate", o.FlowRate, "m3/s"),
					}, nil
				},
			},
			{
				Name: "drag", Title: "Aerodynamic drag force",
				Params: []Param{
					{Name: "velocity", Unit: "m/s"},
					{Name: "density", Unit: "kg/m3"},
					{Name: "area", Unit: "m2"},
					{Name: "drag-coeff"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					d, err := fluids.Drag(num(in, "velocity"), num(in, "density"), num(in, "area"), num(in, "drag-coeff"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("drag-force", d.Force, "N"),
						calc.V("dynamic-pressure", d.DynamicPressure, "Pa"),
					}, nil
				},
			},
			{
				Name: "nozzle-thrust", Title: "Nozzle momentum and pressure thrust",
				Params: []Param{
					{Name: "mass-flow", Unit: "kg/s"},
					{Name: "exit-velocity", Unit: "m/s"},
					{Name: "exit-pressure", Unit: "Pa"},
					{Name: "ambient-pressure", Unit: "Pa"},
					{Name: "exit-area", Unit: "m2"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					t, err := fluids.NozzleThrust(num(in, "mass-flow"), num(in, "exit-velocity"), num(in, "exit-pressure"), num(in, "ambient-pressure"), num(in, "exit-area"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("momentum-thrust", t.MomentumThrust, "N"),
						calc.V("pressure-thrust", t.PressureThrust, "N"),
						calc.V("total-thrust", t.TotalThrust, "N"),
					}, nil
				},
			},
			{
				Name: "bernoulli", Title: "Energy balance between two points", Lite: true,
				Params: []Param{
					{Name: "height-1", Unit: "m"},
					{Name: "velocity-1", Unit: "m/s"},
					{Name: "pressure-1", Unit: "Pa"},
					{Name: "height-2", Unit: "m"},
					{Name: "known", Desc: "the given member of the v2/p2 pair"},
					{Name: "density", Unit: "kg/m3", Optional: true, Default: 1000},
					{Name: "solve-for", Choice: []string{fluids.SolveVelocity, fluids.SolvePressure}},
				},
				Run: func(in Inputs) (calc.Result, error) {
					b, err := fluids.Bernoulli(num(in, "height-1"), num(in, "velocity-1"), num(in, "pressure-1"),
						num(in, "height-2"), num(in, "known"), num(in, "density"), str(in, "solve-for"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("velocity-2", b.Velocity, "m/s"),
						calc.V("pressure-2", b.Pressure, "Pa"),
					}, nil
				},
			},
			{
				Name: "open-channel", Title: "Manning uniform flow in a rectangular channel",
				Params: []Param{
					{Name: "width", Unit: "m"},
					{Name: "depth", Unit: "m"},
					{Name: "slope"},
					{Name: "manning-n", Optional: true, Default: 0.013},
				},
				Run: func(in Inputs) (calc.Result, error) {
					c, err := fluids.OpenChannel(num(in, "width"), num(in, "depth"), num(in, "slope"), num(in, "manning-n"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("flow-rate", c.FlowRate, "m3/s"),
						calc.V("velocity", c.Velocity, "m/s"),
						calc.V("froude-number", c.FroudeNumber, ""),
						calc.L("flow-type", c.FlowType),
					}, nil
				},
			},
			{
				Name: "weir", Title: "Discharge over a weir crest",
				Params: []Param{
					{Name: "kind", Choice: []string{fluids.WeirRectangular, fluids.WeirVNotch}},
					{Name: "width", Unit: "m", Optional: true, Desc: "crest width, rectangular only"},
					{Name: "head", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					w, err := fluids.Weir(str(in, "kind"), num(in, "width"), num(in, "head"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("flow-rate", w.FlowRate, "m3/s"),
						calc.V("discharge-coeff", w.DischargeCoeff, ""),
					}, nil
				},
			},
			{
				Name: "wave", Title: "Linear wave dispersion",
				Params: []Param{
					{Name: "wavelength", Unit: "m"},
					{Name: "depth", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					w, err := fluids.Wave(num(in, "wavelength"), num(in, "depth"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("wave-speed", w.WaveSpeed, "m/s"),
						calc.V("group-velocity", w.GroupVelocity, "m/s"),
						calc.V("period", w.Period, "s"),
						calc.V("frequency", w.Frequency, "Hz"),
					}, nil
				},
			},
		},
	}
}
