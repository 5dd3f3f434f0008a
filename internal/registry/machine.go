package registry

import (
	"mechsolver-core/calc"
	"mechsolver-core/machine"
)

func machineModule() Module {
	return Module{
		Name:  "machine",
		Title: "Machine element design",
		Ops: []Op{
			{
				Name: "gear-design", Title: "Spur gear pair sizing (Lewis)", Lite: true,
				Params: []Param{
					{Name: "power", Unit: "kW"},
					{Name: "speed", Unit: "rpm"},
					{Name: "ratio"},
					{Name: "material-strength", Unit: "MPa"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					g, err := machine.GearDesign(num(in, "power"), num(in, "speed"), num(in, "ratio"), num(in, "material-strength"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("module", g.Module, "mm"),
						calc.V("pinion-teeth", float64(g.PinionTeeth), ""),
						calc.V("gear-teeth", float64(g.GearTeeth), ""),
						calc.V("pinion-diameter", g.PinionDiameter, "mm"),
						calc.V("gear-diameter", g.GearDiameter, "mm"),
						calc.V("center-distance", g.CenterDistance, "mm"),
						calc.V("face-width", g.FaceWidth, "mm"),
						calc.V("pitch-line-velocity", g.PitchLineVelocity, "m/s"),
						calc.V("tangential-force", g.TangentialForce, "N"),
						calc.V("beam-strength", g.BeamStrength, "N"),
						calc.V("wear-strength", g.WearStrength, "N"),
						calc.V("power-rating", g.PowerRating, "kW"),
					}, nil
				},
			},
			{
				Name: "shaft-design", Title: "ASME equivalent-moment shaft sizing", Lite: true,
				Params: []Param{
					{Name: "torque", Unit: "N.m"},
					{Name: "bending-moment", Unit: "N.m"},
					{Name: "yield-strength", Unit: "MPa"},
					{Name: "fatigue-strength", Unit: "MPa", Optional: true, Desc: "0 uses 0.5 x yield"},
					{Name: "safety-factor", Optional: true, Default: 2},
					{Name: "stress-concentration", Optional: true, Default: 1.5},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := machine.ShaftDesign(num(in, "torque"), num(in, "bending-moment"),
						num(in, "yield-strength"), num(in, "fatigue-strength"),
						num(in, "safety-factor"), num(in, "stress-concentration"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("required-diameter", s.RequiredDiameter, "m"),
						calc.V("actual-diameter", s.ActualDiameter, "m"),
						calc.V("equivalent-moment", s.EquivalentMoment, "N.m"),
						calc.V("max-stress", s.MaxStressMPa, "MPa"),
						calc.V("safety-factor", s.SafetyFactor, ""),
					}, nil
				},
			},
			{
				Name: "belt-drive", Title: "Open belt drive sizing", Lite: true,
				Params: []Param{
					{Name: "power", Unit: "kW"},
					{Name: "driver-speed", Unit: "rpm"},
					{Name: "driven-speed", Unit: "rpm"},
					{Name: "center-distance", Unit: "m"},
					{Name: "kind", Choice: []string{machine.BeltV, machine.BeltFlat}, StrDefault: machine.BeltV, Optional: true},
				},
				Run: func(in Inputs) (calc.Result, error) {
					b, err := machine.BeltDrive(num(in, "power"), num(in, "driver-speed"),
						num(in, "driven-speed"), num(in, "center-distance"), str(in, "kind"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("driver-diameter", b.DriverDiameter, "m"),
						calc.V("driven-diameter", b.DrivenDiameter, "m"),
						calc.V("belt-length", b.BeltLength, "m"),
						calc.V("belt-speed", b.BeltSpeed, "m/s"),
						calc.V("wrap-angle-driver", b.WrapAngleDriver, "deg"),
						calc.V("wrap-angle-driven", b.WrapAngleDriven, "deg"),
						calc.V("tight-tension", b.TightTension, "N"),
						calc.V("slack-tension", b.SlackTension, "N"),
						calc.V("belts-required", float64(b.BeltsRequired), ""),
					}, nil
				},
			},
			{
				Name: "bearing-life", Title: "Rolling bearing rating life", Lite: true,
				Params: []Param{
					{Name: "load", Unit: "N"},
					{Name: "speed", Unit: "rpm"},
					{Name: "dynamic-capacity", Unit: "N"},
					{Name: "reliability", Optional: true, Default: 0.90},
					{Name: "kind", Choice: []string{machine.BearingBall, machine.BearingRoller}, StrDefault: machine.BearingBall, Optional: true},
				},
				Run: func(in Inputs) (calc.Result, error) {
					b, err := machine.BearingLife(num(in, "load"), num(in, "speed"),
						num(in, "dynamic-capacity"), num(in, "reliability"), str(in, "kind"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("basic-rating-life", b.BasicRatingLife, "Mrev"),
						calc.V("adjusted-life", b.AdjustedLife, "Mrev"),
						calc.V("life-hours", b.LifeHours, "h"),
						calc.V("reliability-factor", b.ReliabilityFactor, ""),
					}, nil
				},
			},
			{
				Name: "spring-design", Title: "Helical compression spring sizing", Lite: true,
				Params: []Param{
					{Name: "load", Unit: "N"},
					{Name: "deflection", Unit: "m"},
					{Name: "wire-diameter", Unit: "m"},
					{Name: "shear-modulus", Unit: "Pa", Optional: true, Desc: "0 uses steel 79.3 GPa"},
					{Name: "ultimate-strength", Unit: "Pa", Optional: true, Desc: "0 uses 1200 MPa"},
					{Name: "safety-factor", Optional: true, Default: 1.5},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := machine.SpringDesign(num(in, "load"), num(in, "deflection"),
						num(in, "wire-diameter"), num(in, "shear-modulus"),
						num(in, "ultimate-strength"), num(in, "safety-factor"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("coil-diameter", s.CoilDiameter, "m"),
						calc.V("spring-index", s.SpringIndex, ""),
						calc.V("active-coils", s.ActiveCoils, ""),
						calc.V("total-coils", s.TotalCoils, ""),
						calc.V("free-length", s.FreeLength, "m"),
						calc.V("solid-length", s.SolidLength, "m"),
						calc.V("spring-rate", s.SpringRate, "N/m"),
						calc.V("max-shear-stress", s.MaxShearStress, "Pa"),
						calc.V("stress-safety-factor", s.StressSafetyFactor, ""),
					}, nil
				},
			},
			{
				Name: "power-screw", Title: "Acme power screw torque and efficiency", Lite: true,
				Params: []Param{
					{Name: "axial-load", Unit: "N"},
					{Name: "mean-diameter", Unit: "m"},
					{Name: "pitch", Unit: "m"},
					{Name: "thread-friction", Optional: true, Default: 0.15},
					{Name: "collar-friction", Optional: true, Default: 0.12},
					{Name: "collar-diameter", Unit: "m", Optional: true, Desc: "0 uses 1.5 x mean diameter"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					p, err := machine.PowerScrew(num(in, "axial-load"), num(in, "mean-diameter"),
						num(in, "pitch"), num(in, "thread-friction"),
						num(in, "collar-friction"), num(in, "collar-diameter"))
					if err != nil {
						return nil, err
					}
					selfLocking := 0.0
					if p.SelfLocking {
						selfLocking = 1
					}
					return calc.Result{
						calc.V("raising-torque", p.RaisingTorque, "N.m"),
						calc.V("lowering-torque", p.LoweringTorque, "N.m"),
						calc.V("screw-torque", p.ScrewTorque, "N.m"),
						calc.V("collar-torque", p.CollarTorque, "N.m"),
						calc.V("efficiency", p.Efficiency, "%"),
						calc.V("lead-angle", p.LeadAngleDeg, "deg"),
						calc.V("self-locking", selfLocking, ""),
					}, nil
				},
			},
		},
	}
}
