package registry

import (
	"fmt"
	"strconv"
	"strings"

	"mechsolver-core/calc"
	"mechsolver-core/kinematics"
)

func kinematicsModule() Module {
	return Module{
		Name:  "kinematics",
		Title: "Kinematics & dynamics",
		Ops: []Op{
			{
				Name: "linear-motion", Title: "Constant-acceleration linear motion", Lite: true,
				Params: []Param{
					{Name: "initial-velocity", Unit: "m/s"},
					{Name: "acceleration", Unit: "m/s2"},
					{Name: "time", Unit: "s"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					m, err := kinematics.LinearMotion(num(in, "initial-velocity"), num(in, "acceleration"), num(in, "time"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("displacement", m.Displacement, "m"),
						calc.V("final-velocity", m.FinalVelocity, "m/s"),
					}, nil
				},
			},
			{
				Name: "linear-from-displacement", Title: "Linear motion solved from displacement",
				Params: []Param{
					{Name: "initial-velocity", Unit: "m/s"},
					{Name: "acceleration", Unit: "m/s2"},
					{Name: "displacement", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					m, err := kinematics.LinearMotionFromDisplacement(num(in, "initial-velocity"), num(in, "acceleration"), num(in, "displacement"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("final-velocity", m.FinalVelocity, "m/s"),
						calc.V("time", m.Time, "s"),
					}, nil
				},
			},
			{
				Name: "angular-motion", Title: "Constant angular acceleration", Lite: true,
				Params: []Param{
					{Name: "initial-omega", Unit: "rad/s"},
					{Name: "alpha", Unit: "rad/s2"},
					{Name: "time", Unit: "s"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					a, err := kinematics.AngularMotion(num(in, "initial-omega"), num(in, "alpha"), num(in, "time"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("angle", a.Angle, "rad"),
						calc.V("final-omega", a.FinalVelocity, "rad/s"),
					}, nil
				},
			},
			{
				Name: "projectile", Title: "Drag-free projectile launched from a height", Lite: true,
				Params: []Param{
					{Name: "velocity", Unit: "m/s"},
					{Name: "angle", Unit: "deg"},
					{Name: "height", Unit: "m", Optional: true},
					{Name: "gravity", Unit: "m/s2", Optional: true, Default: kinematics.StandardGravity},
				},
				Run: func(in Inputs) (calc.Result, error) {
					p, err := kinematics.Projectile(num(in, "velocity"), num(in, "angle"), num(in, "height"), num(in, "gravity"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("max-height", p.MaxHeight, "m"),
						calc.V("range", p.Range, "m"),
						calc.V("time-of-flight", p.TimeOfFlight, "s"),
					}, nil
				},
			},
			{
				Name: "harmonic", Title: "Simple harmonic motion state",
				Params: []Param{
					{Name: "amplitude", Unit: "m"},
					{Name: "frequency", Unit: "Hz"},
					{Name: "time", Unit: "s"},
					{Name: "phase", Unit: "rad", Optional: true},
				},
				Run: func(in Inputs) (calc.Result, error) {
					h, err := kinematics.HarmonicMotion(num(in, "amplitude"), num(in, "frequency"), num(in, "time"), num(in, "phase"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("displacement", h.Displacement, "m"),
						calc.V("velocity", h.Velocity, "m/s"),
						calc.V("acceleration", h.Acceleration, "m/s2"),
						calc.V("period", h.Period, "s"),
						calc.V("angular-frequency", h.AngularFrequency, "rad/s"),
					}, nil
				},
			},
			{
				Name: "four-bar", Title: "Four-bar linkage position",
				Params: []Param{
					{Name: "crank", Unit: "m"},
					{Name: "coupler", Unit: "m"},
					{Name: "rocker", Unit: "m"},
					{Name: "ground", Unit: "m"},
					{Name: "crank-angle", Unit: "deg"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					f, err := kinematics.FourBarPosition(num(in, "crank"), num(in, "coupler"), num(in, "rocker"), num(in, "ground"), num(in, "crank-angle"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("rocker-angle", f.RockerAngleDeg, "deg"),
						calc.V("coupler-angle", f.CouplerAngleDeg, "deg"),
					}, nil
				},
			},
			{
				Name: "gear-train", Title: "Compound gear train ratio",
				Params: []Param{
					{Name: "teeth", Desc: "comma-separated tooth counts, driver first", Free: true},
					{Name: "input-speed", Unit: "rpm"},
					{Name: "efficiency", Optional: true, Default: 1},
				},
				Run: func(in Inputs) (calc.Result, error) {
					teeth, err := parseTeeth(str(in, "teeth"))
					if err != nil {
						return nil, err
					}
					g, err := kinematics.GearTrain(teeth, num(in, "input-speed"), num(in, "efficiency"))
					if err != nil {
						return nil, err
					}
					res := calc.Result{
						calc.V("ratio", g.Ratio, ""),
						calc.V("output-speed", g.OutputSpeed, "rpm"),
						calc.V("overall-efficiency", g.OverallEfficiency, ""),
					}
					for i, v := range g.PitchVelocities {
						res = append(res, calc.V(fmt.Sprintf("pitch-velocity-%d", i+1), v, "m/s"))
					}
					return res, nil
				},
			},
			{
				Name: "cam-lift", Title: "Cam follower displacement",
				Params: []Param{
					{Name: "profile", Choice: []string{kinematics.CamSimpleHarmonic, kinematics.CamCycloidal, kinematics.CamParabolic}},
					{Name: "base-radius", Unit: "m"},
					{Name: "lift", Unit: "m"},
					{Name: "angle", Unit: "deg"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					c, err := kinematics.CamLift(str(in, "profile"), num(in, "base-radius"), num(in, "lift"), num(in, "angle"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("displacement", c.Displacement, "m"),
						calc.V("total-radius", c.TotalRadius, "m"),
					}, nil
				},
			},
		},
	}
}

func parseTeeth(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	teeth := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("gear-train: bad tooth count %q: %w", f, calc.ErrInvalidInput)
		}
		teeth = append(teeth, n)
	}
	return teeth, nil
}
