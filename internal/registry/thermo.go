package registry

import (
	"mechsolver-core/calc"
	"mechsolver-core/thermo"
)

func thermoModule() Module {
	return Module{
		Name:  "thermo",
		Title: "Thermodynamics & heat transfer",
		Ops: []Op{
			{
				Name: "ideal-gas", Title: "Ideal gas law solved for one unknown", Lite: true,
				Params: []Param{
					{Name: "unknown", Choice: []string{thermo.GasPressure, thermo.GasVolume, thermo.GasMoles, thermo.GasTemperature}},
					{Name: "pressure", Unit: "Pa", Optional: true},
					{Name: "volume", Unit: "m3", Optional: true},
					{Name: "moles", Unit: "mol", Optional: true},
					{Name: "temperature", Unit: "K", Optional: true},
					{Name: "gas-constant", Optional: true, Default: thermo.UniversalGasConstant},
				},
				Run: func(in Inputs) (calc.Result, error) {
					g, err := thermo.IdealGas(thermo.IdealGasInput{
						Unknown:     str(in, "unknown"),
						Pressure:    num(in, "pressure"),
						Volume:      num(in, "volume"),
						Moles:       num(in, "moles"),
						Temperature: num(in, "temperature"),
						R:           num(in, "gas-constant"),
					})
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("pressure", g.Pressure, "Pa"),
						calc.V("volume", g.Volume, "m3"),
						calc.V("moles", g.Moles, "mol"),
						calc.V("temperature", g.Temperature, "K"),
					}, nil
				},
			},
			{
				Name: "carnot", Title: "Carnot cycle efficiency",
				Params: []Param{
					{Name: "hot-temp", Unit: "K"},
					{Name: "cold-temp", Unit: "K"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					c, err := thermo.Carnot(num(in, "hot-temp"), num(in, "cold-temp"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("efficiency", c.Efficiency, ""),
						calc.V("efficiency-percent", c.EfficiencyPercent, "%"),
					}, nil
				},
			},
			{
				Name: "conduction", Title: "Plane-wall conduction", Lite: true,
				Params: []Param{
					{Name: "conductivity", Unit: "W/m.K"},
					{Name: "area", Unit: "m2"},
					{Name: "delta-t", Unit: "K"},
					{Name: "thickness", Unit: "m"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					h, err := thermo.Conduction(num(in, "conductivity"), num(in, "area"), num(in, "delta-t"), num(in, "thickness"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("heat-rate", h.Rate, "W"),
						calc.V("thermal-resistance", h.Resistance, "K/W"),
					}, nil
				},
			},
			{
				Name: "convection", Title: "Newton's law of cooling", Lite: true,
				Params: []Param{
					{Name: "coefficient", Unit: "W/m2.K"},
					{Name: "area", Unit: "m2"},
					{Name: "delta-t", Unit: "K"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					h, err := thermo.Convection(num(in, "coefficient"), num(in, "area"), num(in, "delta-t"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("heat-rate", h.Rate, "W"),
						calc.V("thermal-resistance", h.Resistance, "K/W"),
					}, nil
				},
			},
			{
				Name: "radiation", Title: "Stefan-Boltzmann surface exchange", Lite: true,
				Params: []Param{
					{Name: "emissivity"},
					{Name: "area", Unit: "m2"},
					{Name: "t4-difference", Unit: "K4", Desc: "Th^4 - Tc^4"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					h, err := thermo.Radiation(num(in, "emissivity"), num(in, "area"), num(in, "t4-difference"))
					if err != nil {
						return nil, err
					}
					return calc.Result{calc.V("heat-rate", h.Rate, "W")}, nil
				},
			},
			{
				Name: "steam", Title: "Steam state estimate", Lite: true,
				Params: []Param{
					{Name: "temperature", Unit: "degC"},
					{Name: "pressure", Unit: "bar", Optional: true, Default: 1.013},
				},
				Run: func(in Inputs) (calc.Result, error) {
					s, err := thermo.SteamProperties(num(in, "temperature"), num(in, "pressure"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.L("state", s.State),
						calc.V("quality", s.Quality, ""),
						calc.V("enthalpy", s.Enthalpy, "kJ/kg"),
						calc.V("specific-volume", s.SpecificVolume, "m3/kg"),
						calc.V("saturation-temp", s.SaturationTemp, "degC"),
					}, nil
				},
			},
			{
				Name: "psychrometrics", Title: "Moist air properties from wet/dry bulb",
				Params: []Param{
					{Name: "dry-bulb", Unit: "degC"},
					{Name: "wet-bulb", Unit: "degC"},
					{Name: "pressure", Unit: "kPa", Optional: true, Default: 101.325},
				},
				Run: func(in Inputs) (calc.Result, error) {
					m, err := thermo.Psychrometrics(num(in, "dry-bulb"), num(in, "wet-bulb"), num(in, "pressure"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("humidity-ratio", m.HumidityRatio, "kg/kg"),
						calc.V("relative-humidity", m.RelativeHumidity, "%"),
						calc.V("specific-volume", m.SpecificVolume, "m3/kg"),
						calc.V("enthalpy", m.Enthalpy, "kJ/kg"),
						calc.V("dew-point", m.DewPoint, "degC"),
					}, nil
				},
			},
			{
				Name: "refrigeration", Title: "Vapor-compression cycle (R134a)",
				Params: []Param{
					{Name: "evaporator-temp", Unit: "degC"},
					{Name: "condenser-temp", Unit: "degC"},
					{Name: "mass-flow", Unit: "kg/s"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					c, err := thermo.Refrigeration(num(in, "evaporator-temp"), num(in, "condenser-temp"), num(in, "mass-flow"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("compressor-work", c.CompressorWork, "kW"),
						calc.V("cooling-effect", c.CoolingEffect, "kW"),
						calc.V("heat-rejected", c.HeatRejected, "kW"),
						calc.V("cop", c.COP, ""),
					}, nil
				},
			},
			{
				Name: "heat-exchanger", Title: "Counterflow exchanger LMTD sizing",
				Params: []Param{
					{Name: "hot-inlet", Unit: "degC"},
					{Name: "hot-outlet", Unit: "degC"},
					{Name: "cold-inlet", Unit: "degC"},
					{Name: "mass-flow-hot", Unit: "kg/s"},
					{Name: "mass-flow-cold", Unit: "kg/s"},
					{Name: "cp-hot", Unit: "kJ/kg.K", Optional: true, Default: 4.186},
					{Name: "cp-cold", Unit: "kJ/kg.K", Optional: true, Default: 4.186},
					{Name: "overall-htc", Unit: "kW/m2.K"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					x, err := thermo.HeatExchanger(thermo.ExchangerInput{
						HotInlet:   num(in, "hot-inlet"),
						HotOutlet:  num(in, "hot-outlet"),
						ColdInlet:  num(in, "cold-inlet"),
						MassFlowH:  num(in, "mass-flow-hot"),
						MassFlowC:  num(in, "mass-flow-cold"),
						CpHot:      num(in, "cp-hot"),
						CpCold:     num(in, "cp-cold"),
						OverallHTC: num(in, "overall-htc"),
					})
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("duty", x.Duty, "kW"),
						calc.V("cold-outlet", x.ColdOutlet, "degC"),
						calc.V("lmtd", x.LMTD, "K"),
						calc.V("required-area", x.RequiredArea, "m2"),
						calc.V("effectiveness", x.Effectiveness, ""),
						calc.V("ntu", x.NTU, ""),
					}, nil
				},
			},
		},
	}
}
