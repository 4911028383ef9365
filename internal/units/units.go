// Package units normalises scenario quantities to the canonical units the
// engines work in: MW, GWh, million USD and Mt CO2.
package units

import (
	"fmt"
	"strings"
)

// Canonical units.
const (
	MW    = "MW"
	GWh   = "GWh"
	MUSD  = "m$"
	MtCO2 = "Mt CO2"
)

var (
	power     = map[string]float64{"kW": 1e-3, "MW": 1, "GW": 1e3}
	energy    = map[string]float64{"MWh": 1e-3, "GWh": 1, "TWh": 1e3}
	money     = map[string]float64{"USD": 1e-6, "k$": 1e-3, "m$": 1, "B$": 1e3}
	emissions = map[string]float64{"t CO2": 1e-6, "kt CO2": 1e-3, "Mt CO2": 1}
)

// Power converts value in unit to MW. Unknown or empty units are taken as MW.
func Power(value float64, unit string) float64 { return scale(power, value, unit) }

// Energy converts value in unit to GWh.
func Energy(value float64, unit string) float64 { return scale(energy, value, unit) }

// Money converts value in unit to million USD.
func Money(value float64, unit string) float64 { return scale(money, value, unit) }

// Emissions converts value in unit to Mt CO2.
func Emissions(value float64, unit string) float64 { return scale(emissions, value, unit) }

func scale(table map[string]float64, value float64, unit string) float64 {
	if f, ok := table[strings.TrimSpace(unit)]; ok {
		return value * f
	}
	return value
}

// Kind names a unit family for validation messages.
type Kind string

const (
	KindPower     Kind = "power"
	KindEnergy    Kind = "energy"
	KindMoney     Kind = "money"
	KindEmissions Kind = "emissions"
)

// Check reports an error when unit is not a known unit of kind.
func Check(kind Kind, unit string) error {
	var table map[string]float64
	switch kind {
	case KindPower:
		table = power
	case KindEnergy:
		table = energy
	case KindMoney:
		table = money
	case KindEmissions:
		table = emissions
	default:
		return fmt.Errorf("unknown unit kind %q", kind)
	}
	if _, ok := table[unit]; !ok {
		return fmt.Errorf("unknown %s unit %q", kind, unit)
	}
	return nil
}
