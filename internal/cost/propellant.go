package cost

import "fmt"

// Propellant prices in WYr per kilogram.
var propellantPrices = map[string]float64{
	"H2":       2.7623e-5,
	"O2":       8.1019e-7,
	"MMH":      0.0013117,
	"N2O4":     3.3951e-5,
	"kerosene": 1.1117e-5,
}

// PropellantsCost returns the total cost in WYr of loading the given
// propellant masses (kg, keyed by propellant name).
func PropellantsCost(masses map[string]float64) (float64, error) {
	total := 0.0
	for name, m := range masses {
		price, ok := propellantPrices[name]
		if !ok {
			return 0, fmt.Errorf("no price data for propellant %q", name)
		}
		total += price * m
	}
	return total, nil
}
