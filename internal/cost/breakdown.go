package cost

import "github.com/lvreuse/boostback/internal/uncertainty"

// Breakdown is the per-flight cost decomposition of one scenario. Every
// field is in WYr; the per-flight fields amortize reused hardware over its
// lifetime.
type Breakdown struct {
	ProdCostPerFlight   float64
	OpsCostPerFlight    float64
	CostPerFlight       float64
	DevCost             float64
	PricePerFlight      float64
	Stage1ProdPerFlight float64
	Stage2ProdPerFlight float64
	CheckoutPerFlight   float64 // vehicle integration and checkout share
	PropsCostPerFlight  float64
	RefurbCostPerFlight float64
}

// ParamsFromScenario reads one element's sampled CER coefficients and cost
// factors from a scenario. Values the scenario does not carry keep their
// nominal 1, so unsampled corrections drop out of the cost formulas.
func ParamsFromScenario(sc uncertainty.Scenario, tag string, f8 float64, count int) ElementParams {
	return ElementParams{
		CER: CERValues{
			DevA:  sc.Value("dev_a_"+tag, 1),
			DevX:  sc.Value("dev_x_"+tag, 1),
			ProdA: sc.Value("prod_a_"+tag, 1),
			ProdX: sc.Value("prod_x_"+tag, 1),
		},
		Factors: ElementCostFactors{
			F1:  sc.Value("f1_"+tag, 1),
			F2:  sc.Value("f2_"+tag, 1),
			F3:  sc.Value("f3_"+tag, 1),
			F8:  f8,
			F10: sc.Value("f10_"+tag, 1),
			F11: sc.Value("f11_"+tag, 1),
			P:   sc.Value("p_"+tag, 1),
		},
		Count: count,
	}
}
