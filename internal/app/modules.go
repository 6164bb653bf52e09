package app

import (
	"github.com/lvreuse/boostback/analyses/cost_breakdown"
	"github.com/lvreuse/boostback/analyses/cost_ratio"
	"github.com/lvreuse/boostback/analyses/cpf_validation"
	"github.com/lvreuse/boostback/analyses/dv_mission_sweep"
	"github.com/lvreuse/boostback/analyses/m_payload_sweep"
	"github.com/lvreuse/boostback/analyses/perf_compare"
	"github.com/lvreuse/boostback/analyses/reuse_npv"
	"github.com/lvreuse/boostback/analyses/reuse_sweep"
	"github.com/lvreuse/boostback/analyses/sensitivity"
	"github.com/lvreuse/boostback/analyses/stage_mass_ratio_sweep"
	"github.com/lvreuse/boostback/analyses/strategy_compare"
	"github.com/lvreuse/boostback/internal/registry"
)

// coreModules is the definitive list of all analysis kinds that are compiled
// into the boostback binary.
var coreModules = []registry.Module{
	&cost_breakdown.Module{},
	&cost_ratio.Module{},
	&cpf_validation.Module{},
	&dv_mission_sweep.Module{},
	&m_payload_sweep.Module{},
	&perf_compare.Module{},
	&reuse_npv.Module{},
	&reuse_sweep.Module{},
	&sensitivity.Module{},
	&stage_mass_ratio_sweep.Module{},
	&strategy_compare.Module{},
}
