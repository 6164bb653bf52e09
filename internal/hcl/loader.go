package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/lvreuse/boostback/internal/config"
	"github.com/lvreuse/boostback/internal/ctxlog"
	"github.com/lvreuse/boostback/internal/schema"
	"github.com/lvreuse/boostback/internal/strategy"
)

// Loader implements config.Loader for HCL study files.
type Loader struct {
	parser  *hclparse.Parser
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL study loader.
func NewLoader() *Loader {
	return &Loader{
		parser:  hclparse.NewParser(),
		evalCtx: evalContext(),
	}
}

// evalContext builds the expression scope study files are evaluated in.
// The built-in trajectories are exposed under missions.<name>, so a custom
// mission block can reuse a catalog delta-v without restating the constant:
//
//	mission "LEO_heavy" {
//	  dv      = missions.leo.dv
//	  payload = 50e3
//	}
func evalContext() *hcl.EvalContext {
	missions := make(map[string]cty.Value)
	for _, name := range strategy.MissionNames() {
		m, err := strategy.MissionByName(name)
		if err != nil {
			continue
		}
		missions[strings.ToLower(name)] = cty.ObjectVal(map[string]cty.Value{
			"dv":      cty.NumberFloatVal(m.DV),
			"payload": cty.NumberFloatVal(m.Payload),
		})
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"missions": cty.ObjectVal(missions),
		},
	}
}

// Load parses one study file and translates it into the format-agnostic
// model. The loader itself is the Decoder for the analysis option bodies it
// hands out.
func (l *Loader) Load(ctx context.Context, path string) (*config.Study, config.Decoder, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading study file...", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var f schema.File
	if diags := gohcl.DecodeBody(file.Body, l.evalCtx, &f); diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode study file %s: %w", path, diags)
	}
	if len(f.Studies) != 1 {
		return nil, nil, fmt.Errorf("study file %s must define exactly one study block, found %d", path, len(f.Studies))
	}

	study := translate(f.Studies[0], f.Missions, f.Technologies)
	logger.Debug("Study file loaded.", "study", study.Name, "analyses", len(study.Analyses))
	return study, l, nil
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(s *schema.Study, missions []*schema.Mission, techs []*schema.Technology) *config.Study {
	out := &config.Study{
		Name:       s.Name,
		Samples:    s.Samples,
		Seed:       config.DefaultSeed,
		Mission:    s.Mission,
		Technology: s.Technology,
	}
	if s.Seed != nil {
		out.Seed = *s.Seed
	}
	for _, a := range s.Analyses {
		out.Analyses = append(out.Analyses, &config.Analysis{
			Kind:    a.Kind,
			Name:    a.Name,
			Options: a.Body,
		})
	}
	for _, m := range missions {
		out.Missions = append(out.Missions, config.Mission{
			Name:    m.Name,
			DV:      m.DV,
			Payload: m.Payload,
		})
	}
	for _, t := range techs {
		out.Technologies = append(out.Technologies, config.Technology{
			Name:        t.Name,
			Stage:       t.Stage,
			Fuel:        t.Fuel,
			Oxidizer:    t.Oxidizer,
			OFMassRatio: t.OFMassRatio,
			Cycle:       t.Cycle,
			NumEngines:  t.NumEngines,
			C:           append([]float64(nil), t.C...),
			E:           append([]float64(nil), t.E...),
		})
	}
	return out
}

// DecodeOptions binds an analysis block's options body to the kind's own
// options struct. Unknown attributes and type mismatches are decode errors.
func (l *Loader) DecodeOptions(body hcl.Body, target any) error {
	if body == nil {
		return nil
	}
	if diags := gohcl.DecodeBody(body, l.evalCtx, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode analysis options: %w", diags)
	}
	return nil
}
