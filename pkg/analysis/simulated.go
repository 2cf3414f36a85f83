package analysis

import (
	"context"
	"math/rand/v2"

	"github.com/lavanyassgit/Medicine-AI/entities"
)

type thresholdCheck struct {
	kind      entities.CheckKind
	threshold int
	pass      string
	fail      string
}

var simulatedChecks = []thresholdCheck{
	{entities.CheckPackaging, 75, "Packaging intact and sealed", "Packaging shows signs of tampering"},
	{entities.CheckLabeling, 80, "Label text and batch details legible", "Label details are unclear or inconsistent"},
	{entities.CheckPhysicalAttributes, 85, "Color, shape and size match reference", "Physical attributes deviate from reference"},
	{entities.CheckAuthentication, 70, "Security features verified", "Security features could not be verified"},
}

// SimulatedProvider draws a score uniformly in [70,100) and derives the
// sub-checks from fixed thresholds.
type SimulatedProvider struct {
	intN func(n int) int
}

// NewSimulatedProvider uses intN as its source of randomness; nil means
// math/rand/v2.
func NewSimulatedProvider(intN func(n int) int) *SimulatedProvider {
	if intN == nil {
		intN = rand.IntN
	}
	return &SimulatedProvider{intN: intN}
}

func (p *SimulatedProvider) Analyze(ctx context.Context, _ Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	score := 70 + p.intN(30)
	checks := make(entities.AnalysisDetails, len(simulatedChecks))
	for _, c := range simulatedChecks {
		result := entities.CheckResult{Status: "passed", Score: score, Details: c.pass}
		if score <= c.threshold {
			result.Status = "warning"
			result.Details = c.fail
		}
		checks[c.kind] = result
	}

	issues := []string{}
	if score < 80 {
		issues = append(issues, IssuePackaging)
	}
	return Result{Score: score, Checks: checks, Issues: issues}, nil
}
