// Package interfaces defines service contracts for finplan
package interfaces

import (
	"context"

	"github.com/amitrb/finplan/internal/models"
)

// PlannerService computes retirement plans
type PlannerService interface {
	// ComputeRetirementPlan computes the full retirement plan for the inputs.
	// Inputs must already be boundary-validated; the engine only guards
	// horizon feasibility (ErrInvalidHorizon).
	ComputeRetirementPlan(ctx context.Context, inputs models.RetirementInputs) (*models.RetirementPlan, error)

	// Assumptions returns the economic assumptions the engine runs with.
	Assumptions() models.Assumptions

	// RenderAllocationChart renders the plan's monthly allocation as a PNG donut.
	RenderAllocationChart(plan *models.RetirementPlan) ([]byte, error)

	// RenderCatchUpChart renders current vs required vs catch-up SIP as a PNG line chart.
	RenderCatchUpChart(plan *models.RetirementPlan, currentMonthlyInvestment float64) ([]byte, error)
}

// InsuranceService computes insurance coverage gaps
type InsuranceService interface {
	// ComputeInsuranceGap sizes life and health cover, the gap versus
	// existing policies, and the premium estimate for closing it.
	ComputeInsuranceGap(ctx context.Context, inputs models.InsuranceInputs) (*models.InsuranceAssessment, error)
}

// Cache stores serialized calculation results keyed by request digest.
// Entries are recomputable pure-function outputs, never user records.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Close() error
}
