// Package planner computes retirement plans: the corpus required at
// retirement, the monthly contribution to reach it, and the risk-blended
// asset allocation of that contribution.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/interfaces"
	"github.com/amitrb/finplan/internal/models"
)

// Compile-time interface check
var _ interfaces.PlannerService = (*Service)(nil)

// ErrInvalidHorizon is returned when the accumulation or retirement horizon
// is shorter than one year, which leaves the simulations undefined.
var ErrInvalidHorizon = errors.New("invalid retirement horizon")

// Service implements PlannerService
type Service struct {
	assumptions models.Assumptions
	logger      *common.Logger
}

// NewService creates a new planner service with the given assumptions.
func NewService(assumptions models.Assumptions, logger *common.Logger) *Service {
	return &Service{
		assumptions: assumptions,
		logger:      logger,
	}
}

// Assumptions returns the economic assumptions the engine runs with.
func (s *Service) Assumptions() models.Assumptions {
	return s.assumptions
}

// ComputeRetirementPlan computes the full retirement plan for the inputs.
// The calculation is pure: identical inputs always yield identical plans.
func (s *Service) ComputeRetirementPlan(_ context.Context, in models.RetirementInputs) (*models.RetirementPlan, error) {
	a := s.assumptions

	yearsToRetirement := in.YearsToRetirement()
	retirementYears := a.LifeExpectancy - in.RetirementAge

	if yearsToRetirement < 1 {
		return nil, fmt.Errorf("%w: years to retirement must be at least 1, got %d", ErrInvalidHorizon, yearsToRetirement)
	}
	if retirementYears < 1 {
		return nil, fmt.Errorf("%w: retirement age %d leaves no years before life expectancy %d", ErrInvalidHorizon, in.RetirementAge, a.LifeExpectancy)
	}

	annualAtRetirement := annualExpenseAtRetirement(in.MonthlyExpenseToday, a.Inflation, yearsToRetirement)

	var requiredCorpus float64
	switch in.SpendingStyle {
	case models.SpendingInflationProtected:
		requiredCorpus = requiredCorpusInflationProtected(annualAtRetirement, a.PostRetirementReturn, a.Inflation, retirementYears)
	default:
		requiredCorpus = requiredCorpusNominal(annualAtRetirement, a.PostRetirementReturn, retirementYears)
	}

	annualReturn := portfolioReturn(a, in.UserRisk)
	requiredSIP := requiredMonthlySIP(requiredCorpus, in.CurrentSavings, yearsToRetirement, annualReturn)

	isBehind := in.CurrentMonthlyInvestment < float64(requiredSIP)
	minStartSIP := minStartSIPForOvershoot(float64(requiredSIP), yearsToRetirement, a.SIPStepUp, a.OvershootFactor)
	canRecover := in.CurrentMonthlyInvestment >= float64(minStartSIP)

	systemRisk := systemRiskLevel(yearsToRetirement, isBehind)
	blendedRisk := blendRisk(in.UserRisk, systemRisk)

	progress := 1.0
	if requiredCorpus > 0 {
		progress = math.Min(in.CurrentSavings/requiredCorpus, 1.0)
	}

	plan := &models.RetirementPlan{
		RequiredCorpus:     requiredCorpus,
		RequiredMonthlySIP: requiredSIP,
		IsBehind:           isBehind,
		MinStartSIP:        minStartSIP,
		CanRecover:         canRecover,
		SystemRisk:         systemRisk,
		BlendedRisk:        blendedRisk,
		Allocation:         allocationAmounts(requiredSIP, blendedRisk),
		CatchUpPath:        catchUpPath(in.CurrentMonthlyInvestment, requiredSIP, yearsToRetirement, a.SIPStepUp, a.OvershootFactor),
		ProgressRatio:      progress,
		YearsToRetirement:  yearsToRetirement,
		RetirementYears:    retirementYears,
		Assumptions:        a,
	}

	s.logger.Debug().
		Float64("required_corpus", plan.RequiredCorpus).
		Int64("required_sip", plan.RequiredMonthlySIP).
		Bool("is_behind", plan.IsBehind).
		Int("blended_risk", plan.BlendedRisk).
		Msg("Retirement plan computed")

	return plan, nil
}
