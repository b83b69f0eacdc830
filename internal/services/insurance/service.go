// Package insurance sizes life and health cover against income, dependents,
// and lifestyle risk, and estimates the premium for closing any gap.
package insurance

import (
	"context"
	"math"

	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/interfaces"
	"github.com/amitrb/finplan/internal/models"
)

// Compile-time interface check
var _ interfaces.InsuranceService = (*Service)(nil)

// premiumUnit is the cover amount one premium rate unit applies to.
const premiumUnit = 1_000_000

// premiumBand holds the (low, high) annual premium per premiumUnit of cover
// for ages up to and including maxAge.
type premiumBand struct {
	maxAge    int
	low, high float64
}

type premiumTable []premiumBand

var (
	lifePremiums = premiumTable{
		{maxAge: 29, low: 500, high: 800},
		{maxAge: 45, low: 800, high: 1200},
		{maxAge: math.MaxInt, low: 1500, high: 2500},
	}
	healthPremiums = premiumTable{
		{maxAge: 29, low: 6000, high: 8000},
		{maxAge: 45, low: 8000, high: 12000},
		{maxAge: math.MaxInt, low: 15000, high: 25000},
	}
)

// Service implements InsuranceService
type Service struct {
	logger *common.Logger
}

// NewService creates a new insurance service
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// ComputeInsuranceGap sizes both cover types and the gap versus existing
// policies. The calculation is pure: identical inputs always yield identical
// assessments.
func (s *Service) ComputeInsuranceGap(_ context.Context, in models.InsuranceInputs) (*models.InsuranceAssessment, error) {
	assessment := &models.InsuranceAssessment{
		Life:   assessCover(requiredLifeCover(in), in.ExistingLifeCover, in.Age, lifePremiums),
		Health: assessCover(requiredHealthCover(in), in.ExistingHealthCover, in.Age, healthPremiums),
	}

	s.logger.Debug().
		Float64("life_gap", assessment.Life.Gap).
		Float64("health_gap", assessment.Health.Gap).
		Msg("Insurance gap computed")

	return assessment, nil
}

// requiredLifeCover is an income multiple scaled by dependent count.
func requiredLifeCover(in models.InsuranceInputs) float64 {
	multiplier := 10.0
	switch {
	case in.Dependents >= 3:
		multiplier = 15
	case in.Dependents >= 1:
		multiplier = 12
	}
	return in.AnnualIncome * multiplier
}

// requiredHealthCover is an age-banded base plus additive loads for
// dependents, city tier, and lifestyle risk flags.
func requiredHealthCover(in models.InsuranceInputs) float64 {
	var base float64
	switch {
	case in.Age < 30:
		base = 1_000_000
	case in.Age <= 45:
		base = 1_500_000
	default:
		base = 2_500_000
	}

	if in.Dependents >= 2 {
		base += 500_000
	}

	switch in.CityTier {
	case models.CityTier1:
		base += 500_000
	case models.CityTier2:
		base += 250_000
	}

	if in.HasRisk(models.RiskSmoking) {
		base += 500_000
	}
	if in.HasRisk(models.RiskSedentary) {
		base += 250_000
	}
	if in.HasRisk(models.RiskHighStress) {
		base += 250_000
	}

	return base
}

// assessCover builds the per-cover result: gap, status, and premium range.
func assessCover(required, existing float64, age int, premiums premiumTable) models.CoverAssessment {
	gap := math.Max(0, required-existing)

	status := models.CoverAdequate
	if gap > 0 {
		status = models.CoverUnderinsured
	}

	low, high := estimatePremium(gap, age, premiums)

	return models.CoverAssessment{
		Required:    required,
		Existing:    existing,
		Gap:         gap,
		Status:      status,
		PremiumLow:  low,
		PremiumHigh: high,
	}
}

// estimatePremium prices the gap in premiumUnit multiples at the age band's
// (low, high) rate. No gap costs nothing.
func estimatePremium(gap float64, age int, premiums premiumTable) (int64, int64) {
	if gap <= 0 {
		return 0, 0
	}

	units := gap / premiumUnit
	for _, band := range premiums {
		if age <= band.maxAge {
			return int64(math.Round(units * band.low)), int64(math.Round(units * band.high))
		}
	}
	return 0, 0
}
