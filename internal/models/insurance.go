package models

import "fmt"

// CityTier classifies the cost tier of the user's city.
type CityTier string

const (
	CityTier1 CityTier = "Tier_1"
	CityTier2 CityTier = "Tier_2"
	CityTier3 CityTier = "Tier_3"
)

// Valid reports whether the city tier is one of the known values.
func (c CityTier) Valid() bool {
	return c == CityTier1 || c == CityTier2 || c == CityTier3
}

// LifestyleRisk is a known lifestyle risk factor.
type LifestyleRisk string

const (
	RiskSmoking    LifestyleRisk = "smoking"
	RiskSedentary  LifestyleRisk = "sedentary"
	RiskHighStress LifestyleRisk = "high_stress"
)

// Valid reports whether the lifestyle risk is one of the known values.
func (r LifestyleRisk) Valid() bool {
	return r == RiskSmoking || r == RiskSedentary || r == RiskHighStress
}

// CoverStatus indicates whether existing cover meets the requirement.
type CoverStatus string

const (
	CoverAdequate     CoverStatus = "Adequate"
	CoverUnderinsured CoverStatus = "Underinsured"
)

// InsuranceInputs are the raw inputs for an insurance gap calculation.
type InsuranceInputs struct {
	Age                 int             `json:"age"`
	AnnualIncome        float64         `json:"annual_income"`
	Dependents          int             `json:"dependents"`
	ExistingLifeCover   float64         `json:"existing_life_cover"`
	ExistingHealthCover float64         `json:"existing_health_cover"`
	CityTier            CityTier        `json:"city_tier"`
	LifestyleRisks      []LifestyleRisk `json:"lifestyle_risks"`
}

// Validate checks boundary constraints on the inputs.
func (in *InsuranceInputs) Validate() error {
	if in.Age < 18 || in.Age > 80 {
		return fmt.Errorf("age must be within [18,80], got %d", in.Age)
	}
	if in.AnnualIncome < 0 {
		return fmt.Errorf("annual_income must be non-negative")
	}
	if in.Dependents < 0 || in.Dependents > 10 {
		return fmt.Errorf("dependents must be within [0,10], got %d", in.Dependents)
	}
	if in.ExistingLifeCover < 0 {
		return fmt.Errorf("existing_life_cover must be non-negative")
	}
	if in.ExistingHealthCover < 0 {
		return fmt.Errorf("existing_health_cover must be non-negative")
	}
	if !in.CityTier.Valid() {
		return fmt.Errorf("city_tier must be one of %q, %q, %q", CityTier1, CityTier2, CityTier3)
	}
	for _, r := range in.LifestyleRisks {
		if !r.Valid() {
			return fmt.Errorf("unknown lifestyle risk %q", r)
		}
	}
	return nil
}

// HasRisk reports whether the given lifestyle risk flag is present.
func (in *InsuranceInputs) HasRisk(risk LifestyleRisk) bool {
	for _, r := range in.LifestyleRisks {
		if r == risk {
			return true
		}
	}
	return false
}

// CoverAssessment is the computed result for a single cover type.
type CoverAssessment struct {
	Required    float64     `json:"required"`
	Existing    float64     `json:"existing"`
	Gap         float64     `json:"gap"`
	Status      CoverStatus `json:"status"`
	PremiumLow  int64       `json:"premium_low"`
	PremiumHigh int64       `json:"premium_high"`
}

// InsuranceAssessment is the full insurance gap result.
type InsuranceAssessment struct {
	Life   CoverAssessment `json:"life"`
	Health CoverAssessment `json:"health"`
}
