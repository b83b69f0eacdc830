package models

import "fmt"

// SpendingStyle selects the post-retirement withdrawal model.
type SpendingStyle string

const (
	// SpendingNominal keeps the rupee withdrawal fixed after retirement;
	// purchasing power erodes with inflation.
	SpendingNominal SpendingStyle = "nominal"
	// SpendingInflationProtected grows the withdrawal with inflation each
	// year; purchasing power is preserved.
	SpendingInflationProtected SpendingStyle = "inflation_protected"
)

// Valid reports whether the spending style is one of the known values.
func (s SpendingStyle) Valid() bool {
	return s == SpendingNominal || s == SpendingInflationProtected
}

// RetirementInputs are the raw inputs for a retirement plan calculation.
// Amounts are in today's rupees.
type RetirementInputs struct {
	CurrentAge               int           `json:"current_age"`
	RetirementAge            int           `json:"retirement_age"`
	MonthlyExpenseToday      float64       `json:"monthly_expense_today"`
	CurrentMonthlyInvestment float64       `json:"current_monthly_investment"`
	CurrentSavings           float64       `json:"current_savings"`
	UserRisk                 int           `json:"user_risk"`
	SpendingStyle            SpendingStyle `json:"spending_style"`
}

// Validate checks boundary constraints on the inputs. Horizon feasibility
// against life expectancy is the engine's concern, not the boundary's.
func (in *RetirementInputs) Validate() error {
	if in.CurrentAge < 0 {
		return fmt.Errorf("current_age must be non-negative, got %d", in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return fmt.Errorf("retirement_age (%d) must be greater than current_age (%d)", in.RetirementAge, in.CurrentAge)
	}
	if in.MonthlyExpenseToday < 0 {
		return fmt.Errorf("monthly_expense_today must be non-negative")
	}
	if in.CurrentMonthlyInvestment < 0 {
		return fmt.Errorf("current_monthly_investment must be non-negative")
	}
	if in.CurrentSavings < 0 {
		return fmt.Errorf("current_savings must be non-negative")
	}
	if in.UserRisk < 1 || in.UserRisk > 5 {
		return fmt.Errorf("user_risk must be within [1,5], got %d", in.UserRisk)
	}
	if !in.SpendingStyle.Valid() {
		return fmt.Errorf("spending_style must be %q or %q", SpendingNominal, SpendingInflationProtected)
	}
	return nil
}

// YearsToRetirement returns the accumulation horizon in years.
func (in *RetirementInputs) YearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

// RetirementPlan is the computed retirement plan returned to callers.
type RetirementPlan struct {
	RequiredCorpus     float64                `json:"required_corpus"`
	RequiredMonthlySIP int64                  `json:"required_monthly_sip"`
	IsBehind           bool                   `json:"is_behind"`
	MinStartSIP        int64                  `json:"min_start_sip"`
	CanRecover         bool                   `json:"can_recover"`
	SystemRisk         int                    `json:"system_risk"`
	BlendedRisk        int                    `json:"blended_risk"`
	Allocation         map[AssetClass]float64 `json:"allocation"`
	// CatchUpPath is the year-by-year stepped-up contribution starting from
	// the current monthly investment, capped at 1.10x the required SIP.
	CatchUpPath []int64 `json:"catchup_path"`
	// ProgressRatio is current savings over required corpus, capped at 1.
	ProgressRatio float64 `json:"progress_ratio"`

	YearsToRetirement int         `json:"years_to_retirement"`
	RetirementYears   int         `json:"retirement_years"`
	Assumptions       Assumptions `json:"assumptions"`
}
