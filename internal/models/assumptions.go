// Package models defines the data records exchanged between the finplan
// engines and their callers.
package models

// AssetClass identifies one of the fixed investable asset classes.
type AssetClass string

const (
	AssetEquity  AssetClass = "Equity"
	AssetDebt    AssetClass = "Debt"
	AssetGold    AssetClass = "Gold"
	AssetSavings AssetClass = "Savings"
)

// AssetClasses lists all asset classes in display order.
var AssetClasses = []AssetClass{AssetEquity, AssetDebt, AssetGold, AssetSavings}

// Assumptions captures the fixed economic assumptions behind every plan.
// Instances are treated as immutable: build one with DefaultAssumptions and
// override fields before first use, never after.
type Assumptions struct {
	Inflation            float64 `json:"inflation"`
	PostRetirementReturn float64 `json:"post_retirement_return"`
	SIPStepUp            float64 `json:"sip_stepup"`
	OvershootFactor      float64 `json:"overshoot_factor"`
	LifeExpectancy       int     `json:"life_expectancy"`

	AssetReturns map[AssetClass]float64 `json:"asset_returns"`
}

// DefaultAssumptions returns the published assumption set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Inflation:            0.06,
		PostRetirementReturn: 0.05,
		SIPStepUp:            0.15,
		OvershootFactor:      1.10,
		LifeExpectancy:       90,
		AssetReturns: map[AssetClass]float64{
			AssetEquity:  0.12,
			AssetDebt:    0.07,
			AssetGold:    0.06,
			AssetSavings: 0.04,
		},
	}
}

// riskAllocations maps risk level (1-5) to asset allocation fractions.
// Each row sums to exactly 1.0.
var riskAllocations = map[int]map[AssetClass]float64{
	1: {AssetEquity: 0.25, AssetDebt: 0.45, AssetGold: 0.10, AssetSavings: 0.20},
	2: {AssetEquity: 0.35, AssetDebt: 0.40, AssetGold: 0.10, AssetSavings: 0.15},
	3: {AssetEquity: 0.50, AssetDebt: 0.30, AssetGold: 0.10, AssetSavings: 0.10},
	4: {AssetEquity: 0.65, AssetDebt: 0.20, AssetGold: 0.10, AssetSavings: 0.05},
	5: {AssetEquity: 0.75, AssetDebt: 0.10, AssetGold: 0.10, AssetSavings: 0.05},
}

// AllocationForRisk returns a copy of the allocation row for the given risk
// level. Levels outside [1,5] are clamped.
func AllocationForRisk(level int) map[AssetClass]float64 {
	level = ClampRisk(level)
	row := make(map[AssetClass]float64, len(riskAllocations[level]))
	for class, frac := range riskAllocations[level] {
		row[class] = frac
	}
	return row
}

// RiskAllocationTable returns a copy of the full 5-row allocation table.
func RiskAllocationTable() map[int]map[AssetClass]float64 {
	table := make(map[int]map[AssetClass]float64, len(riskAllocations))
	for level := range riskAllocations {
		table[level] = AllocationForRisk(level)
	}
	return table
}

// ClampRisk clamps a risk level into the valid [1,5] range.
func ClampRisk(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
