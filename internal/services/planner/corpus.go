package planner

import (
	"math"

	"github.com/amitrb/finplan/internal/solver"
)

// Corpus search space. 1e11 comfortably exceeds any realistic requirement;
// 100 halvings give sub-cent precision across it.
const (
	corpusSearchCeiling = 1e11
	corpusIterations    = 100
)

// annualExpenseAtRetirement inflates today's monthly expense once, up front,
// to the retirement year. Both spending styles withdraw exactly this amount
// in the first retirement year.
func annualExpenseAtRetirement(monthlyExpenseToday, inflation float64, yearsToRetirement int) float64 {
	return monthlyExpenseToday * 12 * math.Pow(1+inflation, float64(yearsToRetirement))
}

// requiredCorpusNominal finds the minimal corpus that survives a fixed rupee
// withdrawal for retirementYears. Each year the corpus grows first, then the
// withdrawal is taken; the candidate fails the moment it goes negative.
func requiredCorpusNominal(annualAtRetirement, growth float64, retirementYears int) float64 {
	return solver.Bisect(0, corpusSearchCeiling, corpusIterations, func(corpus float64) bool {
		balance := corpus
		for year := 0; year < retirementYears; year++ {
			balance = balance*(1+growth) - annualAtRetirement
			if balance < 0 {
				return false
			}
		}
		return true
	})
}

// requiredCorpusInflationProtected is the same search with the withdrawal
// stepped up by inflation after each year, preserving purchasing power. The
// first year withdraws the at-retirement amount unchanged, keeping both
// spending styles identical in year one.
func requiredCorpusInflationProtected(annualAtRetirement, growth, inflation float64, retirementYears int) float64 {
	return solver.Bisect(0, corpusSearchCeiling, corpusIterations, func(corpus float64) bool {
		balance := corpus
		withdrawal := annualAtRetirement
		for year := 0; year < retirementYears; year++ {
			balance = balance*(1+growth) - withdrawal
			if balance < 0 {
				return false
			}
			withdrawal *= 1 + inflation
		}
		return true
	})
}
