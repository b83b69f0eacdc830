package planner

import (
	"math"

	"github.com/amitrb/finplan/internal/models"
	"github.com/amitrb/finplan/internal/solver"
)

// SIP search space. 300k/month is the upper bound of the supported range;
// the overshoot search runs over the smaller [0, requiredSIP] interval and
// needs fewer halvings.
const (
	sipSearchCeiling    = 300000
	sipIterations       = 100
	overshootIterations = 60
)

// portfolioReturn is the allocation-weighted nominal return for a risk level.
func portfolioReturn(assumptions models.Assumptions, risk int) float64 {
	alloc := models.AllocationForRisk(risk)
	total := 0.0
	for class, ret := range assumptions.AssetReturns {
		total += alloc[class] * ret
	}
	return total
}

// requiredMonthlySIP finds the minimal constant monthly contribution that
// grows currentSavings to requiredCorpus over the horizon. Compounding is
// annual: balance = balance*(1+r) + 12*monthly. The solver's upper bound is
// truncated to a whole rupee.
func requiredMonthlySIP(requiredCorpus, currentSavings float64, years int, annualReturn float64) int64 {
	monthly := solver.Bisect(0, sipSearchCeiling, sipIterations, func(candidate float64) bool {
		balance := currentSavings
		for year := 0; year < years; year++ {
			balance = balance*(1+annualReturn) + 12*candidate
		}
		return balance >= requiredCorpus
	})
	return int64(monthly)
}

// minStartSIPForOvershoot finds the minimal starting contribution that, when
// stepped up by stepup each year (capped at overshootFactor*requiredSIP),
// reaches that ceiling within the horizon. A contribution that can climb to
// the overshoot ceiling recovers the compounding lost while behind.
func minStartSIPForOvershoot(requiredSIP float64, years int, stepup, overshootFactor float64) int64 {
	target := requiredSIP * overshootFactor
	start := solver.Bisect(0, requiredSIP, overshootIterations, func(candidate float64) bool {
		sip := candidate
		for year := 0; year < years; year++ {
			sip = math.Min(sip*(1+stepup), target)
		}
		return sip >= target
	})
	return int64(start)
}

// catchUpPath produces the year-by-year stepped-up contribution schedule
// starting from the current monthly investment. Purely for display; no
// gating logic.
func catchUpPath(currentMonthly float64, requiredSIP int64, years int, stepup, overshootFactor float64) []int64 {
	ceiling := overshootFactor * float64(requiredSIP)
	path := make([]int64, 0, years)
	sip := currentMonthly
	for year := 0; year < years; year++ {
		path = append(path, int64(sip))
		sip = math.Min(sip*(1+stepup), ceiling)
	}
	return path
}
