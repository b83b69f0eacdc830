package planner

import (
	"math"

	"github.com/amitrb/finplan/internal/models"
)

// systemRiskLevel derives the suggested risk level from the accumulation
// horizon, nudged up one level when the user is behind on contributions.
func systemRiskLevel(yearsToRetirement int, isBehind bool) int {
	base := 2
	switch {
	case yearsToRetirement > 25:
		base = 4
	case yearsToRetirement > 15:
		base = 3
	}
	if isBehind {
		base = models.ClampRisk(base + 1)
	}
	return base
}

// blendRisk combines user-chosen and system-suggested risk, 60/40 in the
// user's favour.
func blendRisk(userRisk, systemRisk int) int {
	blended := math.Round(0.6*float64(userRisk) + 0.4*float64(systemRisk))
	return models.ClampRisk(int(blended))
}

// allocationAmounts splits the required monthly SIP across asset classes
// using the allocation row for the blended risk level.
func allocationAmounts(requiredSIP int64, risk int) map[models.AssetClass]float64 {
	alloc := models.AllocationForRisk(risk)
	amounts := make(map[models.AssetClass]float64, len(alloc))
	for class, frac := range alloc {
		amounts[class] = float64(requiredSIP) * frac
	}
	return amounts
}
