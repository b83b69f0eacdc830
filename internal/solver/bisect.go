// Package solver provides the numeric root-finding kernel shared by the
// planning engines.
package solver

// Bisect finds the smallest value in [lo, hi] for which survives returns
// true, by repeated interval halving over a fixed number of iterations.
//
// Precondition: survives must be monotone non-decreasing over [lo, hi] —
// false below some threshold T and true at and above it. The result
// approximates T from above to within (hi-lo)/2^iterations. The predicate is
// not checked; a non-monotone predicate yields a meaningless answer.
//
// Bisect always terminates after exactly iterations steps and returns the
// final upper bound, so a predicate that is false across the whole interval
// returns hi and one that is true everywhere converges to lo.
func Bisect(lo, hi float64, iterations int, survives func(candidate float64) bool) float64 {
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		if survives(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
