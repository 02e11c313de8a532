package section

import "math"

// SolveStatus reports how the neutral-axis search ended. Callers get
// an explicit outcome instead of an unverified root.
type SolveStatus int

const (
	// Converged means the axial residual fell below the tolerance.
	Converged SolveStatus = iota
	// IterationLimit means the iteration budget ran out before the
	// residual reached the tolerance.
	IterationLimit
	// NotBracketed means no sign change was found even after
	// expanding the search interval; the returned depth bisects a
	// non-bracketing interval and need not satisfy equilibrium.
	NotBracketed
)

func (s SolveStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit reached"
	case NotBracketed:
		return "sign change not bracketed"
	default:
		return "unknown"
	}
}

// solveResult is the transient state returned by the bisection search.
type solveResult struct {
	C          float64 // last midpoint (mm)
	Residual   float64 // net axial force at C (N)
	Iterations int
	Status     SolveStatus
}

// Bracket expansion constants. The physical range of the neutral-axis
// depth is (0, a few times h]: as c -> 0 nearly all steel is in
// tension, for large c the whole section is compressed.
const (
	bracketLow   = 1e-3 // mm
	bracketHighH = 3.0  // initial upper bound, multiples of h
	bracketGrow  = 1.8
	bracketTries = 8
)

// solveNeutralAxis finds the depth c at which the net axial force
// axialAt(c) crosses zero, using bracketed bisection. The last
// midpoint is always reported together with its residual and status.
func solveNeutralAxis(axialAt func(c float64) float64, h, tolN float64, maxIter int) solveResult {
	cLow := bracketLow
	cHigh := bracketHighH * h
	nLow := axialAt(cLow)
	nHigh := axialAt(cHigh)

	bracketed := nLow*nHigh <= 0
	for try := 0; !bracketed && try < bracketTries; try++ {
		cHigh *= bracketGrow
		nHigh = axialAt(cHigh)
		bracketed = nLow*nHigh <= 0
	}

	res := solveResult{Status: IterationLimit}
	if !bracketed {
		res.Status = NotBracketed
	}

	for i := 0; i < maxIter; i++ {
		cMid := 0.5 * (cLow + cHigh)
		nMid := axialAt(cMid)
		res.C = cMid
		res.Residual = nMid
		res.Iterations = i + 1
		if math.Abs(nMid) < tolN {
			res.Status = Converged
			break
		}
		if nLow*nMid <= 0 {
			cHigh = cMid
		} else {
			cLow = cMid
			nLow = nMid
		}
	}

	return res
}
