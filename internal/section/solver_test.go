package section

import (
	"math"
	"testing"
)

func TestSolveNeutralAxisConverges(t *testing.T) {
	// Linear function with a root well inside the initial bracket.
	f := func(c float64) float64 { return c - 100 }

	res := solveNeutralAxis(f, 600, 1e-6, 120)

	if res.Status != Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
	if math.Abs(res.C-100) > 1e-5 {
		t.Errorf("C = %g, want ~100", res.C)
	}
	if math.Abs(res.Residual) >= 1e-6 {
		t.Errorf("residual = %g, want below tolerance", res.Residual)
	}
}

func TestSolveNeutralAxisExpandsBracket(t *testing.T) {
	// Root outside the initial [1e-3, 3h] interval; requires the
	// geometric expansion to bracket it.
	f := func(c float64) float64 { return c - 5000 }

	res := solveNeutralAxis(f, 600, 1e-6, 200)

	if res.Status != Converged {
		t.Fatalf("status = %v, want Converged after expansion", res.Status)
	}
	if math.Abs(res.C-5000) > 1e-4 {
		t.Errorf("C = %g, want ~5000", res.C)
	}
}

func TestSolveNeutralAxisNotBracketed(t *testing.T) {
	// Strictly positive everywhere: no root exists.
	f := func(c float64) float64 { return c + 1000 }

	res := solveNeutralAxis(f, 600, 1e-6, 120)

	if res.Status != NotBracketed {
		t.Fatalf("status = %v, want NotBracketed", res.Status)
	}
	// The last midpoint is still reported.
	if res.C <= 0 {
		t.Errorf("C = %g, want a positive midpoint", res.C)
	}
	if res.Iterations == 0 {
		t.Error("expected the bisection loop to run")
	}
}

func TestSolveNeutralAxisIterationLimit(t *testing.T) {
	f := func(c float64) float64 { return c - 100 }

	// An unreachable tolerance exhausts the budget.
	res := solveNeutralAxis(f, 600, 0, 10)

	if res.Status != IterationLimit {
		t.Fatalf("status = %v, want IterationLimit", res.Status)
	}
	if res.Iterations != 10 {
		t.Errorf("iterations = %d, want 10", res.Iterations)
	}
}

func TestSolveStatusString(t *testing.T) {
	for status, want := range map[SolveStatus]string{
		Converged:      "converged",
		IterationLimit: "iteration limit reached",
		NotBracketed:   "sign change not bracketed",
	} {
		if got := status.String(); got != want {
			t.Errorf("SolveStatus(%d).String() = %q, want %q", status, got, want)
		}
	}
}
