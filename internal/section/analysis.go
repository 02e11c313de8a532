package section

import (
	"fmt"
	"math"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// minDepth guards the curvature against division by zero as c -> 0.
const minDepth = 1e-6 // mm

// tensionFloor is the smallest total tension force (N) for which the
// equivalent lever arm is still reported.
const tensionFloor = 1e-9

// Resultants holds the internal force state for one trial
// neutral-axis depth.
type Resultants struct {
	N     float64 // net axial force (N), compression positive
	M     float64 // net moment about the compressed edge (N·mm)
	Kappa float64 // curvature (1/mm)
}

// workingSection is the compress-top frame the integrator operates
// in. It is built once per Analyze call; layers are a mapped copy,
// so caller-owned geometry is never touched.
type workingSection struct {
	width  float64
	height float64
	layers []SteelLayer
	fibers []fiberLayer

	fcd, fyd, es  float64
	epsC2, epsCU2 float64
}

func newWorkingSection(s *Section) *workingSection {
	layers := make([]SteelLayer, len(s.Layers))
	for i, sl := range s.Layers {
		y := sl.Y
		if s.Sign == CompressBottom {
			// Reflect so the compressed fiber is always at y = 0.
			y = s.Height - y
		}
		layers[i] = SteelLayer{Y: y, Area: sl.Area, Description: sl.Description}
	}

	m := s.Materials
	return &workingSection{
		width:  s.Width,
		height: s.Height,
		layers: layers,
		fibers: discretize(s.Height, s.Slices),
		fcd:    m.Fcd(),
		fyd:    m.Fyd(),
		es:     m.Es,
		epsC2:  m.EpsC2,
		epsCU2: m.EpsCU2,
	}
}

// resultants evaluates the strain profile for a trial neutral-axis
// depth c and integrates stresses into the net axial force and the
// moment about the compressed edge. The extreme compression fiber is
// anchored at eps_cu2. Called once per bisection iteration; no
// allocations.
func (ws *workingSection) resultants(c float64) Resultants {
	kappa := ws.epsCU2 / math.Max(c, minDepth)

	var nc, mc float64
	for _, f := range ws.fibers {
		eps := kappa * (c - f.Y) // >0 compression, <0 tension
		sig := ec2.ConcreteStress(eps, ws.fcd, ws.epsC2, ws.epsCU2)
		force := sig * ws.width * f.Thickness // N
		nc += force
		mc += force * f.Y
	}

	var ns, ms float64
	for _, sl := range ws.layers {
		eps := kappa * (c - sl.Y)
		force := ec2.SteelStress(eps, ws.es, ws.fyd) * sl.Area // N, signed
		ns += force
		ms += force * sl.Y
	}

	return Resultants{N: nc + ns, M: mc + ms, Kappa: kappa}
}

// LayerResult holds the converged state of one reinforcement layer.
type LayerResult struct {
	Y           float64 // ordinate in the working frame (mm)
	Area        float64 // mm²
	Strain      float64
	Stress      float64 // MPa, signed
	Force       float64 // kN, signed
	IsTension   bool
	HasYielded  bool
	Description string
}

// AnalysisResult holds the results of a capacity evaluation.
type AnalysisResult struct {
	// Capacity
	MRd      float64 // design bending resistance (kN·m)
	C        float64 // neutral axis depth from the compressed edge (mm)
	LeverArm float64 // equivalent lever arm (mm); NaN when nothing is in tension
	Kappa    float64 // curvature at the ultimate state (1/mm)

	// Equilibrium state at the returned c
	ResidualN  float64 // net axial force (N)
	Iterations int
	Status     SolveStatus

	// Design strengths used
	Fcd float64 // MPa
	Fyd float64 // MPa

	// Internal forces (kN)
	Cc float64 // concrete compression resultant
	Cs float64 // steel compression resultant
	T  float64 // steel tension resultant (absolute)

	// Steel layer details, in the working (compress-top) frame
	Layers []LayerResult

	// Status
	Message string
}

// Analyze computes the ultimate bending resistance MRd of the section
// under the EN 1992-1-1 parabola-rectangle model. The extreme
// compression fiber is held at eps_cu2 and the neutral-axis depth is
// searched for pure-bending equilibrium (N = 0).
func (s *Section) Analyze() (*AnalysisResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sec := s.normalized()

	ws := newWorkingSection(&sec)

	sol := solveNeutralAxis(func(c float64) float64 {
		return ws.resultants(c).N
	}, sec.Height, sec.TolN, sec.MaxIter)

	// Recompute the full state at the solved depth.
	eq := ws.resultants(sol.C)

	result := &AnalysisResult{
		MRd:        math.Abs(eq.M) / 1e6, // N·mm -> kN·m
		C:          sol.C,
		Kappa:      eq.Kappa,
		ResidualN:  sol.Residual,
		Iterations: sol.Iterations,
		Status:     sol.Status,
		Fcd:        ws.fcd,
		Fyd:        ws.fyd,
	}

	epsY := ws.fyd / ws.es

	// Per-layer state and the tension resultant for the lever arm.
	var steelForce, tension, compression float64
	result.Layers = make([]LayerResult, len(ws.layers))
	for i, sl := range ws.layers {
		eps := eq.Kappa * (sol.C - sl.Y)
		sig := ec2.SteelStress(eps, ws.es, ws.fyd)
		force := sig * sl.Area // N
		steelForce += force
		if force < 0 {
			tension += -force
		} else {
			compression += force
		}
		result.Layers[i] = LayerResult{
			Y:           sl.Y,
			Area:        sl.Area,
			Strain:      eps,
			Stress:      sig,
			Force:       force / 1000,
			IsTension:   force < 0,
			HasYielded:  math.Abs(eps) >= epsY,
			Description: sl.Description,
		}
	}

	result.Cc = (eq.N - steelForce) / 1000
	result.Cs = compression / 1000
	result.T = tension / 1000

	// Equivalent lever arm z = |M| / T, informative only.
	if tension > tensionFloor {
		result.LeverArm = math.Abs(eq.M) / tension
	} else {
		result.LeverArm = math.NaN()
	}

	switch sol.Status {
	case Converged:
		result.Message = fmt.Sprintf("Equilibrium reached: |N| = %.2e N after %d iterations", math.Abs(sol.Residual), sol.Iterations)
	case IterationLimit:
		result.Message = fmt.Sprintf("WARNING: iteration budget (%d) exhausted, residual N = %.3e N", sec.MaxIter, sol.Residual)
	case NotBracketed:
		result.Message = fmt.Sprintf("WARNING: no sign change bracketed after %d expansions; the result may not satisfy equilibrium (residual N = %.3e N)", bracketTries, sol.Residual)
	}

	return result, nil
}
