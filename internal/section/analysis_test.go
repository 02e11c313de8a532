package section

import (
	"math"
	"testing"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// benchmarkSection is the 300x600 reference case: 35 mm nominal cover,
// 2-16mm bars on top (y = 43) and 4-16mm bars on the bottom (y = 557),
// C30 concrete and B500 steel.
func benchmarkSection(sign BendingSign) *Section {
	return &Section{
		Name:   "B300x600",
		Width:  300,
		Height: 600,
		Layers: []SteelLayer{
			{Y: 43, Area: ec2.BarArea(16, 16), Description: "2-16mm"},
			{Y: 557, Area: ec2.BarArea(16, 16, 16, 16), Description: "4-16mm"},
		},
		Sign: sign,
	}
}

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Abs(b)
}

func TestAnalyzeReferenceCompressTop(t *testing.T) {
	result, err := benchmarkSection(CompressTop).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	// Anchor against a rectangular-stress-block hand calculation;
	// 8% absorbs the parabola-vs-rectangle block-shape difference.
	if relDiff(result.MRd, 183) > 0.08 {
		t.Errorf("MRd = %.2f kN·m, want ~183 within 8%%", result.MRd)
	}
	if result.C <= 0 || result.C >= 600 {
		t.Errorf("neutral axis depth c = %.2f mm, want inside the section", result.C)
	}
	if result.Status != Converged {
		t.Errorf("status = %v, want Converged", result.Status)
	}
	if math.IsNaN(result.LeverArm) || result.LeverArm <= 0 || result.LeverArm >= 600 {
		t.Errorf("lever arm = %.2f mm, want a finite positive value below h", result.LeverArm)
	}
}

func TestAnalyzeReferenceCompressBottom(t *testing.T) {
	result, err := benchmarkSection(CompressBottom).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if relDiff(result.MRd, 94) > 0.08 {
		t.Errorf("MRd = %.2f kN·m, want ~94 within 8%%", result.MRd)
	}
	if result.C <= 0 || result.C >= 600 {
		t.Errorf("neutral axis depth c = %.2f mm, want inside the section", result.C)
	}
	if result.Status != Converged {
		t.Errorf("status = %v, want Converged", result.Status)
	}
}

func TestAnalyzeEquilibrium(t *testing.T) {
	cases := []*Section{
		benchmarkSection(CompressTop),
		benchmarkSection(CompressBottom),
		{
			Width:  250,
			Height: 450,
			Layers: []SteelLayer{
				{Y: 400, Area: ec2.BarArea(20, 20, 20)},
			},
		},
	}

	for i, s := range cases {
		result, err := s.Analyze()
		if err != nil {
			t.Fatalf("case %d: Analyze() error: %v", i, err)
		}
		if result.Status != Converged {
			t.Errorf("case %d: status = %v, want Converged", i, result.Status)
		}
		if math.Abs(result.ResidualN) >= DefaultTolN {
			t.Errorf("case %d: |N(c*)| = %g N, want below %g", i, math.Abs(result.ResidualN), DefaultTolN)
		}
	}
}

func TestAnalyzeSignSymmetry(t *testing.T) {
	// A layout mirror-symmetric about mid-height must give the same
	// capacity for both bending signs.
	build := func(sign BendingSign) *Section {
		return &Section{
			Width:  300,
			Height: 500,
			Layers: []SteelLayer{
				{Y: 50, Area: ec2.BarArea(16, 16, 16)},
				{Y: 450, Area: ec2.BarArea(16, 16, 16)},
			},
			Sign: sign,
		}
	}

	top, err := build(CompressTop).Analyze()
	if err != nil {
		t.Fatal(err)
	}
	bottom, err := build(CompressBottom).Analyze()
	if err != nil {
		t.Fatal(err)
	}

	if relDiff(top.MRd, bottom.MRd) > 1e-6 {
		t.Errorf("MRd asymmetric for a symmetric section: top %.6f vs bottom %.6f kN·m", top.MRd, bottom.MRd)
	}
}

func TestAnalyzeMonotonicInTensionSteel(t *testing.T) {
	// Adding tension-side steel never decreases MRd.
	prev := 0.0
	for _, bars := range []int{2, 3, 4, 5, 6} {
		diams := make([]float64, bars)
		for i := range diams {
			diams[i] = 16
		}
		s := &Section{
			Width:  300,
			Height: 600,
			Layers: []SteelLayer{
				{Y: 43, Area: ec2.BarArea(16, 16)},
				{Y: 557, Area: ec2.BarArea(diams...)},
			},
		}
		result, err := s.Analyze()
		if err != nil {
			t.Fatalf("%d bars: %v", bars, err)
		}
		if result.MRd < prev {
			t.Errorf("MRd decreased from %.3f to %.3f kN·m when adding tension steel", prev, result.MRd)
		}
		prev = result.MRd
	}
}

func TestAnalyzeDiscretizationConvergence(t *testing.T) {
	coarse := benchmarkSection(CompressTop)
	coarse.Slices = 400
	fine := benchmarkSection(CompressTop)
	fine.Slices = 2000

	rc, err := coarse.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	rf, err := fine.Analyze()
	if err != nil {
		t.Fatal(err)
	}

	if relDiff(rc.MRd, rf.MRd) > 0.005 {
		t.Errorf("MRd(400 slices) = %.4f vs MRd(2000 slices) = %.4f kN·m; want within 0.5%%", rc.MRd, rf.MRd)
	}
}

func TestAnalyzeLeverArmSentinel(t *testing.T) {
	// Steel on the compressed edge only: axial equilibrium is never
	// reachable, the solver reports it, and the lever arm is the NaN
	// sentinel instead of a finite garbage value.
	s := &Section{
		Width:  300,
		Height: 600,
		Layers: []SteelLayer{
			{Y: 0, Area: ec2.BarArea(16, 16)},
		},
	}

	result, err := s.Analyze()
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !math.IsNaN(result.LeverArm) {
		t.Errorf("lever arm = %g, want NaN sentinel", result.LeverArm)
	}
	if result.Status != NotBracketed {
		t.Errorf("status = %v, want NotBracketed", result.Status)
	}
}

func TestAnalyzeDoesNotMutateCaller(t *testing.T) {
	s := benchmarkSection(CompressBottom)
	before := make([]SteelLayer, len(s.Layers))
	copy(before, s.Layers)

	if _, err := s.Analyze(); err != nil {
		t.Fatal(err)
	}

	for i, layer := range s.Layers {
		if layer != before[i] {
			t.Errorf("layer %d mutated: %+v -> %+v", i, before[i], layer)
		}
	}
	if s.Slices != 0 || s.TolN != 0 || s.MaxIter != 0 {
		t.Errorf("analysis defaults leaked into the caller's section: %+v", s)
	}
}

func TestAnalyzeLayerDetail(t *testing.T) {
	result, err := benchmarkSection(CompressTop).Analyze()
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Layers) != 2 {
		t.Fatalf("got %d layer results, want 2", len(result.Layers))
	}

	top, bottom := result.Layers[0], result.Layers[1]
	if top.IsTension {
		t.Error("top layer reported in tension under compress-top bending")
	}
	if !bottom.IsTension {
		t.Error("bottom layer not reported in tension under compress-top bending")
	}
	if !bottom.HasYielded {
		t.Error("bottom layer should yield in the reference case")
	}
	if math.Abs(bottom.Stress) > result.Fyd {
		t.Errorf("steel stress %.2f exceeds fyd %.2f", bottom.Stress, result.Fyd)
	}

	// Force balance: Cc + Cs - T must match the residual.
	net := (result.Cc + result.Cs - result.T) * 1000
	if math.Abs(net-result.ResidualN) > 1e-6 {
		t.Errorf("force components sum to %g N, residual is %g N", net, result.ResidualN)
	}
}

func TestAnalyzeCurvatureAnchor(t *testing.T) {
	result, err := benchmarkSection(CompressTop).Analyze()
	if err != nil {
		t.Fatal(err)
	}

	want := ec2.DefaultEpsCU2 / result.C
	if math.Abs(result.Kappa-want) > 1e-15 {
		t.Errorf("kappa = %g, want eps_cu2/c = %g", result.Kappa, want)
	}
}
