package diagram

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func sampleState() SectionState {
	return SectionState{
		Width:            300,
		Height:           600,
		NeutralAxisDepth: 63,
		Kappa:            0.0035 / 63,
		Fcd:              17,
		EpsC2:            0.0020,
		EpsCU2:           0.0035,
		EpsY:             0.00217,
		Bars: []Bar{
			{Y: 43, Area: 402, Strain: 0.0011, Stress: 222, IsTension: false},
			{Y: 557, Area: 804, Strain: -0.0274, Stress: -434.8, IsTension: true, HasYielded: true},
		},
		MRd:      183.2,
		LeverArm: 527,
	}
}

func TestDrawASCIISection(t *testing.T) {
	out := DrawASCIISection(sampleState())

	for _, want := range []string{"N.A.", "εcu2", "fcd = 17.0 MPa", "lever arm", "░"} {
		if !strings.Contains(out, want) {
			t.Errorf("section diagram missing %q", want)
		}
	}
}

func TestDrawASCIISectionUndefinedLeverArm(t *testing.T) {
	state := sampleState()
	state.LeverArm = math.NaN()

	out := DrawASCIISection(state)
	if !strings.Contains(out, "Lever arm undefined") {
		t.Error("NaN lever arm not reported")
	}
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(sampleState())

	if !strings.Contains(out, "STRAIN DISTRIBUTION") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "✓yields") {
		t.Error("yielded layer not marked")
	}
}

func TestDrawStressDiagram(t *testing.T) {
	out := DrawStressDiagram(sampleState())

	if !strings.Contains(out, "CONCRETE STRESS PROFILE") {
		t.Error("missing title")
	}
	// The profile must vanish below the neutral axis.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := lines[len(lines)-2] // last depth row before the axis line
	if strings.Contains(last, "▓") {
		t.Errorf("stress drawn in the tension zone: %q", last)
	}
}

func TestDrawASCIISectionFullyCompressed(t *testing.T) {
	// Neutral axis below the bottom edge: the marker must stay on a
	// drawable row instead of vanishing.
	state := sampleState()
	state.NeutralAxisDepth = state.Height * 1.2

	out := DrawASCIISection(state)
	if !strings.Contains(out, "N.A.") {
		t.Error("neutral axis marker lost for a fully compressed section")
	}
	if !strings.Contains(out, "ε = 0") {
		t.Error("zero-strain annotation lost for a fully compressed section")
	}

	if !strings.Contains(DrawStrainDiagram(state), "N.A.") {
		t.Error("strain diagram lost the neutral axis row")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTS", []string{"MRd+ = 183.2 kN·m", "c = 63.4 mm"})

	for _, want := range []string{"RESULTS", "MRd+ = 183.2 kN·m", "╔", "╚"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary box missing %q", want)
		}
	}

	// Unit symbols are multi-byte; every row must still line up.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if utf8.RuneCountInString(line) != width {
			t.Errorf("row %d width %d, want %d: %q", i, utf8.RuneCountInString(line), width, line)
		}
	}
}
