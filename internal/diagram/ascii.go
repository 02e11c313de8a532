package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// Bar marks one reinforcement layer in the working (compress-top) frame.
type Bar struct {
	Y          float64 // mm from the compressed edge
	Area       float64 // mm²
	Strain     float64
	Stress     float64 // MPa, signed
	IsTension  bool
	HasYielded bool
}

// SectionState holds everything needed to draw a converged section.
type SectionState struct {
	// Geometry (mm)
	Width  float64
	Height float64

	// Ultimate state
	NeutralAxisDepth float64 // c, from the compressed edge (mm)
	Kappa            float64 // curvature (1/mm)

	// Material state
	Fcd    float64 // design concrete strength (MPa)
	EpsC2  float64
	EpsCU2 float64
	EpsY   float64 // steel yield strain

	// Reinforcement
	Bars []Bar

	// Capacity
	MRd      float64 // kN·m
	LeverArm float64 // mm, NaN when undefined
}

// DrawASCIISection renders the cross-section with its compression zone
// and the strain/stress state at every reinforcement layer.
func DrawASCIISection(data SectionState) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	// A fully compressed section puts c past the bottom edge; keep the
	// marker on the last interior row so it stays visible.
	naLine := clampRow(int(data.NeutralAxisDepth/data.Height*float64(heightChars)), heightChars)

	// Row index per bar layer, top-down frame.
	barLine := make(map[int]int)
	for i, bar := range data.Bars {
		barLine[int(bar.Y/data.Height*float64(heightChars))] = i
	}

	sb.WriteString("\n")
	sb.WriteString("  CROSS-SECTION                   STRAIN              STRESS\n")
	sb.WriteString("  ─────────────                   ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		// Section column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		} else if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		} else {
			var fill string
			if i <= naLine {
				// Compressed concrete above the neutral axis
				fill = strings.Repeat("░", widthChars)
			} else {
				fill = strings.Repeat(" ", widthChars)
			}

			if _, ok := barLine[i]; ok {
				fill = overlayBars(fill, widthChars/2, widthChars)
			}

			if i == naLine {
				sb.WriteString(fmt.Sprintf("  │%s│ ◄─ N.A.", fill))
			} else {
				sb.WriteString(fmt.Sprintf("  │%s│", fill))
			}
		}

		// Strain column
		sb.WriteString("    ")
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ├── εcu2 = %.4f", data.EpsCU2))
		} else if i == naLine {
			sb.WriteString("  ├── ε = 0")
		} else if bi, ok := barLine[i]; ok {
			bar := data.Bars[bi]
			mark := ""
			if bar.HasYielded {
				mark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εs = %+.4f%s", bar.Strain, mark))
		} else if i < heightChars {
			sb.WriteString("  │")
		}

		// Stress column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("      ┌── fcd = %.1f MPa", data.Fcd))
		} else if i == naLine {
			sb.WriteString("      └── (parabola-rectangle)")
		} else if bi, ok := barLine[i]; ok {
			sb.WriteString(fmt.Sprintf("      ── σs = %+.1f MPa", data.Bars[bi].Stress))
		}

		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone (parabola-rectangle diagram)\n")
	sb.WriteString("  ●●● = Reinforcement layer\n")
	sb.WriteString(fmt.Sprintf("  N.A. at c = %.1f mm from the compressed edge\n", data.NeutralAxisDepth))
	if math.IsNaN(data.LeverArm) {
		sb.WriteString("  Lever arm undefined (no layer in tension)\n")
	} else {
		sb.WriteString(fmt.Sprintf("  Equivalent lever arm z ≈ %.1f mm\n", data.LeverArm))
	}

	return sb.String()
}

// clampRow keeps a row index inside the drawable interior, away from
// the border rows at 0 and max.
func clampRow(row, max int) int {
	if row < 1 {
		return 1
	}
	if row > max-1 {
		return max - 1
	}
	return row
}

func overlayBars(fill string, mid, widthChars int) string {
	runes := []rune(fill)
	if widthChars >= 10 {
		copy(runes[mid-3:mid+3], []rune("●────●"))
	}
	return string(runes)
}

// DrawStrainDiagram renders the linear strain profile anchored at
// eps_cu2 on the compressed edge.
func DrawStrainDiagram(data SectionState) string {
	var sb strings.Builder

	height := 15
	width := 40

	// The largest strain magnitude sets the horizontal scale.
	maxStrain := data.EpsCU2
	for _, bar := range data.Bars {
		maxStrain = math.Max(maxStrain, math.Abs(bar.Strain))
	}
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	naLine := clampRow(int(data.NeutralAxisDepth/data.Height*float64(height)), height)
	barLine := make(map[int]int)
	for i, bar := range data.Bars {
		barLine[int(bar.Y/data.Height*float64(height))] = i
	}

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height
		strain := data.Kappa * (data.NeutralAxisDepth - depth)

		barLen := int(math.Abs(strain) * scale)
		if barLen < 0 {
			barLen = 0
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu2=%.4f\n", strings.Repeat("█", barLen), data.EpsCU2))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat("█", barLen)))
		default:
			if bi, ok := barLine[i]; ok {
				bar := data.Bars[bi]
				mark := ""
				if bar.HasYielded {
					mark = " ✓yields"
				}
				sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εs=%+.4f%s\n", strings.Repeat("█", barLen), bar.Strain, mark))
			} else {
				sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat("█", barLen)))
			}
		}
	}

	yieldBar := int(data.EpsY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (yield strain)\n", data.EpsY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawStressDiagram renders the concrete stress profile over the
// compression zone, sampled from the parabola-rectangle law.
func DrawStressDiagram(data SectionState) string {
	var sb strings.Builder

	height := 15
	width := 30
	scale := float64(width) / data.Fcd

	sb.WriteString("\n")
	sb.WriteString("  CONCRETE STRESS PROFILE\n")
	sb.WriteString("  ───────────────────────\n\n")

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height
		eps := data.Kappa * (data.NeutralAxisDepth - depth)
		sig := ec2.ConcreteStress(eps, data.Fcd, data.EpsC2, data.EpsCU2)

		barLen := int(sig * scale)
		label := ""
		if i == 0 {
			label = fmt.Sprintf(" σc=%.1f MPa", sig)
		}
		sb.WriteString(fmt.Sprintf("  %6.0f │%s%s\n", depth, strings.Repeat("▓", barLen), label))
	}
	sb.WriteString("         └" + strings.Repeat("─", width) + "▶ σc\n")

	return sb.String()
}

// DrawSummaryBox frames result lines in a double-rule box. Widths are
// counted in runes so unit symbols like kN·m do not skew the padding.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
