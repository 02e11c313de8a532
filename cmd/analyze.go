package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/config"
	"github.com/jramirezbandera/ec2fiber/internal/diagram"
	"github.com/jramirezbandera/ec2fiber/internal/ec2"
	"github.com/jramirezbandera/ec2fiber/internal/section"
)

var (
	// Geometry inputs
	analyzeWidth  float64
	analyzeHeight float64
	analyzeLayers []string
	analyzeBars   []string

	// Material inputs
	analyzeFck       float64
	analyzeFyk       float64
	analyzeGammaC    float64
	analyzeGammaS    float64
	analyzeAlphaCC   float64
	analyzeMaterials string

	// Analysis controls
	analyzeSlices int
	analyzeSign   string

	// Alternative input and output options
	analyzeFile        string
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeStressFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the ultimate bending resistance MRd of a section",
	Long: `Compute the design ultimate bending moment resistance (MRd) of a
rectangular reinforced-concrete section per EN 1992-1-1.

The extreme compression fiber is held at the ultimate concrete strain
eps_cu2 and the neutral-axis depth is found by bracketed bisection so
that the section is in pure-bending equilibrium (N = 0).

Reinforcement is given as layers measured from the top edge, either as
explicit areas or as bar groups:
  --layer "557:804.25"     one layer: y = 557 mm, As = 804.25 mm²
  --bars  "557:4*16"       one layer: 4 bars of 16 mm at y = 557 mm

Examples:
  # 300x600 section, 2-16mm top and 4-16mm bottom, both bending signs
  ec2fiber analyze --width 300 --height 600 --bars 43:2*16 --bars 557:4*16

  # From a JSON section file, compress-top only, with diagrams
  ec2fiber analyze --file section.json --sign top --diagram

  # With a materials profile
  ec2fiber analyze -b 300 --height 600 --bars 557:4*16 --materials c25.ini`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Geometry flags
	analyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Section width (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Section height (mm)")
	analyzeCmd.Flags().StringArrayVar(&analyzeLayers, "layer", nil, "Steel layer as y:area (mm, mm²); repeatable")
	analyzeCmd.Flags().StringArrayVar(&analyzeBars, "bars", nil, "Bar group as y:n*d (mm, count, mm); repeatable")

	// Material flags
	analyzeCmd.Flags().Float64Var(&analyzeFck, "fck", ec2.DefaultFck, "Characteristic concrete strength fck (MPa)")
	analyzeCmd.Flags().Float64Var(&analyzeFyk, "fyk", ec2.DefaultFyk, "Characteristic steel yield strength fyk (MPa)")
	analyzeCmd.Flags().Float64Var(&analyzeGammaC, "gamma-c", ec2.DefaultGammaC, "Partial safety factor for concrete")
	analyzeCmd.Flags().Float64Var(&analyzeGammaS, "gamma-s", ec2.DefaultGammaS, "Partial safety factor for steel")
	analyzeCmd.Flags().Float64Var(&analyzeAlphaCC, "alpha-cc", ec2.DefaultAlphaCC, "Sustained-load reduction factor")
	analyzeCmd.Flags().StringVar(&analyzeMaterials, "materials", "", "Materials profile INI file (overrides material flags)")

	// Analysis controls
	analyzeCmd.Flags().IntVar(&analyzeSlices, "slices", section.DefaultSlices, "Concrete fiber count")
	analyzeCmd.Flags().StringVar(&analyzeSign, "sign", "both", "Bending sign: top, bottom or both")

	// Alternative input and outputs
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to section JSON file (replaces geometry flags)")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section, strain and stress diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeStressFile, "stress-output", "", "Export concrete stress profile to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	sec, err := buildSection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var signs []section.BendingSign
	switch analyzeSign {
	case "top":
		signs = []section.BendingSign{section.CompressTop}
	case "bottom":
		signs = []section.BendingSign{section.CompressBottom}
	case "both":
		signs = []section.BendingSign{section.CompressTop, section.CompressBottom}
	default:
		fmt.Printf("Error: unknown sign %q (want top, bottom or both)\n", analyzeSign)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FIBER SECTION ANALYSIS - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInputs(sec)

	results := make(map[section.BendingSign]*section.AnalysisResult, len(signs))
	for _, sign := range signs {
		work := *sec
		work.Sign = sign
		result, err := work.Analyze()
		if err != nil {
			fmt.Printf("Error analyzing section (%s): %v\n", sign, err)
			return
		}
		results[sign] = result
		printResult(sign, result)

		if analyzeShowDiagram {
			state := diagramState(sec, result)
			fmt.Println(diagram.DrawASCIISection(state))
			fmt.Println(diagram.DrawStrainDiagram(state))
			fmt.Println(diagram.DrawStressDiagram(state))
		}
	}

	printSummary(signs, results)

	if analyzeExportFile != "" {
		state := diagramState(sec, results[signs[0]])
		if err := diagram.ExportSectionDiagram(state, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", analyzeExportFile)
		}
	}

	if analyzeStressFile != "" {
		state := diagramState(sec, results[signs[0]])
		if err := diagram.ExportStressDiagram(state, analyzeStressFile); err != nil {
			fmt.Printf("Error exporting stress diagram: %v\n", err)
		} else {
			fmt.Printf("Stress diagram exported to: %s\n", analyzeStressFile)
		}
	}
}

// buildSection assembles the section from the JSON file or the
// geometry flags, applying a materials profile when given.
func buildSection() (*section.Section, error) {
	var sec *section.Section

	if analyzeFile != "" {
		loaded, err := section.LoadFromFile(analyzeFile)
		if err != nil {
			return nil, fmt.Errorf("loading section: %w", err)
		}
		sec = loaded
	} else {
		if analyzeWidth <= 0 || analyzeHeight <= 0 {
			return nil, fmt.Errorf("--width and --height are required without --file")
		}

		var layers []section.SteelLayer
		for _, spec := range analyzeLayers {
			parsed, err := section.ParseLayers(spec)
			if err != nil {
				return nil, err
			}
			layers = append(layers, parsed...)
		}
		for _, spec := range analyzeBars {
			layer, err := section.ParseBars(spec)
			if err != nil {
				return nil, err
			}
			layers = append(layers, layer)
		}
		if len(layers) == 0 {
			return nil, fmt.Errorf("at least one --layer or --bars is required")
		}

		sec = &section.Section{
			Width:  analyzeWidth,
			Height: analyzeHeight,
			Layers: layers,
			Materials: ec2.Materials{
				Fck:     analyzeFck,
				Fyk:     analyzeFyk,
				GammaC:  analyzeGammaC,
				GammaS:  analyzeGammaS,
				AlphaCC: analyzeAlphaCC,
			},
			Slices: analyzeSlices,
		}
	}

	if analyzeMaterials != "" {
		m, err := config.LoadMaterials(analyzeMaterials)
		if err != nil {
			return nil, err
		}
		sec.Materials = m
	}

	if err := sec.Validate(); err != nil {
		return nil, err
	}
	return sec, nil
}

func printInputs(sec *section.Section) {
	m := sec.Materials.WithDefaults()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if sec.Name != "" {
		fmt.Fprintf(w, "  Section:\t%s\n", sec.Name)
	}
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", sec.Width)
	fmt.Fprintf(w, "  Height (h):\t%.0f mm\n", sec.Height)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", m.Fck)
	fmt.Fprintf(w, "  fyk:\t%.1f MPa\n", m.Fyk)
	fmt.Fprintf(w, "  fcd = αcc·fck/γc:\t%.2f MPa\n", m.Fcd())
	fmt.Fprintf(w, "  fyd = fyk/γs:\t%.2f MPa\n", m.Fyd())
	fmt.Fprintf(w, "  εc2 / εcu2:\t%.4f / %.4f\n", m.EpsC2, m.EpsCU2)
	fmt.Fprintf(w, "  Concrete fibers:\t%d\n", nonZero(sec.Slices, section.DefaultSlices))
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tY (mm)\tArea (mm²)\tDescription\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────────\t───────────\n")
	for i, layer := range sec.Layers {
		fmt.Fprintf(w, "  %d\t%.0f\t%.2f\t%s\n", i+1, layer.Y, layer.Area, layer.Description)
	}
	w.Flush()
	fmt.Println()
}

func printResult(sign section.BendingSign, r *section.AnalysisResult) {
	title := "COMPRESSION ON TOP EDGE (MRd+)"
	if sign == section.CompressBottom {
		title = "COMPRESSION ON BOTTOM EDGE (MRd-)"
	}
	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.2f mm\n", r.C)
	fmt.Fprintf(w, "  Curvature (κ):\t%.4e 1/mm\n", r.Kappa)
	if math.IsNaN(r.LeverArm) {
		fmt.Fprintf(w, "  Equivalent lever arm (z):\tundefined (no tension steel)\n")
	} else {
		fmt.Fprintf(w, "  Equivalent lever arm (z):\t%.1f mm\n", r.LeverArm)
	}
	fmt.Fprintf(w, "  Axial residual N(c):\t%.3e N\n", r.ResidualN)
	fmt.Fprintf(w, "  Solver:\t%s (%d iterations)\n", r.Status, r.Iterations)
	w.Flush()
	fmt.Println()

	fmt.Println("  STEEL LAYERS (working frame, compressed edge at y = 0):")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tY (mm)\tStrain\tStress (MPa)\tForce (kN)\tState\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────\t────────────\t──────────\t─────\n")
	for i, layer := range r.Layers {
		state := "compression"
		if layer.IsTension {
			state = "tension"
		}
		if layer.HasYielded {
			state += " (yields)"
		}
		fmt.Fprintf(w, "  %d\t%.0f\t%+.6f\t%+.2f\t%+.2f\t%s\n",
			i+1, layer.Y, layer.Strain, layer.Stress, layer.Force, state)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cc (concrete compression):\t%.2f kN\n", r.Cc)
	fmt.Fprintf(w, "  Cs (steel compression):\t%.2f kN\n", r.Cs)
	fmt.Fprintf(w, "  T (steel tension):\t%.2f kN\n", r.T)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("DESIGN RESISTANCE", []string{
		fmt.Sprintf("MRd = %.2f kN·m", r.MRd),
	}))
	fmt.Println()

	fmt.Printf("  %s\n", r.Message)
	fmt.Println()
}

func printSummary(signs []section.BendingSign, results map[section.BendingSign]*section.AnalysisResult) {
	lines := make([]string, 0, len(signs))
	for _, sign := range signs {
		r := results[sign]
		label := "MRd+"
		if sign == section.CompressBottom {
			label = "MRd-"
		}
		if math.IsNaN(r.LeverArm) {
			lines = append(lines, fmt.Sprintf("%s = %.2f kN·m (c=%.1f mm, z undefined)", label, r.MRd, r.C))
		} else {
			lines = append(lines, fmt.Sprintf("%s = %.2f kN·m (c=%.1f mm, z≈%.1f mm)", label, r.MRd, r.C, r.LeverArm))
		}
	}
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", lines))
	fmt.Println()
}

func diagramState(sec *section.Section, r *section.AnalysisResult) diagram.SectionState {
	m := sec.Materials.WithDefaults()

	bars := make([]diagram.Bar, len(r.Layers))
	for i, layer := range r.Layers {
		bars[i] = diagram.Bar{
			Y:          layer.Y,
			Area:       layer.Area,
			Strain:     layer.Strain,
			Stress:     layer.Stress,
			IsTension:  layer.IsTension,
			HasYielded: layer.HasYielded,
		}
	}

	return diagram.SectionState{
		Width:            sec.Width,
		Height:           sec.Height,
		NeutralAxisDepth: r.C,
		Kappa:            r.Kappa,
		Fcd:              r.Fcd,
		EpsC2:            m.EpsC2,
		EpsCU2:           m.EpsCU2,
		EpsY:             r.Fyd / m.Es,
		Bars:             bars,
		MRd:              r.MRd,
		LeverArm:         r.LeverArm,
	}
}

func nonZero(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
