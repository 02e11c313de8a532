// Package report renders a PDF calculation note for a section
// capacity evaluation.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/jramirezbandera/ec2fiber/internal/section"
)

// Input describes the document header.
type Input struct {
	Project string
	Author  string
	Title   string
	Notes   string
}

// Write renders a calculation note covering both bending signs and
// saves it to path.
func Write(in Input, s *section.Section, top, bottom *section.AnalysisResult, path string) error {
	if in.Title == "" {
		in.Title = "Bending Resistance Calculation Note"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Method: EN 1992-1-1 parabola-rectangle diagram, fiber integration")
	pdf.Ln(10)

	// Section data
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Cross-Section")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	name := s.Name
	if name == "" {
		name = "(unnamed)"
	}
	m := s.Materials.WithDefaults()
	rows := [][2]string{
		{"Section", name},
		{"Width b", fmt.Sprintf("%.0f mm", s.Width)},
		{"Height h", fmt.Sprintf("%.0f mm", s.Height)},
		{"fck / fyk", fmt.Sprintf("%.1f / %.1f MPa", m.Fck, m.Fyk)},
		{"fcd / fyd", fmt.Sprintf("%.2f / %.2f MPa", m.Fcd(), m.Fyd())},
		{"gamma_c / gamma_s", fmt.Sprintf("%.2f / %.2f", m.GammaC, m.GammaS)},
		{"eps_c2 / eps_cu2", fmt.Sprintf("%.4f / %.4f", m.EpsC2, m.EpsCU2)},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Reinforcement")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for i, layer := range s.Layers {
		desc := layer.Description
		if desc == "" {
			desc = "-"
		}
		pdf.Cell(0, 6, fmt.Sprintf("Layer %d: y = %.0f mm, As = %.2f mm2 (%s)", i+1, layer.Y, layer.Area, desc))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	writeResult(pdf, "Compression on Top Edge (MRd+)", top)
	writeResult(pdf, "Compression on Bottom Edge (MRd-)", bottom)

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}

func writeResult(pdf *gofpdf.Fpdf, title string, r *section.AnalysisResult) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)

	lever := "undefined (no tension steel)"
	if !math.IsNaN(r.LeverArm) {
		lever = fmt.Sprintf("%.1f mm", r.LeverArm)
	}

	rows := [][2]string{
		{"MRd", fmt.Sprintf("%.2f kN-m", r.MRd)},
		{"Neutral axis depth c", fmt.Sprintf("%.1f mm", r.C)},
		{"Equivalent lever arm z", lever},
		{"Curvature", fmt.Sprintf("%.3e 1/mm", r.Kappa)},
		{"Axial residual N", fmt.Sprintf("%.3e N", r.ResidualN)},
		{"Solver", fmt.Sprintf("%s (%d iterations)", r.Status, r.Iterations)},
		{"Cc / Cs / T", fmt.Sprintf("%.1f / %.1f / %.1f kN", r.Cc, r.Cs, r.T)},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
