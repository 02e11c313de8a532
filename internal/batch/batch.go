// Package batch evaluates many rectangular sections read from an xlsx
// workbook, one section per row.
package batch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
	"github.com/jramirezbandera/ec2fiber/internal/section"
)

// Expected input columns, first sheet, header row skipped:
//
//	name | width_mm | height_mm | layers (y:area;...) | fck | fyk | sign
//
// fck, fyk and sign are optional; blanks fall back to the EN 1992-1-1
// defaults and compress-top bending.

// Item is the outcome for one workbook row.
type Item struct {
	Row     int // 1-based workbook row
	Section *section.Section
	Top     *section.AnalysisResult
	Bottom  *section.AnalysisResult
	Err     error
}

// Evaluate reads sections from the first sheet and evaluates each for
// both bending signs. Malformed rows are reported per-item, not fatal.
func Evaluate(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var items []Item
	for i := 1; i < len(rows); i++ {
		item := Item{Row: i + 1}

		s, err := parseRow(rows[i])
		if err != nil {
			item.Err = err
			items = append(items, item)
			continue
		}
		item.Section = s

		top := *s
		top.Sign = section.CompressTop
		if item.Top, err = top.Analyze(); err != nil {
			item.Err = err
			items = append(items, item)
			continue
		}

		bottom := *s
		bottom.Sign = section.CompressBottom
		if item.Bottom, err = bottom.Analyze(); err != nil {
			item.Err = err
		}

		items = append(items, item)
	}

	return items, nil
}

func parseRow(row []string) (*section.Section, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("want at least 4 columns (name, width, height, layers), got %d", len(row))
	}

	width, err := toFloat(row[1])
	if err != nil {
		return nil, fmt.Errorf("bad width %q: %w", row[1], err)
	}
	height, err := toFloat(row[2])
	if err != nil {
		return nil, fmt.Errorf("bad height %q: %w", row[2], err)
	}
	layers, err := section.ParseLayers(row[3])
	if err != nil {
		return nil, err
	}

	var materials ec2.Materials
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		if materials.Fck, err = toFloat(row[4]); err != nil {
			return nil, fmt.Errorf("bad fck %q: %w", row[4], err)
		}
	}
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		if materials.Fyk, err = toFloat(row[5]); err != nil {
			return nil, fmt.Errorf("bad fyk %q: %w", row[5], err)
		}
	}

	s := &section.Section{
		Name:      strings.TrimSpace(row[0]),
		Width:     width,
		Height:    height,
		Layers:    layers,
		Materials: materials,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteResults saves the evaluated items to a new workbook at path.
func WriteResults(items []Item, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{
		"row", "name", "status",
		"MRd+ (kN·m)", "c+ (mm)", "z+ (mm)",
		"MRd- (kN·m)", "c- (mm)", "z- (mm)",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, item := range items {
		values := rowValues(item)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func rowValues(item Item) []interface{} {
	if item.Err != nil {
		name := ""
		if item.Section != nil {
			name = item.Section.Name
		}
		return []interface{}{item.Row, name, fmt.Sprintf("error: %v", item.Err)}
	}

	return []interface{}{
		item.Row, item.Section.Name, "ok",
		round2(item.Top.MRd), round2(item.Top.C), leverCell(item.Top.LeverArm),
		round2(item.Bottom.MRd), round2(item.Bottom.C), leverCell(item.Bottom.LeverArm),
	}
}

func leverCell(z float64) interface{} {
	if math.IsNaN(z) {
		return "-"
	}
	return round2(z)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
