package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
	"github.com/jramirezbandera/ec2fiber/internal/section"
)

func TestWrite(t *testing.T) {
	s := &section.Section{
		Name:   "B300x600",
		Width:  300,
		Height: 600,
		Layers: []section.SteelLayer{
			{Y: 43, Area: ec2.BarArea(16, 16), Description: "2-16mm"},
			{Y: 557, Area: ec2.BarArea(16, 16, 16, 16), Description: "4-16mm"},
		},
	}

	topSec := *s
	topSec.Sign = section.CompressTop
	top, err := topSec.Analyze()
	if err != nil {
		t.Fatal(err)
	}

	bottomSec := *s
	bottomSec.Sign = section.CompressBottom
	bottom, err := bottomSec.Analyze()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "note.pdf")
	in := Input{Project: "Test", Author: "QA", Notes: "Reference section."}
	if err := Write(in, s, top, bottom, path); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}
