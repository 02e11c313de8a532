package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// ParseLayers parses a reinforcement spec of the form
// "y:area[;y:area...]" with ordinates in mm and areas in mm².
func ParseLayers(spec string) ([]SteelLayer, error) {
	var layers []SteelLayer
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("layer spec %q: want y:area", part)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("layer spec %q: bad ordinate: %w", part, err)
		}
		area, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("layer spec %q: bad area: %w", part, err)
		}
		layers = append(layers, SteelLayer{Y: y, Area: area})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("layer spec %q: no layers", spec)
	}
	return layers, nil
}

// ParseBars parses a bar-group spec of the form "y:n*d" (n bars of
// diameter d mm at ordinate y mm), e.g. "557:4*16".
func ParseBars(spec string) (SteelLayer, error) {
	fields := strings.SplitN(spec, ":", 2)
	if len(fields) != 2 {
		return SteelLayer{}, fmt.Errorf("bar spec %q: want y:n*d", spec)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return SteelLayer{}, fmt.Errorf("bar spec %q: bad ordinate: %w", spec, err)
	}

	group := strings.SplitN(fields[1], "*", 2)
	if len(group) != 2 {
		return SteelLayer{}, fmt.Errorf("bar spec %q: want y:n*d", spec)
	}
	n, err := strconv.Atoi(strings.TrimSpace(group[0]))
	if err != nil || n < 1 {
		return SteelLayer{}, fmt.Errorf("bar spec %q: bad bar count", spec)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(group[1]), 64)
	if err != nil {
		return SteelLayer{}, fmt.Errorf("bar spec %q: bad diameter: %w", spec, err)
	}

	diams := make([]float64, n)
	for i := range diams {
		diams[i] = d
	}
	return SteelLayer{
		Y:           y,
		Area:        ec2.BarArea(diams...),
		Description: fmt.Sprintf("%d-%gmm", n, d),
	}, nil
}
