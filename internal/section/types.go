package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// Solver and discretization defaults.
const (
	DefaultSlices  = 400  // concrete fiber count
	DefaultTolN    = 1e-3 // axial equilibrium tolerance (N)
	DefaultMaxIter = 120  // bisection iteration budget
)

// BendingSign selects which edge of the section is compressed at the
// ultimate state.
type BendingSign string

const (
	// CompressTop puts the extreme compression fiber at y = 0.
	CompressTop BendingSign = "top"
	// CompressBottom puts the extreme compression fiber at y = h.
	CompressBottom BendingSign = "bottom"
)

// SteelLayer represents a layer of reinforcement at a specific depth.
type SteelLayer struct {
	// Position of the layer centroid, measured from the top edge
	Y float64 `json:"y"` // mm

	// Reinforcement area in this layer
	Area float64 `json:"area"` // mm²

	// Optional: description of bars (e.g., "4-16mm")
	Description string `json:"description,omitempty"`
}

// Section represents a rectangular reinforced-concrete cross-section.
// Ordinates run from the top edge (y = 0) downward to y = Height.
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Geometry (mm)
	Width  float64 `json:"width"`  // b
	Height float64 `json:"height"` // h

	// Reinforcement layers
	Layers []SteelLayer `json:"reinforcement"`

	// Material parameters; zero-valued fields fall back to the
	// EN 1992-1-1 defaults
	Materials ec2.Materials `json:"materials,omitempty"`

	// Analysis controls (zero values fall back to the defaults above)
	Slices  int         `json:"slices,omitempty"`
	Sign    BendingSign `json:"sign,omitempty"`
	TolN    float64     `json:"tol_n,omitempty"`
	MaxIter int         `json:"max_iter,omitempty"`
}

// LoadFromFile loads a section definition from a JSON file.
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var s Section
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// normalized returns a copy with defaults filled in. The receiver is
// never modified; Layers is shared but treated as read-only.
func (s Section) normalized() Section {
	s.Materials = s.Materials.WithDefaults()
	if s.Slices == 0 {
		s.Slices = DefaultSlices
	}
	if s.Sign == "" {
		s.Sign = CompressTop
	}
	if s.TolN == 0 {
		s.TolN = DefaultTolN
	}
	if s.MaxIter == 0 {
		s.MaxIter = DefaultMaxIter
	}
	return s
}

// Validate checks the section definition. The numerical core assumes
// valid input; all rejection happens here.
func (s *Section) Validate() error {
	if s.Width <= 0 {
		return &ValidationError{fmt.Sprintf("width must be positive, got %.2f", s.Width)}
	}
	if s.Height <= 0 {
		return &ValidationError{fmt.Sprintf("height must be positive, got %.2f", s.Height)}
	}
	if len(s.Layers) == 0 {
		return &ValidationError{"section must have at least one reinforcement layer"}
	}
	for i, layer := range s.Layers {
		if layer.Area <= 0 {
			return &ValidationError{fmt.Sprintf("reinforcement layer %d must have positive area", i+1)}
		}
		if layer.Y < 0 || layer.Y > s.Height {
			return &ValidationError{fmt.Sprintf("reinforcement layer %d ordinate %.1f outside [0, %.1f]", i+1, layer.Y, s.Height)}
		}
	}
	if s.Slices < 0 {
		return &ValidationError{fmt.Sprintf("slice count must not be negative (0 selects the default %d), got %d", DefaultSlices, s.Slices)}
	}
	if s.Sign != "" && s.Sign != CompressTop && s.Sign != CompressBottom {
		return &ValidationError{fmt.Sprintf("bending sign must be %q or %q, got %q", CompressTop, CompressBottom, s.Sign)}
	}
	if s.TolN < 0 {
		return &ValidationError{fmt.Sprintf("tolerance must not be negative (0 selects the default %g N), got %g", DefaultTolN, s.TolN)}
	}
	if s.MaxIter < 0 {
		return &ValidationError{fmt.Sprintf("iteration budget must not be negative (0 selects the default %d), got %d", DefaultMaxIter, s.MaxIter)}
	}
	if err := s.Materials.WithDefaults().Validate(); err != nil {
		return &ValidationError{err.Error()}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
