package ec2

import (
	"fmt"
	"math"
)

// EN 1992-1-1 material constants for the parabola-rectangle concrete
// diagram and the bilinear steel diagram (Section 3, fck <= 50 MPa).

const (
	// Default characteristic strengths (MPa)
	DefaultFck = 30.0
	DefaultFyk = 500.0

	// Partial safety factors (Table 2.1N)
	DefaultGammaC = 1.5
	DefaultGammaS = 1.15

	// Sustained-load reduction factor for concrete (Section 3.1.6)
	DefaultAlphaCC = 0.85

	// Modulus of elasticity for reinforcing steel (Section 3.2.7)
	DefaultEs = 200000.0 // MPa

	// Concrete strain limits, parabola-rectangle diagram (Table 3.1)
	DefaultEpsC2  = 0.0020 // strain at peak stress
	DefaultEpsCU2 = 0.0035 // ultimate compressive strain
)

// Materials holds the design material parameters for one capacity
// evaluation. A Materials value is immutable while an analysis runs;
// defaults come from Default(), never from mutable package state, so
// concurrent evaluations with different parameters cannot interfere.
type Materials struct {
	Fck     float64 `json:"fck"`      // Characteristic concrete strength (MPa)
	Fyk     float64 `json:"fyk"`      // Characteristic steel yield strength (MPa)
	GammaC  float64 `json:"gamma_c"`  // Partial safety factor for concrete
	GammaS  float64 `json:"gamma_s"`  // Partial safety factor for steel
	AlphaCC float64 `json:"alpha_cc"` // Sustained-load reduction factor
	Es      float64 `json:"es"`       // Steel elastic modulus (MPa)
	EpsC2   float64 `json:"eps_c2"`   // Concrete strain at peak stress
	EpsCU2  float64 `json:"eps_cu2"`  // Concrete ultimate strain
}

// Default returns the EN 1992-1-1 default parameter set.
func Default() Materials {
	return Materials{
		Fck:     DefaultFck,
		Fyk:     DefaultFyk,
		GammaC:  DefaultGammaC,
		GammaS:  DefaultGammaS,
		AlphaCC: DefaultAlphaCC,
		Es:      DefaultEs,
		EpsC2:   DefaultEpsC2,
		EpsCU2:  DefaultEpsCU2,
	}
}

// WithDefaults fills zero-valued fields with the EN 1992-1-1 defaults.
func (m Materials) WithDefaults() Materials {
	d := Default()
	if m.Fck <= 0 {
		m.Fck = d.Fck
	}
	if m.Fyk <= 0 {
		m.Fyk = d.Fyk
	}
	if m.GammaC <= 0 {
		m.GammaC = d.GammaC
	}
	if m.GammaS <= 0 {
		m.GammaS = d.GammaS
	}
	if m.AlphaCC <= 0 {
		m.AlphaCC = d.AlphaCC
	}
	if m.Es <= 0 {
		m.Es = d.Es
	}
	if m.EpsC2 <= 0 {
		m.EpsC2 = d.EpsC2
	}
	if m.EpsCU2 <= 0 {
		m.EpsCU2 = d.EpsCU2
	}
	return m
}

// Fcd returns the design concrete compressive strength (MPa).
// EN 1992-1-1 Eq. 3.15: fcd = αcc·fck/γc
func (m Materials) Fcd() float64 {
	return m.AlphaCC * m.Fck / m.GammaC
}

// Fyd returns the design steel yield strength (MPa).
func (m Materials) Fyd() float64 {
	return m.Fyk / m.GammaS
}

// Validate checks the parameter set. The stress functions themselves
// are total and perform no checking; validation is a wrapping concern.
func (m Materials) Validate() error {
	if m.Fck <= 0 {
		return fmt.Errorf("fck must be positive, got %.2f", m.Fck)
	}
	if m.Fck > 50 {
		return fmt.Errorf("fck=%.1f MPa exceeds the 50 MPa limit of the parabola-rectangle diagram with n=2", m.Fck)
	}
	if m.Fyk <= 0 {
		return fmt.Errorf("fyk must be positive, got %.2f", m.Fyk)
	}
	if m.GammaC <= 0 || m.GammaS <= 0 {
		return fmt.Errorf("partial safety factors must be positive: gamma_c=%.2f, gamma_s=%.2f", m.GammaC, m.GammaS)
	}
	if m.AlphaCC <= 0 {
		return fmt.Errorf("alpha_cc must be positive, got %.2f", m.AlphaCC)
	}
	if m.Es <= 0 {
		return fmt.Errorf("Es must be positive, got %.2f", m.Es)
	}
	if m.EpsC2 <= 0 || m.EpsC2 >= m.EpsCU2 {
		return fmt.Errorf("strain limits must satisfy 0 < eps_c2 < eps_cu2, got eps_c2=%.4f, eps_cu2=%.4f", m.EpsC2, m.EpsCU2)
	}
	return nil
}

// ConcreteStress returns the concrete compressive stress (MPa) for a
// given strain using the EN 1992-1-1 parabola-rectangle diagram with
// exponent n=2 (valid for fck <= 50 MPa). Tension strains carry no
// stress, and strains beyond eps_cu2 are outside the ultimate domain
// and return zero contribution.
func ConcreteStress(eps, fcd, epsC2, epsCU2 float64) float64 {
	if eps <= 0 {
		return 0
	}
	if eps <= epsC2 {
		eta := eps / epsC2
		return fcd * (1 - (1-eta)*(1-eta))
	}
	if eps <= epsCU2 {
		return fcd
	}
	return 0
}

// SteelStress returns the signed steel stress (MPa) for a given strain.
// Elastic-perfectly-plastic, symmetric in tension and compression, no
// strain hardening and no ultimate-strain cutoff.
func SteelStress(eps, es, fyd float64) float64 {
	sig := es * eps
	if sig > fyd {
		return fyd
	}
	if sig < -fyd {
		return -fyd
	}
	return sig
}

// BarArea returns the total cross-sectional area (mm²) of a group of
// round bars given their diameters (mm).
func BarArea(diams ...float64) float64 {
	var a float64
	for _, d := range diams {
		a += math.Pi * d * d / 4
	}
	return a
}
