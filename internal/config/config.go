// Package config loads material parameter profiles from INI files, so
// a national annex or project-specific parameter set can be reused
// across runs without repeating flags.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// LoadMaterials reads a [materials] section from an INI profile.
// Missing keys keep their EN 1992-1-1 defaults.
//
// Example profile:
//
//	[materials]
//	fck      = 25
//	fyk      = 500
//	gamma_c  = 1.5
//	gamma_s  = 1.15
//	alpha_cc = 1.0
func LoadMaterials(path string) (ec2.Materials, error) {
	file, err := ini.Load(path)
	if err != nil {
		return ec2.Materials{}, fmt.Errorf("loading materials profile: %w", err)
	}

	sec := file.Section("materials")
	m := ec2.Materials{
		Fck:     sec.Key("fck").MustFloat64(ec2.DefaultFck),
		Fyk:     sec.Key("fyk").MustFloat64(ec2.DefaultFyk),
		GammaC:  sec.Key("gamma_c").MustFloat64(ec2.DefaultGammaC),
		GammaS:  sec.Key("gamma_s").MustFloat64(ec2.DefaultGammaS),
		AlphaCC: sec.Key("alpha_cc").MustFloat64(ec2.DefaultAlphaCC),
		Es:      sec.Key("es").MustFloat64(ec2.DefaultEs),
		EpsC2:   sec.Key("eps_c2").MustFloat64(ec2.DefaultEpsC2),
		EpsCU2:  sec.Key("eps_cu2").MustFloat64(ec2.DefaultEpsCU2),
	}

	if err := m.Validate(); err != nil {
		return ec2.Materials{}, fmt.Errorf("materials profile %s: %w", path, err)
	}
	return m, nil
}
