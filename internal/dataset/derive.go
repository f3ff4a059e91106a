package dataset

import "math"

// FilterExposures returns the subsequence of exposures that pass f, in their
// input order. FilterAll returns a copy of the whole list.
func FilterExposures(exposures []Exposure, f Filter) []Exposure {
	out := make([]Exposure, 0, len(exposures))
	for _, e := range exposures {
		if f.Matches(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// ExposureStats are the figures shown above the scanner results.
type ExposureStats struct {
	Total          int `yaml:"total"`
	Platforms      int `yaml:"platforms"`
	Cloaked        int `yaml:"cloaked"`
	ProtectionRate int `yaml:"protection_rate"`
}

func (ds *Dataset) ExposureStats() ExposureStats {
	platforms := make(map[string]struct{}, len(ds.Exposures))
	cloaked := 0
	for _, e := range ds.Exposures {
		platforms[e.Platform] = struct{}{}
		if e.Status == StatusCloaked {
			cloaked++
		}
	}
	return ExposureStats{
		Total:          len(ds.Exposures),
		Platforms:      len(platforms),
		Cloaked:        cloaked,
		ProtectionRate: Percent(cloaked, len(ds.Exposures)),
	}
}

// SectionStats summarises one vault section header.
type SectionStats struct {
	Items int `yaml:"items"`
	Apps  int `yaml:"apps"`
}

func (s VaultSection) Stats() SectionStats {
	apps := 0
	for _, it := range s.Items {
		apps += it.Apps
	}
	return SectionStats{Items: len(s.Items), Apps: apps}
}

// VaultStats totals every section.
type VaultStats struct {
	Items              int `yaml:"items"`
	Apps               int `yaml:"apps"`
	EncryptionCoverage int `yaml:"encryption_coverage"`
}

func (ds *Dataset) VaultStats() VaultStats {
	var out VaultStats
	for _, s := range ds.Vault.Sections {
		st := s.Stats()
		out.Items += st.Items
		out.Apps += st.Apps
	}
	out.EncryptionCoverage = ds.Vault.EncryptionCoverage
	return out
}

// EarningsStats are the monetization headline figures, in whole dollars per month.
type EarningsStats struct {
	Current   int `yaml:"current"`
	Potential int `yaml:"potential"`
	Shared    int `yaml:"shared"`
	Protected int `yaml:"protected"`
	// SharedPercent is the share of categories with sharing enabled.
	SharedPercent int `yaml:"shared_percent"`
}

func (ds *Dataset) EarningsStats() EarningsStats {
	var out EarningsStats
	for _, c := range ds.Monetization.Categories {
		out.Potential += c.MonthlyValue
		if c.Sharing {
			out.Current += c.MonthlyValue
			out.Shared++
		}
	}
	out.Protected = len(ds.Monetization.Categories) - out.Shared
	out.SharedPercent = Percent(out.Shared, len(ds.Monetization.Categories))
	return out
}

// ScoreBand maps an exposure score onto its risk label.
type ScoreBand string

const (
	BandLow      ScoreBand = "Low Risk"
	BandModerate ScoreBand = "Moderate Risk"
	BandHigh     ScoreBand = "High Risk"
)

func BandForScore(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandLow
	case score >= 50:
		return BandModerate
	default:
		return BandHigh
	}
}

// Level is the risk level matching the band, used for coloring.
func (b ScoreBand) Level() RiskLevel {
	switch b {
	case BandLow:
		return RiskLow
	case BandModerate:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Percent is part/whole rounded half away from zero. A zero whole yields 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// Summary gathers every derived figure; it backs the dump command.
type Summary struct {
	Score     int           `yaml:"score"`
	Band      ScoreBand     `yaml:"band"`
	Exposures ExposureStats `yaml:"exposures"`
	Vault     VaultStats    `yaml:"vault"`
	Earnings  EarningsStats `yaml:"earnings"`
}

func (ds *Dataset) Summary() Summary {
	return Summary{
		Score:     ds.Home.Score,
		Band:      BandForScore(ds.Home.Score),
		Exposures: ds.ExposureStats(),
		Vault:     ds.VaultStats(),
		Earnings:  ds.EarningsStats(),
	}
}
