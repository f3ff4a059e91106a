package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed fixtures.toml
var defaultFixtures string

// Dataset is the full mock content behind every panel. It is decoded once and
// treated as read-only afterwards.
type Dataset struct {
	Home         Home         `toml:"home" yaml:"home"`
	Scanner      Scanner      `toml:"scanner" yaml:"scanner"`
	Exposures    []Exposure   `toml:"exposures" yaml:"exposures"`
	Vault        Vault        `toml:"vault" yaml:"vault"`
	Monetization Monetization `toml:"monetization" yaml:"monetization"`
	Education    Education    `toml:"education" yaml:"education"`
	Profile      Profile      `toml:"profile" yaml:"profile"`
}

type Home struct {
	Score                int          `toml:"score" yaml:"score"`
	AlertTitle           string       `toml:"alert_title" yaml:"alert_title"`
	AlertBody            string       `toml:"alert_body" yaml:"alert_body"`
	ScoreSummary         string       `toml:"score_summary" yaml:"score_summary"`
	ImageExposurePercent int          `toml:"image_exposure_percent" yaml:"image_exposure_percent"`
	ImagePlatforms       int          `toml:"image_platforms" yaml:"image_platforms"`
	VoiceSamples         int          `toml:"voice_samples" yaml:"voice_samples"`
	ImagesToProtect      int          `toml:"images_to_protect" yaml:"images_to_protect"`
	Bars                 []PrivacyBar `toml:"bars" yaml:"bars"`
}

type PrivacyBar struct {
	Label   string `toml:"label" yaml:"label"`
	Percent int    `toml:"percent" yaml:"percent"`
}

type Scanner struct {
	PlatformsNote string `toml:"platforms_note" yaml:"platforms_note"`
	AIRisk        string `toml:"ai_risk" yaml:"ai_risk"`
	AIRiskNote    string `toml:"ai_risk_note" yaml:"ai_risk_note"`
}

type Exposure struct {
	ID          int            `toml:"id" yaml:"id"`
	Type        ExposureType   `toml:"type" yaml:"type"`
	Platform    string         `toml:"platform" yaml:"platform"`
	Description string         `toml:"description" yaml:"description"`
	Status      ExposureStatus `toml:"status" yaml:"status"`
	Risk        RiskLevel      `toml:"risk" yaml:"risk"`
	Thumbnail   string         `toml:"thumbnail" yaml:"thumbnail,omitempty"`
}

// HasThumbnail reports whether a remote preview exists. Rows without one fall
// back to the type glyph.
func (e Exposure) HasThumbnail() bool { return strings.TrimSpace(e.Thumbnail) != "" }

type Vault struct {
	Banner             string         `toml:"banner" yaml:"banner"`
	EncryptionCoverage int            `toml:"encryption_coverage" yaml:"encryption_coverage"`
	Sections           []VaultSection `toml:"sections" yaml:"sections"`
}

type VaultSection struct {
	ID    SectionID   `toml:"id" yaml:"id"`
	Title string      `toml:"title" yaml:"title"`
	Items []VaultItem `toml:"items" yaml:"items"`
}

type VaultItem struct {
	Name    string      `toml:"name" yaml:"name"`
	Apps    int         `toml:"apps" yaml:"apps"`
	Status  VaultStatus `toml:"status" yaml:"status"`
	Sharing bool        `toml:"sharing" yaml:"sharing"`
}

type Monetization struct {
	ActiveBuyers int            `toml:"active_buyers" yaml:"active_buyers"`
	Categories   []DataCategory `toml:"categories" yaml:"categories"`
	Rules        []Toggle       `toml:"rules" yaml:"rules"`
}

type DataCategory struct {
	Name         string         `toml:"name" yaml:"name"`
	MonthlyValue int            `toml:"monthly_value" yaml:"monthly_value"`
	Status       CategoryStatus `toml:"status" yaml:"status"`
	Sharing      bool           `toml:"sharing" yaml:"sharing"`
	Description  string         `toml:"description" yaml:"description"`
}

// Toggle is a titled on/off switch rendered read-only.
type Toggle struct {
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
}

type Education struct {
	Tips    []string `toml:"tips" yaml:"tips"`
	Laws    []Law    `toml:"laws" yaml:"laws"`
	Risks   []Risk   `toml:"risks" yaml:"risks"`
	Updates []Update `toml:"updates" yaml:"updates"`
}

type Law struct {
	Name        string `toml:"name" yaml:"name"`
	Region      string `toml:"region" yaml:"region"`
	Status      string `toml:"status" yaml:"status"`
	Description string `toml:"description" yaml:"description"`
	Coverage    string `toml:"coverage" yaml:"coverage"`
}

type Risk struct {
	Title       string    `toml:"title" yaml:"title"`
	Severity    RiskLevel `toml:"severity" yaml:"severity"`
	Date        string    `toml:"date" yaml:"date"`
	Description string    `toml:"description" yaml:"description"`
	Impact      string    `toml:"impact" yaml:"impact"`
}

type Update struct {
	Title       string `toml:"title" yaml:"title"`
	Date        string `toml:"date" yaml:"date"`
	Region      string `toml:"region" yaml:"region"`
	Description string `toml:"description" yaml:"description"`
}

type Profile struct {
	Name     string   `toml:"name" yaml:"name"`
	Initials string   `toml:"initials" yaml:"initials"`
	Email    string   `toml:"email" yaml:"email"`
	Badges   []string `toml:"badges" yaml:"badges"`
	UserKey  string   `toml:"user_key" yaml:"user_key"`
	Version  string   `toml:"version" yaml:"version"`
	Security []Toggle `toml:"security" yaml:"security"`
	Devices  []Device `toml:"devices" yaml:"devices"`
}

type Device struct {
	Name       string `toml:"name" yaml:"name"`
	LastSynced string `toml:"last_synced" yaml:"last_synced"`
	State      string `toml:"state" yaml:"state"`
}

// Default decodes the embedded fixtures.
func Default() (*Dataset, error) {
	ds, err := Decode(strings.NewReader(defaultFixtures))
	if err != nil {
		return nil, fmt.Errorf("embedded fixtures: %w", err)
	}
	return ds, nil
}

// Load decodes path, or the embedded fixtures when path is empty.
func Load(path string) (*Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a TOML dataset and validates it. Unknown keys are rejected so
// typos in hand-edited fixture files surface early.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	md, err := toml.NewDecoder(r).Decode(&ds)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks the structural invariants and reports every violation.
func (ds *Dataset) Validate() error {
	var errs []error

	seen := make(map[int]bool, len(ds.Exposures))
	for i, e := range ds.Exposures {
		if e.ID <= 0 {
			errs = append(errs, fmt.Errorf("exposure[%d]: id must be positive", i))
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("exposure[%d]: duplicate id %d", i, e.ID))
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Platform) == "" {
			errs = append(errs, fmt.Errorf("exposure[%d]: platform required", i))
		}
		if e.Type == "" || e.Status == "" || e.Risk == "" {
			errs = append(errs, fmt.Errorf("exposure[%d]: type, status and risk are required", i))
		}
	}

	sections := make(map[SectionID]int, len(ds.Vault.Sections))
	for i, s := range ds.Vault.Sections {
		sections[s.ID]++
		for j, it := range s.Items {
			if it.Apps < 0 {
				errs = append(errs, fmt.Errorf("vault.sections[%d].items[%d]: negative app count", i, j))
			}
			if it.Status == "" {
				errs = append(errs, fmt.Errorf("vault.sections[%d].items[%d]: status required", i, j))
			}
		}
	}
	for _, id := range SectionIDs() {
		if n := sections[id]; n != 1 {
			errs = append(errs, fmt.Errorf("vault: section %q appears %d times, want 1", id, n))
		}
	}
	if len(ds.Vault.Sections) != len(SectionIDs()) {
		errs = append(errs, fmt.Errorf("vault: %d sections, want %d", len(ds.Vault.Sections), len(SectionIDs())))
	}

	for i, c := range ds.Monetization.Categories {
		if c.MonthlyValue < 0 {
			errs = append(errs, fmt.Errorf("monetization.categories[%d]: negative monthly value", i))
		}
		if c.Status == "" {
			errs = append(errs, fmt.Errorf("monetization.categories[%d]: status required", i))
		}
	}

	if ds.Home.Score < 0 || ds.Home.Score > 100 {
		errs = append(errs, fmt.Errorf("home: score %d outside 0..100", ds.Home.Score))
	}
	for i, b := range ds.Home.Bars {
		if b.Percent < 0 || b.Percent > 100 {
			errs = append(errs, fmt.Errorf("home.bars[%d]: percent %d outside 0..100", i, b.Percent))
		}
	}
	return errors.Join(errs...)
}

// Section returns the vault section with id.
func (ds *Dataset) Section(id SectionID) (VaultSection, bool) {
	for _, s := range ds.Vault.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return VaultSection{}, false
}
