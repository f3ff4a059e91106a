package dataset

import (
	"fmt"
	"strings"
)

// ExposureType is the kind of likeness a platform holds.
type ExposureType string

const (
	TypeImage    ExposureType = "image"
	TypeVoice    ExposureType = "voice"
	TypeText     ExposureType = "text"
	TypeLocation ExposureType = "location"
)

// ExposureStatus tracks whether an exposure has been cloaked.
type ExposureStatus string

const (
	StatusUncloaked ExposureStatus = "uncloaked"
	StatusCloaked   ExposureStatus = "cloaked"
	StatusPending   ExposureStatus = "pending"
)

// RiskLevel grades exposures and risk notices.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// VaultStatus describes where a vault item lives.
type VaultStatus string

const (
	VaultEncrypted VaultStatus = "encrypted"
	VaultLocal     VaultStatus = "local"
	VaultShared    VaultStatus = "shared"
)

// CategoryStatus is the monetization state of a data category.
type CategoryStatus string

const (
	CategoryProtected   CategoryStatus = "protected"
	CategoryMonetizable CategoryStatus = "monetizable"
	CategoryShared      CategoryStatus = "shared"
)

// SectionID names one of the four collapsible vault sections.
type SectionID string

const (
	SectionBiometric     SectionID = "biometric"
	SectionCommunication SectionID = "communication"
	SectionDocuments     SectionID = "documents"
	SectionApps          SectionID = "apps"
)

// Filter narrows the exposure list. FilterAll keeps everything.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterImage    Filter = Filter(TypeImage)
	FilterVoice    Filter = Filter(TypeVoice)
	FilterText     Filter = Filter(TypeText)
	FilterLocation Filter = Filter(TypeLocation)
)

// ErrInvalidEnum is returned when a value is outside its closed set.
type ErrInvalidEnum struct {
	Kind  string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

func ExposureTypes() []ExposureType {
	return []ExposureType{TypeImage, TypeVoice, TypeText, TypeLocation}
}

func Filters() []Filter {
	return []Filter{FilterAll, FilterImage, FilterVoice, FilterText, FilterLocation}
}

func SectionIDs() []SectionID {
	return []SectionID{SectionBiometric, SectionCommunication, SectionDocuments, SectionApps}
}

func ParseExposureType(s string) (ExposureType, error) {
	return parseEnum("exposure type", s, ExposureTypes())
}

func ParseExposureStatus(s string) (ExposureStatus, error) {
	return parseEnum("exposure status", s, []ExposureStatus{StatusUncloaked, StatusCloaked, StatusPending})
}

func ParseRiskLevel(s string) (RiskLevel, error) {
	return parseEnum("risk level", s, []RiskLevel{RiskHigh, RiskMedium, RiskLow})
}

func ParseVaultStatus(s string) (VaultStatus, error) {
	return parseEnum("vault status", s, []VaultStatus{VaultEncrypted, VaultLocal, VaultShared})
}

func ParseCategoryStatus(s string) (CategoryStatus, error) {
	return parseEnum("category status", s, []CategoryStatus{CategoryProtected, CategoryMonetizable, CategoryShared})
}

func ParseSectionID(s string) (SectionID, error) {
	return parseEnum("vault section", s, SectionIDs())
}

func ParseFilter(s string) (Filter, error) {
	return parseEnum("filter", s, Filters())
}

func parseEnum[T ~string](kind, s string, valid []T) (T, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, v := range valid {
		if string(v) == norm {
			return v, nil
		}
	}
	var zero T
	return zero, &ErrInvalidEnum{Kind: kind, Value: s}
}

// Label is the capitalised display form ("Uncloaked").
func (s ExposureStatus) Label() string { return capitalize(string(s)) }

func (r RiskLevel) Label() string { return capitalize(string(r)) }

func (t ExposureType) Label() string { return capitalize(string(t)) }

func (s VaultStatus) Label() string {
	switch s {
	case VaultEncrypted:
		return "Encrypted"
	case VaultLocal:
		return "Local Only"
	case VaultShared:
		return "Shared"
	default:
		return string(s)
	}
}

func (s CategoryStatus) Label() string { return capitalize(string(s)) }

// Label is the filter-bar caption.
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterImage:
		return "Images"
	case FilterVoice:
		return "Voice"
	case FilterText:
		return "Text"
	case FilterLocation:
		return "Location"
	default:
		return string(f)
	}
}

// Next cycles through Filters in display order.
func (f Filter) Next() Filter {
	all := Filters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Matches reports whether an exposure of type t passes the filter.
func (f Filter) Matches(t ExposureType) bool {
	return f == FilterAll || string(f) == string(t)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
