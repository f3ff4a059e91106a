package dataset

// TOML fixtures decode straight into the closed enums, so an out-of-range
// value fails the decode with ErrInvalidEnum.

func (t *ExposureType) UnmarshalText(b []byte) error {
	v, err := ParseExposureType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (s *ExposureStatus) UnmarshalText(b []byte) error {
	v, err := ParseExposureStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (r *RiskLevel) UnmarshalText(b []byte) error {
	v, err := ParseRiskLevel(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (s *VaultStatus) UnmarshalText(b []byte) error {
	v, err := ParseVaultStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *CategoryStatus) UnmarshalText(b []byte) error {
	v, err := ParseCategoryStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *SectionID) UnmarshalText(b []byte) error {
	v, err := ParseSectionID(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (f *Filter) UnmarshalText(b []byte) error {
	v, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
