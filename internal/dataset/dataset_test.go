package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixturesDecode(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	require.Len(t, ds.Exposures, 6)
	require.Len(t, ds.Vault.Sections, 4)
	require.Len(t, ds.Monetization.Categories, 8)
	require.Len(t, ds.Education.Laws, 4)
	require.Len(t, ds.Education.Risks, 3)
	require.Len(t, ds.Education.Updates, 3)
	require.Len(t, ds.Education.Tips, 4)
	assert.Equal(t, 72, ds.Home.Score)
	assert.Equal(t, "John Doe", ds.Profile.Name)

	assert.Equal(t, TypeVoice, ds.Exposures[2].Type)
	assert.Equal(t, StatusPending, ds.Exposures[2].Status)
	assert.False(t, ds.Exposures[2].HasThumbnail())
	assert.True(t, ds.Exposures[0].HasThumbnail())
}

func TestFilterExposuresKeepsOrderAndType(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	for _, f := range Filters() {
		got := FilterExposures(ds.Exposures, f)
		if f == FilterAll {
			if diff := cmp.Diff(ds.Exposures, got); diff != "" {
				t.Fatalf("all filter changed list (-want +got):\n%s", diff)
			}
			continue
		}
		last := -1
		for _, e := range got {
			require.Equal(t, string(f), string(e.Type), "filter %s leaked %s", f, e.Type)
			idx := indexOfID(ds.Exposures, e.ID)
			require.Greater(t, idx, last, "filter %s reordered results", f)
			last = idx
		}
	}
}

func TestFilterVoiceMatchesYouTube(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	got := FilterExposures(ds.Exposures, FilterVoice)
	require.Len(t, got, 1)
	assert.Equal(t, "YouTube", got[0].Platform)

	assert.Empty(t, FilterExposures(ds.Exposures, FilterText))
	assert.Len(t, FilterExposures(ds.Exposures, FilterImage), 4)
	assert.Len(t, FilterExposures(ds.Exposures, FilterLocation), 1)
}

func TestDerivedFigures(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	want := Summary{
		Score:     72,
		Band:      BandModerate,
		Exposures: ExposureStats{Total: 6, Platforms: 6, Cloaked: 2, ProtectionRate: 33},
		Vault:     VaultStats{Items: 12, Apps: 35, EncryptionCoverage: 100},
		Earnings:  EarningsStats{Current: 43, Potential: 114, Shared: 3, Protected: 5, SharedPercent: 38},
	}
	if diff := cmp.Diff(want, ds.Summary()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	bio, ok := ds.Section(SectionBiometric)
	require.True(t, ok)
	assert.Equal(t, SectionStats{Items: 3, Apps: 6}, bio.Stats())
}

func TestBandForScore(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreBand
	}{
		{100, BandLow},
		{80, BandLow},
		{79, BandModerate},
		{50, BandModerate},
		{49, BandHigh},
		{0, BandHigh},
	}
	for _, tt := range tests {
		if got := BandForScore(tt.score); got != tt.want {
			t.Errorf("BandForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPercentZeroWhole(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 67, Percent(2, 3))
}

func TestParseFilterRejectsUnknown(t *testing.T) {
	f, err := ParseFilter(" Voice ")
	require.NoError(t, err)
	assert.Equal(t, FilterVoice, f)

	_, err = ParseFilter("video")
	var enumErr *ErrInvalidEnum
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, "filter", enumErr.Kind)
}

func TestFilterNextCycles(t *testing.T) {
	f := FilterAll
	seen := make([]Filter, 0, len(Filters()))
	for range Filters() {
		seen = append(seen, f)
		f = f.Next()
	}
	assert.Equal(t, FilterAll, f)
	assert.Equal(t, Filters(), seen)
}

func TestDecodeRejectsInvalidEnum(t *testing.T) {
	src := strings.Replace(defaultFixtures, `type = "voice"`, `type = "video"`, 1)
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	src := defaultFixtures + "\n[extra]\nfoo = 1\n"
	_, err := Decode(strings.NewReader(src))
	require.ErrorContains(t, err, "unknown keys")
}

func TestValidateJoinsProblems(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	ds.Exposures[1].ID = ds.Exposures[0].ID
	ds.Vault.Sections = ds.Vault.Sections[:3]
	ds.Monetization.Categories[0].MonthlyValue = -1

	err = ds.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "duplicate id")
	assert.Contains(t, msg, `section "apps" appears 0 times`)
	assert.Contains(t, msg, "negative monthly value")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultFixtures), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Exposures, 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "open fixtures")
}

func indexOfID(list []Exposure, id int) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}
