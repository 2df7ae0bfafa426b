package stable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablemgr/stableapi/models"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestNewDerivedBalances(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		breedCost  *string
		wantStrt   string
		wantZedBal string
	}{
		{
			name:       "tenth splits to 0.05",
			breedCost:  strp("0.1"),
			wantStrt:   "0.05",
			wantZedBal: "0.05",
		},
		{
			name:       "whole number halves to 0.5",
			breedCost:  strp("1"),
			wantStrt:   "0.5",
			wantZedBal: "0.5",
		},
		{
			name:       "even cost strips to a bare integer",
			breedCost:  strp("2"),
			wantStrt:   "1",
			wantZedBal: "1",
		},
		{
			name:       "odd cost keeps one fractional digit",
			breedCost:  strp("3"),
			wantStrt:   "1.5",
			wantZedBal: "1.5",
		},
		{
			name:       "zero cost",
			breedCost:  strp("0"),
			wantStrt:   "0",
			wantZedBal: "0",
		},
		{
			name:       "sub-millis cost collapses to zero after 3-digit render",
			breedCost:  strp("0.0001"),
			wantStrt:   "0",
			wantZedBal: "0",
		},
		{
			name:       "unparseable cost treated as zero",
			breedCost:  strp("not-a-number"),
			wantStrt:   "0",
			wantZedBal: "0",
		},
		{
			name:       "absent cost defaults to zero",
			breedCost:  nil,
			wantStrt:   "0",
			wantZedBal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New("id-1", models.HorseCreate{Name: "Comet", BreedCost: tt.breedCost}, intp(0), now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStrt, h.StrtZedBal)
			assert.Equal(t, tt.wantZedBal, h.ZedBalance)
			assert.Equal(t, "0", h.TotalRaceNetPL)
		})
	}
}

func TestNewForcesTotalRaceNetPLToZero(t *testing.T) {
	now := time.Now().UTC()
	h, err := New("id-1", models.HorseCreate{
		Name:           "Comet",
		BreedCost:      strp("0.2"),
		TotalRaceNetPL: strp("5"),
	}, intp(0), now)
	require.NoError(t, err)
	assert.Equal(t, "0", h.TotalRaceNetPL)
}

func TestNewSeedsBalanceHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		breedCost   string
		history     []models.ZedBalanceHistoryEntry
		wantEntries int
		wantLast    string
	}{
		{
			name:        "nonzero opening balance gets one seed entry",
			breedCost:   "0.1",
			wantEntries: 1,
			wantLast:    "0.05",
		},
		{
			name:        "zero opening balance seeds nothing",
			breedCost:   "0",
			wantEntries: 0,
		},
		{
			name:      "supplied entry with the opening balance suppresses the seed",
			breedCost: "0.1",
			history: []models.ZedBalanceHistoryEntry{
				{Timestamp: now.Add(-time.Hour), Balance: "0.05"},
			},
			wantEntries: 1,
			wantLast:    "0.05",
		},
		{
			name:      "supplied entries with other balances still get the seed",
			breedCost: "0.1",
			history: []models.ZedBalanceHistoryEntry{
				{Timestamp: now.Add(-time.Hour), Balance: "0.2"},
			},
			wantEntries: 2,
			wantLast:    "0.05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New("id-1", models.HorseCreate{
				Name:              "Comet",
				BreedCost:         strp(tt.breedCost),
				ZedBalanceHistory: tt.history,
			}, intp(0), now)
			require.NoError(t, err)
			require.Len(t, h.ZedBalanceHistory, tt.wantEntries)
			if tt.wantEntries > 0 {
				assert.Equal(t, tt.wantLast, h.ZedBalanceHistory[tt.wantEntries-1].Balance)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	now := time.Now().UTC()
	h, err := New("id-1", models.HorseCreate{Name: "Comet"}, intp(3), now)
	require.NoError(t, err)

	assert.Equal(t, "id-1", h.ID)
	assert.Equal(t, "-", h.Overall)
	assert.Equal(t, "-", h.SireSpeed)
	assert.Equal(t, "-", h.DamEndurance)
	assert.Equal(t, "0", h.SoldBreeds)
	assert.Equal(t, models.StatusActive, h.Status)
	require.NotNil(t, h.Order)
	assert.Equal(t, 3, *h.Order)

	// History fields are always concrete slices, never nil.
	assert.NotNil(t, h.Race1TimeHistory)
	assert.NotNil(t, h.Race2TimeHistory)
	assert.NotNil(t, h.AugmentHistory)
	assert.NotNil(t, h.ZedBalanceHistory)
	assert.NotNil(t, h.ProcessedCsvRaceEvents)
}

func TestNewRejectsMalformedHistory(t *testing.T) {
	now := time.Now().UTC()
	_, err := New("id-1", models.HorseCreate{
		Name: "Comet",
		Race1TimeHistory: []models.TimeHistoryEntry{
			{Timestamp: now}, // no time value
		},
	}, intp(0), now)
	require.ErrorIs(t, err, ErrConstruct)

	_, err = New("id-2", models.HorseCreate{
		Name: "Comet",
		ZedBalanceHistory: []models.ZedBalanceHistoryEntry{
			{Timestamp: now}, // no balance value
		},
	}, intp(0), now)
	require.ErrorIs(t, err, ErrConstruct)
}

func TestNewFillsZeroHistoryTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h, err := New("id-1", models.HorseCreate{
		Name: "Comet",
		Race1TimeHistory: []models.TimeHistoryEntry{
			{Time: "52.1", RaceID: strp("r-9")},
		},
	}, intp(0), now)
	require.NoError(t, err)
	require.Len(t, h.Race1TimeHistory, 1)
	assert.Equal(t, now, h.Race1TimeHistory[0].Timestamp)
	assert.Equal(t, "52.1", h.Race1TimeHistory[0].Time)
}
