package stable

import (
	"time"

	"github.com/google/uuid"

	"github.com/stablemgr/stableapi/models"
)

// DemoHorses returns the two demo records used to pre-populate the in-memory
// store during development.
func DemoHorses(now time.Time) []models.Horse {
	sp := func(s string) *string { return &s }
	ip := func(i int) *int { return &i }

	return []models.Horse{
		{
			ID: uuid.NewString(), Name: "Thunderbolt",
			Gen: sp("G1"), Gender: sp("M"), Breed: sp("Nakamoto"), ColourTrait: sp("Szabo"),
			Overall: "⭐️⭐️⭐️", Speed: "⭐️⭐️⭐️⭐️", Sprint: "⭐️⭐️", Endurance: "⭐️⭐️⭐️☀️",
			SireName: sp("Zeus"), SireOverall: "-", SireSpeed: "-", SireSprint: "-", SireEndurance: "-",
			DamName: sp("Hera"), DamOverall: "-", DamSpeed: "-", DamSprint: "-", DamEndurance: "-",
			Races: 10, First: 2, Second: 3, Third: 1,
			CPU: sp("Void C100"), RAM: sp("Void R100"), Hydraulic: sp("Void H100"),
			BreedCost: "0.1", StrtZedBal: "0.05", TotalRaceNetPL: "0.02", ZedBalance: "0.07",
			SoldBreeds: "0", Status: models.StatusActive, Order: ip(0),
			Race1TimeHistory: []models.TimeHistoryEntry{},
			Race2TimeHistory: []models.TimeHistoryEntry{},
			AugmentHistory:   []models.AugmentHistoryEntry{},
			ZedBalanceHistory: []models.ZedBalanceHistoryEntry{
				{Timestamp: now.Add(-48 * time.Hour), Balance: "0.05"},
				{Timestamp: now.Add(-24 * time.Hour), Balance: "0.07"},
			},
			ProcessedCsvRaceEvents: []string{},
		},
		{
			ID: uuid.NewString(), Name: "Lightning",
			Gen: sp("G2"), Gender: sp("F"), Breed: sp("Finney"), ColourTrait: sp("Buterin"),
			Overall: "⭐️⭐️⭐️⭐️", Speed: "⭐️⭐️⭐️", Sprint: "⭐️⭐️⭐️⭐️", Endurance: "⭐️⭐️⭐️",
			SireName: sp("Bolt"), SireOverall: "-", SireSpeed: "-", SireSprint: "-", SireEndurance: "-",
			DamName: sp("Flash"), DamOverall: "-", DamSpeed: "-", DamSprint: "-", DamEndurance: "-",
			Races: 5, First: 1, Second: 1, Third: 0,
			CPU: sp("Crimson C"), RAM: sp("Crimson R"), Hydraulic: sp("Crimson H"),
			BreedCost: "0.05", StrtZedBal: "0.025", TotalRaceNetPL: "-0.01", ZedBalance: "0.015",
			SoldBreeds: "0", Status: models.StatusActive, Order: ip(1),
			Race1TimeHistory: []models.TimeHistoryEntry{},
			Race2TimeHistory: []models.TimeHistoryEntry{},
			AugmentHistory:   []models.AugmentHistoryEntry{},
			ZedBalanceHistory: []models.ZedBalanceHistoryEntry{
				{Timestamp: now.Add(-48 * time.Hour), Balance: "0.025"},
				{Timestamp: now.Add(-24 * time.Hour), Balance: "0.015"},
			},
			ProcessedCsvRaceEvents: []string{},
		},
	}
}
