package stable

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stablemgr/stableapi/models"
)

// New builds a fully-initialized horse record from a creation payload.
// order must already be resolved by the caller (payload value or the store's
// next free slot). Derived financials: strtZedBal = breedCost/2, zedBalance
// starts equal to strtZedBal and totalRaceNetPL is always "0" regardless of
// the payload.
func New(id string, req models.HorseCreate, order *int, now time.Time) (models.Horse, error) {
	h := models.Horse{
		ID:   id,
		Name: req.Name,

		Gen:         req.Gen,
		Gender:      req.Gender,
		Breed:       req.Breed,
		ColourTrait: req.ColourTrait,
		Overall:     orDash(req.Overall),
		Speed:       orDash(req.Speed),
		Sprint:      orDash(req.Sprint),
		Endurance:   orDash(req.Endurance),

		SireName:        req.SireName,
		SireGen:         req.SireGen,
		SireBreed:       req.SireBreed,
		SireColourTrait: req.SireColourTrait,
		SireOverall:     orDash(req.SireOverall),
		SireSpeed:       orDash(req.SireSpeed),
		SireSprint:      orDash(req.SireSprint),
		SireEndurance:   orDash(req.SireEndurance),

		DamName:        req.DamName,
		DamGen:         req.DamGen,
		DamBreed:       req.DamBreed,
		DamColourTrait: req.DamColourTrait,
		DamOverall:     orDash(req.DamOverall),
		DamSpeed:       orDash(req.DamSpeed),
		DamSprint:      orDash(req.DamSprint),
		DamEndurance:   orDash(req.DamEndurance),

		Races:  orZero(req.Races),
		First:  orZero(req.First),
		Second: orZero(req.Second),
		Third:  orZero(req.Third),

		CPU:       req.CPU,
		RAM:       req.RAM,
		Hydraulic: req.Hydraulic,

		BreedCost:  strOr(req.BreedCost, "0"),
		SoldBreeds: strOr(req.SoldBreeds, "0"),

		Status: strOr(req.Status, models.StatusActive),
		Order:  order,
	}

	cost, err := parseDecimal(h.BreedCost, "0")
	if err != nil {
		cost = decimal.Zero
	}
	h.StrtZedBal = fixed3Stripped(cost.Div(two))
	h.TotalRaceNetPL = "0"
	h.ZedBalance = h.StrtZedBal

	h.Race1TimeHistory, err = normalizeTimeHistory(req.Race1TimeHistory, now)
	if err != nil {
		return models.Horse{}, fmt.Errorf("%w: race1TimeHistory: %v", ErrConstruct, err)
	}
	h.Race2TimeHistory, err = normalizeTimeHistory(req.Race2TimeHistory, now)
	if err != nil {
		return models.Horse{}, fmt.Errorf("%w: race2TimeHistory: %v", ErrConstruct, err)
	}
	h.AugmentHistory = normalizeAugmentHistory(req.AugmentHistory, now)

	h.ZedBalanceHistory, err = normalizeBalanceHistory(req.ZedBalanceHistory, now)
	if err != nil {
		return models.Horse{}, fmt.Errorf("%w: zedBalanceHistory: %v", ErrConstruct, err)
	}

	// Seed the balance trail unless an entry with the opening balance was
	// supplied, or the opening balance is zero.
	seeded := false
	for _, e := range h.ZedBalanceHistory {
		if e.Balance == h.ZedBalance {
			seeded = true
			break
		}
	}
	if !seeded && h.ZedBalance != "0" {
		h.ZedBalanceHistory = append(h.ZedBalanceHistory, models.ZedBalanceHistoryEntry{
			Timestamp: now,
			Balance:   h.ZedBalance,
		})
	}

	if req.ProcessedCsvRaceEvents != nil {
		h.ProcessedCsvRaceEvents = req.ProcessedCsvRaceEvents
	} else {
		h.ProcessedCsvRaceEvents = []string{}
	}

	return h, nil
}

func orDash(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func orZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func normalizeTimeHistory(in []models.TimeHistoryEntry, now time.Time) ([]models.TimeHistoryEntry, error) {
	out := make([]models.TimeHistoryEntry, 0, len(in))
	for _, e := range in {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		out = append(out, e)
	}
	return out, nil
}

func normalizeAugmentHistory(in []models.AugmentHistoryEntry, now time.Time) []models.AugmentHistoryEntry {
	out := make([]models.AugmentHistoryEntry, 0, len(in))
	for _, e := range in {
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		out = append(out, e)
	}
	return out
}

func normalizeBalanceHistory(in []models.ZedBalanceHistoryEntry, now time.Time) ([]models.ZedBalanceHistoryEntry, error) {
	out := make([]models.ZedBalanceHistoryEntry, 0, len(in))
	for _, e := range in {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		out = append(out, e)
	}
	return out, nil
}
