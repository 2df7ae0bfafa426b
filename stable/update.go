package stable

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stablemgr/stableapi/models"
)

// Reconcile merges a partial update into orig and recomputes derived fields
// and history trails, in this order: field merge, history re-validation,
// breedCost-driven balance derivation, soldBreeds accumulation, augment
// history append, balance history append. It never touches the store; the
// caller commits the returned record.
func Reconcile(orig models.Horse, upd models.HorseUpdate, now time.Time) (models.Horse, error) {
	h := orig.Clone()

	mergeFields(&h, upd)

	if err := mergeHistories(&h, upd, now); err != nil {
		return models.Horse{}, err
	}

	if upd.BreedCost.Set {
		deriveBalances(&h, upd)
	}

	if upd.SoldBreeds.Set && upd.SoldBreeds.Valid {
		accumulateSoldBreeds(&h, orig, upd.SoldBreeds.Value)
	}

	if upd.CPU.Set || upd.RAM.Set || upd.Hydraulic.Set {
		if !ptrEq(orig.CPU, h.CPU) || !ptrEq(orig.RAM, h.RAM) || !ptrEq(orig.Hydraulic, h.Hydraulic) {
			h.AugmentHistory = append(h.AugmentHistory, models.AugmentHistoryEntry{
				Timestamp: now,
				CPU:       h.CPU,
				RAM:       h.RAM,
				Hydraulic: h.Hydraulic,
			})
		}
	}

	if upd.ZedBalance.Set && upd.ZedBalance.Valid {
		appendBalanceHistory(&h, now)
	}

	return h, nil
}

func mergeFields(h *models.Horse, upd models.HorseUpdate) {
	setStr := func(dst *string, o models.Opt[string]) {
		if o.Set {
			*dst = o.Value // null collapses to ""
		}
	}
	setPtr := func(dst **string, o models.Opt[string]) {
		if o.Set {
			*dst = o.Ptr()
		}
	}
	setInt := func(dst *int, o models.Opt[int]) {
		if o.Set {
			*dst = o.Value
		}
	}

	setStr(&h.Name, upd.Name)
	setPtr(&h.Gen, upd.Gen)
	setPtr(&h.Gender, upd.Gender)
	setPtr(&h.Breed, upd.Breed)
	setPtr(&h.ColourTrait, upd.ColourTrait)
	setStr(&h.Overall, upd.Overall)
	setStr(&h.Speed, upd.Speed)
	setStr(&h.Sprint, upd.Sprint)
	setStr(&h.Endurance, upd.Endurance)

	setPtr(&h.SireName, upd.SireName)
	setPtr(&h.SireGen, upd.SireGen)
	setPtr(&h.SireBreed, upd.SireBreed)
	setPtr(&h.SireColourTrait, upd.SireColourTrait)
	setStr(&h.SireOverall, upd.SireOverall)
	setStr(&h.SireSpeed, upd.SireSpeed)
	setStr(&h.SireSprint, upd.SireSprint)
	setStr(&h.SireEndurance, upd.SireEndurance)

	setPtr(&h.DamName, upd.DamName)
	setPtr(&h.DamGen, upd.DamGen)
	setPtr(&h.DamBreed, upd.DamBreed)
	setPtr(&h.DamColourTrait, upd.DamColourTrait)
	setStr(&h.DamOverall, upd.DamOverall)
	setStr(&h.DamSpeed, upd.DamSpeed)
	setStr(&h.DamSprint, upd.DamSprint)
	setStr(&h.DamEndurance, upd.DamEndurance)

	setInt(&h.Races, upd.Races)
	setInt(&h.First, upd.First)
	setInt(&h.Second, upd.Second)
	setInt(&h.Third, upd.Third)

	setPtr(&h.CPU, upd.CPU)
	setPtr(&h.RAM, upd.RAM)
	setPtr(&h.Hydraulic, upd.Hydraulic)

	setStr(&h.BreedCost, upd.BreedCost)
	setStr(&h.StrtZedBal, upd.StrtZedBal)
	setStr(&h.TotalRaceNetPL, upd.TotalRaceNetPL)
	setStr(&h.ZedBalance, upd.ZedBalance)
	setStr(&h.SoldBreeds, upd.SoldBreeds)

	setStr(&h.Status, upd.Status)
	if upd.Order.Set {
		h.Order = upd.Order.Ptr()
	}

	if upd.ProcessedCsvRaceEvents.Set {
		h.ProcessedCsvRaceEvents = upd.ProcessedCsvRaceEvents.Value
		if h.ProcessedCsvRaceEvents == nil {
			h.ProcessedCsvRaceEvents = []string{}
		}
	}
}

func mergeHistories(h *models.Horse, upd models.HorseUpdate, now time.Time) error {
	var err error
	if upd.Race1TimeHistory.Set {
		h.Race1TimeHistory, err = normalizeTimeHistory(upd.Race1TimeHistory.Value, now)
		if err != nil {
			return fmt.Errorf("%w: race1TimeHistory: %v", ErrValidation, err)
		}
	}
	if upd.Race2TimeHistory.Set {
		h.Race2TimeHistory, err = normalizeTimeHistory(upd.Race2TimeHistory.Value, now)
		if err != nil {
			return fmt.Errorf("%w: race2TimeHistory: %v", ErrValidation, err)
		}
	}
	if upd.AugmentHistory.Set {
		h.AugmentHistory = normalizeAugmentHistory(upd.AugmentHistory.Value, now)
	}
	if upd.ZedBalanceHistory.Set {
		h.ZedBalanceHistory, err = normalizeBalanceHistory(upd.ZedBalanceHistory.Value, now)
		if err != nil {
			return fmt.Errorf("%w: zedBalanceHistory: %v", ErrValidation, err)
		}
	}
	return nil
}

// deriveBalances recomputes strtZedBal from the merged breedCost and, when
// zedBalance was not explicitly supplied in the same update, zedBalance from
// strtZedBal + totalRaceNetPL. Unparseable values are logged and the affected
// derivation skipped, leaving the prior value in place.
func deriveBalances(h *models.Horse, upd models.HorseUpdate) {
	cost, err := parseDecimal(h.BreedCost, "0")
	if err != nil {
		zap.L().Warn("invalid breedCost in update, keeping derived balances",
			zap.String("id", h.ID), zap.String("breedCost", h.BreedCost))
		return
	}
	h.StrtZedBal = fixed3Stripped(cost.Div(two))

	if upd.ZedBalance.Set {
		return
	}
	// Parse the stripped rendering, not the raw quotient: the stripped
	// string is the value clients see.
	strt, err := parseDecimal(h.StrtZedBal, "0")
	if err != nil {
		return
	}
	pl, err := parseDecimal(h.TotalRaceNetPL, "0")
	if err != nil {
		zap.L().Warn("invalid totalRaceNetPL in update, keeping zedBalance",
			zap.String("id", h.ID), zap.String("totalRaceNetPL", h.TotalRaceNetPL))
		return
	}
	h.ZedBalance = fixed3Stripped(strt.Add(pl))
}

// accumulateSoldBreeds treats the payload value as an increment on top of the
// stored total. A stored value that fails to parse counts as zero; an
// increment that fails to parse discards the attempted update entirely.
func accumulateSoldBreeds(h *models.Horse, orig models.Horse, increment string) {
	inc, err := parseDecimal(increment, "0")
	if err != nil {
		zap.L().Warn("invalid soldBreeds increment, keeping stored value",
			zap.String("id", h.ID), zap.String("increment", increment))
		h.SoldBreeds = orig.SoldBreeds
		return
	}
	stored, err := parseDecimal(orig.SoldBreeds, "0")
	if err != nil {
		stored = decimal.Zero
	}
	h.SoldBreeds = stored.Add(inc).String()
}

func appendBalanceHistory(h *models.Horse, now time.Time) {
	bal := h.ZedBalance
	if n := len(h.ZedBalanceHistory); n > 0 {
		last := h.ZedBalanceHistory[n-1]
		if last.Balance == bal {
			return
		}
		// Keep strict timestamp ordering on same-instant updates.
		if !last.Timestamp.Before(now) {
			now = last.Timestamp.Add(time.Millisecond)
		}
	}
	h.ZedBalanceHistory = append(h.ZedBalanceHistory, models.ZedBalanceHistoryEntry{
		Timestamp: now,
		Balance:   bal,
	})
}

func ptrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
