package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Horse statuses. A forged horse is soft-deleted: it stays in the store but
// is hidden from listings and direct lookups.
const (
	StatusActive = "active"
	StatusForged = "forged"
)

// Horse is a tracked stable horse with its lineage, augment loadout,
// financials and audit histories.
type Horse struct {
	bun.BaseModel `bun:"table:horses,alias:h"`

	ID   string `bun:"id,pk" json:"id"`
	Name string `bun:"name,notnull" json:"name"`

	Gen         *string `bun:"gen" json:"gen"`
	Gender      *string `bun:"gender" json:"gender"`
	Breed       *string `bun:"breed" json:"breed"`
	ColourTrait *string `bun:"colour_trait" json:"colourTrait"`
	Overall     string  `bun:"overall,notnull,default:'-'" json:"overall"`
	Speed       string  `bun:"speed,notnull,default:'-'" json:"speed"`
	Sprint      string  `bun:"sprint,notnull,default:'-'" json:"sprint"`
	Endurance   string  `bun:"endurance,notnull,default:'-'" json:"endurance"`

	SireName        *string `bun:"sire_name" json:"sireName"`
	SireGen         *string `bun:"sire_gen" json:"sireGen"`
	SireBreed       *string `bun:"sire_breed" json:"sireBreed"`
	SireColourTrait *string `bun:"sire_colour_trait" json:"sireColourTrait"`
	SireOverall     string  `bun:"sire_overall,notnull,default:'-'" json:"sireOverall"`
	SireSpeed       string  `bun:"sire_speed,notnull,default:'-'" json:"sireSpeed"`
	SireSprint      string  `bun:"sire_sprint,notnull,default:'-'" json:"sireSprint"`
	SireEndurance   string  `bun:"sire_endurance,notnull,default:'-'" json:"sireEndurance"`

	DamName        *string `bun:"dam_name" json:"damName"`
	DamGen         *string `bun:"dam_gen" json:"damGen"`
	DamBreed       *string `bun:"dam_breed" json:"damBreed"`
	DamColourTrait *string `bun:"dam_colour_trait" json:"damColourTrait"`
	DamOverall     string  `bun:"dam_overall,notnull,default:'-'" json:"damOverall"`
	DamSpeed       string  `bun:"dam_speed,notnull,default:'-'" json:"damSpeed"`
	DamSprint      string  `bun:"dam_sprint,notnull,default:'-'" json:"damSprint"`
	DamEndurance   string  `bun:"dam_endurance,notnull,default:'-'" json:"damEndurance"`

	Races  int `bun:"races,notnull,default:0" json:"races"`
	First  int `bun:"first,notnull,default:0" json:"first"`
	Second int `bun:"second,notnull,default:0" json:"second"`
	Third  int `bun:"third,notnull,default:0" json:"third"`

	CPU       *string `bun:"cpu" json:"cpu"`
	RAM       *string `bun:"ram" json:"ram"`
	Hydraulic *string `bun:"hydraulic" json:"hydraulic"`

	// Decimal values kept as strings so the API echoes exact formatting.
	BreedCost      string `bun:"breed_cost,notnull,default:'0'" json:"breedCost"`
	StrtZedBal     string `bun:"strt_zed_bal,notnull,default:'0'" json:"strtZedBal"`
	TotalRaceNetPL string `bun:"total_race_net_pl,notnull,default:'0'" json:"totalRaceNetPL"`
	ZedBalance     string `bun:"zed_balance,notnull,default:'0'" json:"zedBalance"`
	SoldBreeds     string `bun:"sold_breeds,notnull,default:'0'" json:"soldBreeds"`

	Status string `bun:"status,notnull,default:'active'" json:"status"`
	Order  *int   `bun:"display_order" json:"order"`

	Race1TimeHistory  []TimeHistoryEntry       `bun:"race1_time_history,type:jsonb" json:"race1TimeHistory"`
	Race2TimeHistory  []TimeHistoryEntry       `bun:"race2_time_history,type:jsonb" json:"race2TimeHistory"`
	AugmentHistory    []AugmentHistoryEntry    `bun:"augment_history,type:jsonb" json:"augmentHistory"`
	ZedBalanceHistory []ZedBalanceHistoryEntry `bun:"zed_balance_history,type:jsonb" json:"zedBalanceHistory"`

	ProcessedCsvRaceEvents []string `bun:"processed_csv_race_events,type:jsonb" json:"processedCsvRaceEvents"`

	// CreatedAt preserves insertion order for the Postgres backend. It is
	// not part of the API surface.
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// Clone returns a deep copy. History slices are copied so the caller can
// append without aliasing the original record.
func (h Horse) Clone() Horse {
	cp := h
	cp.Gen = clonePtr(h.Gen)
	cp.Gender = clonePtr(h.Gender)
	cp.Breed = clonePtr(h.Breed)
	cp.ColourTrait = clonePtr(h.ColourTrait)
	cp.SireName = clonePtr(h.SireName)
	cp.SireGen = clonePtr(h.SireGen)
	cp.SireBreed = clonePtr(h.SireBreed)
	cp.SireColourTrait = clonePtr(h.SireColourTrait)
	cp.DamName = clonePtr(h.DamName)
	cp.DamGen = clonePtr(h.DamGen)
	cp.DamBreed = clonePtr(h.DamBreed)
	cp.DamColourTrait = clonePtr(h.DamColourTrait)
	cp.CPU = clonePtr(h.CPU)
	cp.RAM = clonePtr(h.RAM)
	cp.Hydraulic = clonePtr(h.Hydraulic)
	cp.Order = clonePtr(h.Order)
	cp.Race1TimeHistory = cloneSlice(h.Race1TimeHistory)
	cp.Race2TimeHistory = cloneSlice(h.Race2TimeHistory)
	cp.AugmentHistory = cloneSlice(h.AugmentHistory)
	cp.ZedBalanceHistory = cloneSlice(h.ZedBalanceHistory)
	cp.ProcessedCsvRaceEvents = cloneSlice(h.ProcessedCsvRaceEvents)
	return cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
