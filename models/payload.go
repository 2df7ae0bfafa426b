package models

// HorseCreate is the POST payload. Pointer fields fall back to the record
// defaults when absent.
type HorseCreate struct {
	Name        string  `json:"name"`
	Gen         *string `json:"gen"`
	Gender      *string `json:"gender"`
	Breed       *string `json:"breed"`
	ColourTrait *string `json:"colourTrait"`
	Overall     *string `json:"overall"`
	Speed       *string `json:"speed"`
	Sprint      *string `json:"sprint"`
	Endurance   *string `json:"endurance"`

	SireName        *string `json:"sireName"`
	SireGen         *string `json:"sireGen"`
	SireBreed       *string `json:"sireBreed"`
	SireColourTrait *string `json:"sireColourTrait"`
	SireOverall     *string `json:"sireOverall"`
	SireSpeed       *string `json:"sireSpeed"`
	SireSprint      *string `json:"sireSprint"`
	SireEndurance   *string `json:"sireEndurance"`

	DamName        *string `json:"damName"`
	DamGen         *string `json:"damGen"`
	DamBreed       *string `json:"damBreed"`
	DamColourTrait *string `json:"damColourTrait"`
	DamOverall     *string `json:"damOverall"`
	DamSpeed       *string `json:"damSpeed"`
	DamSprint      *string `json:"damSprint"`
	DamEndurance   *string `json:"damEndurance"`

	Races  *int `json:"races"`
	First  *int `json:"first"`
	Second *int `json:"second"`
	Third  *int `json:"third"`

	CPU       *string `json:"cpu"`
	RAM       *string `json:"ram"`
	Hydraulic *string `json:"hydraulic"`

	BreedCost      *string `json:"breedCost"`
	TotalRaceNetPL *string `json:"totalRaceNetPL"`
	ZedBalance     *string `json:"zedBalance"`
	SoldBreeds     *string `json:"soldBreeds"`

	Status *string `json:"status"`
	Order  *int    `json:"order"`

	Race1TimeHistory  []TimeHistoryEntry       `json:"race1TimeHistory"`
	Race2TimeHistory  []TimeHistoryEntry       `json:"race2TimeHistory"`
	AugmentHistory    []AugmentHistoryEntry    `json:"augmentHistory"`
	ZedBalanceHistory []ZedBalanceHistoryEntry `json:"zedBalanceHistory"`

	ProcessedCsvRaceEvents []string `json:"processedCsvRaceEvents"`
}

// HorseUpdate is the PUT payload. Every field is tri-state so the reconciler
// can tell an omitted field from an explicit null. Fields that are plain
// strings on the record (ratings, financials, status) have no null
// representation there: an explicit null merges as "" and is echoed back
// as "" rather than null.
type HorseUpdate struct {
	Name        Opt[string] `json:"name"`
	Gen         Opt[string] `json:"gen"`
	Gender      Opt[string] `json:"gender"`
	Breed       Opt[string] `json:"breed"`
	ColourTrait Opt[string] `json:"colourTrait"`
	Overall     Opt[string] `json:"overall"`
	Speed       Opt[string] `json:"speed"`
	Sprint      Opt[string] `json:"sprint"`
	Endurance   Opt[string] `json:"endurance"`

	SireName        Opt[string] `json:"sireName"`
	SireGen         Opt[string] `json:"sireGen"`
	SireBreed       Opt[string] `json:"sireBreed"`
	SireColourTrait Opt[string] `json:"sireColourTrait"`
	SireOverall     Opt[string] `json:"sireOverall"`
	SireSpeed       Opt[string] `json:"sireSpeed"`
	SireSprint      Opt[string] `json:"sireSprint"`
	SireEndurance   Opt[string] `json:"sireEndurance"`

	DamName        Opt[string] `json:"damName"`
	DamGen         Opt[string] `json:"damGen"`
	DamBreed       Opt[string] `json:"damBreed"`
	DamColourTrait Opt[string] `json:"damColourTrait"`
	DamOverall     Opt[string] `json:"damOverall"`
	DamSpeed       Opt[string] `json:"damSpeed"`
	DamSprint      Opt[string] `json:"damSprint"`
	DamEndurance   Opt[string] `json:"damEndurance"`

	Races  Opt[int] `json:"races"`
	First  Opt[int] `json:"first"`
	Second Opt[int] `json:"second"`
	Third  Opt[int] `json:"third"`

	CPU       Opt[string] `json:"cpu"`
	RAM       Opt[string] `json:"ram"`
	Hydraulic Opt[string] `json:"hydraulic"`

	BreedCost      Opt[string] `json:"breedCost"`
	StrtZedBal     Opt[string] `json:"strtZedBal"`
	TotalRaceNetPL Opt[string] `json:"totalRaceNetPL"`
	ZedBalance     Opt[string] `json:"zedBalance"`
	SoldBreeds     Opt[string] `json:"soldBreeds"`

	Status Opt[string] `json:"status"`
	Order  Opt[int]    `json:"order"`

	Race1TimeHistory  Opt[[]TimeHistoryEntry]       `json:"race1TimeHistory"`
	Race2TimeHistory  Opt[[]TimeHistoryEntry]       `json:"race2TimeHistory"`
	AugmentHistory    Opt[[]AugmentHistoryEntry]    `json:"augmentHistory"`
	ZedBalanceHistory Opt[[]ZedBalanceHistoryEntry] `json:"zedBalanceHistory"`

	ProcessedCsvRaceEvents Opt[[]string] `json:"processedCsvRaceEvents"`
}
