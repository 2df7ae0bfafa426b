package models

import (
	"fmt"
	"time"
)

// TimeHistoryEntry records a single race time for one of the two tracked
// race slots.
type TimeHistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Time      string    `json:"time"`
	RaceID    *string   `json:"race_id,omitempty"`
}

// AugmentHistoryEntry snapshots the augment loadout at the moment any of the
// three components changed.
type AugmentHistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	CPU       *string   `json:"cpu"`
	RAM       *string   `json:"ram"`
	Hydraulic *string   `json:"hydraulic"`
}

// ZedBalanceHistoryEntry snapshots the zed balance. Consecutive entries never
// share the same balance.
type ZedBalanceHistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Balance   string    `json:"balance"`
}

func (e TimeHistoryEntry) Validate() error {
	if e.Time == "" {
		return fmt.Errorf("time history entry: missing time")
	}
	return nil
}

func (e ZedBalanceHistoryEntry) Validate() error {
	if e.Balance == "" {
		return fmt.Errorf("zed balance history entry: missing balance")
	}
	return nil
}
