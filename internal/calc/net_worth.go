package calc

import (
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

type Delta struct {
	Change     decimal.Decimal `json:"change" example:"1500000"`
	Percentage decimal.Decimal `json:"percentage" example:"2.5"`
}

// NetWorthDeltas compares each snapshot with the one before it.
//
// history must be ordered newest first. The delta for history[i] compares
// it with history[i+1]. The oldest snapshot has no delta, its entry is nil.
func NetWorthDeltas(history []models.NetWorth) []*Delta {
	deltas := make([]*Delta, len(history))

	for i := 0; i+1 < len(history); i++ {
		current := history[i].NetWorth
		previous := history[i+1].NetWorth
		change := current.Sub(previous)

		deltas[i] = &Delta{
			Change:     change,
			Percentage: percentage(change, previous),
		}
	}

	return deltas
}

type NetWorthSummary struct {
	Current  decimal.Decimal  `json:"current" example:"61500000"`
	Previous *decimal.Decimal `json:"previous" example:"60000000"` // Absent with fewer than two snapshots
	Change   *Delta           `json:"change"`
}

// NetWorthTotals summarizes the latest change from a history ordered
// newest first.
func NetWorthTotals(history []models.NetWorth) NetWorthSummary {
	var s NetWorthSummary
	if len(history) == 0 {
		return s
	}

	s.Current = history[0].NetWorth
	if len(history) > 1 {
		previous := history[1].NetWorth
		s.Previous = &previous
		s.Change = NetWorthDeltas(history[:2])[0]
	}

	return s
}
