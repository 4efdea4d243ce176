package calc

import (
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	BudgetStatusUnder BudgetStatus = "under"
	BudgetStatusNear  BudgetStatus = "near"
	BudgetStatusOver  BudgetStatus = "over"
)

var (
	nearThreshold = decimal.NewFromInt(80)
	overThreshold = decimal.NewFromInt(100)
)

type Utilization struct {
	Percentage        decimal.Decimal `json:"percentage" example:"112.5"`      // Unclamped utilization
	ClampedPercentage decimal.Decimal `json:"clampedPercentage" example:"100"` // For progress bars
	Status            BudgetStatus    `json:"status" example:"over" enums:"under,near,over"`
	Difference        decimal.Decimal `json:"difference" example:"125000"`
}

// BudgetUtilization computes how much of the expected amount is allocated.
//
// The status compares the exact amounts, the rounded percentage is
// for display only. Any allocation against an expected amount of zero
// is over budget.
func BudgetUtilization(expected decimal.Decimal, allocated decimal.NullDecimal) Utilization {
	a := Value(allocated)
	pct := percentage(a, expected)

	status := BudgetStatusUnder
	if a.GreaterThan(expected) {
		status = BudgetStatusOver
	} else if a.Mul(overThreshold).GreaterThan(expected.Mul(nearThreshold)) {
		status = BudgetStatusNear
	}

	return Utilization{
		Percentage:        pct,
		ClampedPercentage: decimal.Min(pct, overThreshold),
		Status:            status,
		Difference:        expected.Sub(a).Abs(),
	}
}

type BudgetSummary struct {
	TotalExpected  decimal.Decimal `json:"totalExpected" example:"4000000"`
	TotalAllocated decimal.Decimal `json:"totalAllocated" example:"3250000"`
	Difference     decimal.Decimal `json:"difference" example:"750000"` // Expected minus allocated
}

func BudgetTotals(budgets []models.Budget) BudgetSummary {
	var s BudgetSummary
	for _, b := range budgets {
		s.TotalExpected = s.TotalExpected.Add(b.ExpectedAmount)
		s.TotalAllocated = s.TotalAllocated.Add(Value(b.AllocatedAmount))
	}

	s.Difference = s.TotalExpected.Sub(s.TotalAllocated)
	return s
}
