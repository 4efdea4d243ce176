package calc

import (
	"math"
	"time"

	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DueSoonDays is the number of days before the due date from which a
// debt is due soon.
const DueSoonDays = 7

var months = decimal.NewFromInt(12)

type Due struct {
	DaysUntilDue int  `json:"daysUntilDue" example:"5"` // Negative when overdue
	Overdue      bool `json:"overdue" example:"false"`
	DueSoon      bool `json:"dueSoon" example:"true"`
	DaysOverdue  int  `json:"daysOverdue" example:"0"`
}

// DebtDue computes the due status for a due date relative to today.
//
// It returns nil when there is no due date.
func DebtDue(dueDate *time.Time, today time.Time) *Due {
	if dueDate == nil {
		return nil
	}

	days := int(math.Ceil(dueDate.Sub(today).Hours() / 24))

	due := Due{
		DaysUntilDue: days,
		Overdue:      days < 0,
		DueSoon:      days >= 0 && days <= DueSoonDays,
	}

	if due.Overdue {
		due.DaysOverdue = -days
	}

	return &due
}

// MonthlyInterest is the interest for one month at a yearly rate in percent.
func MonthlyInterest(balance, rate decimal.NullDecimal) decimal.Decimal {
	return Value(balance).Mul(Value(rate)).Div(hundred).Div(months).Round(2)
}

// PayoffMonths is the number of minimum payments needed to pay off the
// balance, ignoring interest. It is 0 without a positive minimum payment.
func PayoffMonths(balance, minimumPayment decimal.NullDecimal) int64 {
	minimum := Value(minimumPayment)
	if !minimum.IsPositive() {
		return 0
	}

	return Value(balance).Div(minimum).Ceil().IntPart()
}

type DebtSummary struct {
	TotalDebt           decimal.Decimal `json:"totalDebt" example:"12500000"`
	TotalMinimumPayment decimal.Decimal `json:"totalMinimumPayment" example:"750000"`
}

func DebtTotals(debts []models.Debt) DebtSummary {
	var s DebtSummary
	for _, d := range debts {
		s.TotalDebt = s.TotalDebt.Add(Value(d.Balance))
		s.TotalMinimumPayment = s.TotalMinimumPayment.Add(Value(d.MinimumPayment))
	}

	return s
}
