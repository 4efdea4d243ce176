package calc

import (
	"strings"

	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type BalanceSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets" example:"17500000"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities" example:"750000"`
	NetBalance       decimal.Decimal `json:"netBalance" example:"16750000"`
}

// BalanceTotals splits balances into assets and liabilities.
//
// Negative balances count as liabilities with their absolute value.
func BalanceTotals(balances []decimal.Decimal) BalanceSummary {
	var s BalanceSummary
	for _, b := range balances {
		if b.IsNegative() {
			s.TotalLiabilities = s.TotalLiabilities.Add(b.Abs())
			continue
		}
		s.TotalAssets = s.TotalAssets.Add(b)
	}

	s.NetBalance = s.TotalAssets.Sub(s.TotalLiabilities)
	return s
}

type CashflowSummary struct {
	Income  decimal.Decimal `json:"income" example:"12000000"` // Sum of all credits
	Expense decimal.Decimal `json:"expense" example:"8500000"` // Sum of all debits
	Net     decimal.Decimal `json:"net" example:"3500000"`
}

func CashflowTotals(cashflows []models.Cashflow) CashflowSummary {
	var s CashflowSummary
	for _, c := range cashflows {
		s.Income = s.Income.Add(Value(c.Credit))
		s.Expense = s.Expense.Add(Value(c.Debit))
	}

	s.Net = s.Income.Sub(s.Expense)
	return s
}

type MonthlyCashflow struct {
	Month string `json:"month" example:"Maret"`
	CashflowSummary
}

// CashflowsByMonth groups cashflows by their month label, in the order in
// which the labels first appear.
func CashflowsByMonth(cashflows []models.Cashflow) []MonthlyCashflow {
	groups := map[string][]models.Cashflow{}
	var order []string

	for _, c := range cashflows {
		if !slices.Contains(order, c.Month) {
			order = append(order, c.Month)
		}
		groups[c.Month] = append(groups[c.Month], c)
	}

	result := make([]MonthlyCashflow, 0, len(order))
	for _, month := range order {
		result = append(result, MonthlyCashflow{
			Month:           month,
			CashflowSummary: CashflowTotals(groups[month]),
		})
	}

	return result
}

type CategoryExpense struct {
	Category string          `json:"category" example:"Makan"`
	Amount   decimal.Decimal `json:"amount" example:"2150000"`
}

// ExpensesByCategory sums the debits per category name, largest first.
//
// Cashflows without a category are grouped under the empty name.
func ExpensesByCategory(rows []models.CashflowRow) []CategoryExpense {
	sums := map[string]decimal.Decimal{}
	for _, r := range rows {
		if !r.Debit.Valid || r.Debit.Decimal.IsZero() {
			continue
		}
		sums[r.CategoryName] = sums[r.CategoryName].Add(r.Debit.Decimal)
	}

	result := make([]CategoryExpense, 0, len(sums))
	for name, amount := range sums {
		result = append(result, CategoryExpense{Category: name, Amount: amount})
	}

	slices.SortFunc(result, func(a, b CategoryExpense) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	return result
}
