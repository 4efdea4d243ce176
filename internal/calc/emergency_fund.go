package calc

import (
	"github.com/shopspring/decimal"
)

type FundTier string

const (
	FundTierComplete FundTier = "complete"
	FundTierGood     FundTier = "good"
	FundTierFair     FundTier = "fair"
	FundTierLow      FundTier = "low"
)

var tiers = []struct {
	threshold decimal.Decimal
	tier      FundTier
	icon      string
}{
	{decimal.NewFromInt(100), FundTierComplete, "check-circle"},
	{decimal.NewFromInt(75), FundTierGood, "trending-up"},
	{decimal.NewFromInt(50), FundTierFair, "alert-circle"},
}

type FundProgress struct {
	Percentage    decimal.Decimal `json:"percentage" example:"62.5"`
	MonthsCovered decimal.Decimal `json:"monthsCovered" example:"3.75"`
	Shortfall     decimal.Decimal `json:"shortfall" example:"11250000"`
	Tier          FundTier        `json:"tier" example:"fair" enums:"complete,good,fair,low"`
	Icon          string          `json:"icon" example:"alert-circle"`
}

// EmergencyFundProgress computes how far the fund is towards its target.
func EmergencyFundProgress(accumulated, target, monthlyExpenses decimal.NullDecimal) FundProgress {
	acc := Value(accumulated)
	expenses := Value(monthlyExpenses)

	progress := FundProgress{
		Percentage: percentage(acc, Value(target)),
		Shortfall:  FundingDeficit(target, accumulated),
		Tier:       FundTierLow,
		Icon:       "alert-circle",
	}

	if expenses.IsPositive() {
		progress.MonthsCovered = acc.Div(expenses).Round(2)
	}

	for _, t := range tiers {
		if progress.Percentage.GreaterThanOrEqual(t.threshold) {
			progress.Tier = t.tier
			progress.Icon = t.icon
			break
		}
	}

	return progress
}

// FundingDeficit is the amount missing to reach the target, never negative.
func FundingDeficit(target, accumulated decimal.NullDecimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, Value(target).Sub(Value(accumulated)))
}
