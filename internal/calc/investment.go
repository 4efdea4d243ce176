package calc

import (
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

type Performance struct {
	MarketValue        decimal.Decimal `json:"marketValue" example:"1250000"`
	CostBasis          decimal.Decimal `json:"costBasis" example:"1000000"`
	GainLoss           decimal.Decimal `json:"gainLoss" example:"250000"`
	GainLossPercentage decimal.Decimal `json:"gainLossPercentage" example:"25"`
}

// InvestmentPerformance computes value and gain of a position.
func InvestmentPerformance(quantity, buyPrice, currentPrice decimal.NullDecimal) Performance {
	q := Value(quantity)
	marketValue := q.Mul(Value(currentPrice))
	costBasis := q.Mul(Value(buyPrice))
	gain := marketValue.Sub(costBasis)

	return Performance{
		MarketValue:        marketValue,
		CostBasis:          costBasis,
		GainLoss:           gain,
		GainLossPercentage: percentage(gain, costBasis),
	}
}

type PortfolioSummary struct {
	TotalValue              decimal.Decimal `json:"totalValue" example:"5400000"`
	TotalCost               decimal.Decimal `json:"totalCost" example:"5000000"`
	TotalGainLoss           decimal.Decimal `json:"totalGainLoss" example:"400000"`
	TotalGainLossPercentage decimal.Decimal `json:"totalGainLossPercentage" example:"8"`
}

// PortfolioTotals sums the performance of all investments.
func PortfolioTotals(investments []models.Investment) PortfolioSummary {
	var s PortfolioSummary
	for _, i := range investments {
		p := InvestmentPerformance(i.Quantity, i.BuyPrice, i.CurrentPrice)
		s.TotalValue = s.TotalValue.Add(p.MarketValue)
		s.TotalCost = s.TotalCost.Add(p.CostBasis)
	}

	s.TotalGainLoss = s.TotalValue.Sub(s.TotalCost)
	s.TotalGainLossPercentage = percentage(s.TotalGainLoss, s.TotalCost)
	return s
}
