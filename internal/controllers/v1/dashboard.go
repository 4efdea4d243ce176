package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the overview of all finances.
type Dashboard struct {
	Balance       calc.BalanceSummary    `json:"balance"`       // Total of the liquid assets
	Portfolio     calc.PortfolioSummary  `json:"portfolio"`     // Investment totals
	Debts         calc.DebtSummary       `json:"debts"`         // Debt totals
	NetWorth      calc.NetWorthSummary   `json:"netWorth"`      // Latest net worth and its change
	EmergencyFund *calc.FundProgress     `json:"emergencyFund"` // Progress of the emergency fund. Absent when it is not set up.
	Cashflows     []calc.MonthlyCashflow `json:"cashflows"`     // Income and expense per month, oldest first
	Expenses      []calc.CategoryExpense `json:"expenses"`      // Expenses per category, largest first
	Display       DashboardDisplay       `json:"display"`       // Amounts formatted for the configured locale
}

// DashboardDisplay holds the main amounts as formatted text.
type DashboardDisplay struct {
	Balance   string `json:"balance" example:"Rp 16.750.000,00"`
	Portfolio string `json:"portfolio" example:"Rp 5.400.000,00"`
	Debts     string `json:"debts" example:"Rp 12.500.000,00"`
	NetWorth  string `json:"netWorth" example:"Rp 61.500.000,00"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // Data for the dashboard
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// dashboard computes the dashboard from the cached lists.
func (co Controller) dashboard(ctx context.Context) (Dashboard, error) {
	var (
		assets      []models.LiquidAssetRow
		investments []models.Investment
		debts       []models.Debt
		history     []models.NetWorth
		fund        emergencyFund
		cashflows   []models.CashflowRow
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		assets, err = co.loadLiquidAssets(ctx)
		return
	})
	g.Go(func() (err error) {
		investments, err = co.loadInvestments(ctx)
		return
	})
	g.Go(func() (err error) {
		debts, err = co.loadDebts(ctx)
		return
	})
	g.Go(func() (err error) {
		history, err = co.loadNetWorth(ctx)
		return
	})
	g.Go(func() (err error) {
		fund, err = co.loadEmergencyFund(ctx)
		return
	})
	g.Go(func() (err error) {
		cashflows, err = co.loadCashflows(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	_, balance := newLiquidAssets(assets)

	// Rows are newest first, the chart goes from old to new
	chronological := make([]models.Cashflow, 0, len(cashflows))
	for i := len(cashflows) - 1; i >= 0; i-- {
		chronological = append(chronological, cashflows[i].Cashflow)
	}

	d := Dashboard{
		Balance:   balance,
		Portfolio: calc.PortfolioTotals(investments),
		Debts:     calc.DebtTotals(debts),
		NetWorth:  calc.NetWorthTotals(history),
		Cashflows: calc.CashflowsByMonth(chronological),
		Expenses:  calc.ExpensesByCategory(cashflows),
	}

	if fund.Found {
		progress := calc.EmergencyFundProgress(fund.Fund.AccumulatedFunds, fund.Fund.CustomTarget, fund.Fund.MonthlyExpenses)
		d.EmergencyFund = &progress
	}

	format := func(amount decimal.Decimal) string {
		return calc.FormatMoney(amount, co.Options.Currency, co.Options.Language)
	}

	d.Display = DashboardDisplay{
		Balance:   format(d.Balance.NetBalance),
		Portfolio: format(d.Portfolio.TotalValue),
		Debts:     format(d.Debts.TotalDebt),
		NetWorth:  format(d.NetWorth.Current),
	}

	return d, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the totals of all finances
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	data, err := cache.Load(c.Request.Context(), co.Cache, cache.Dashboard, co.dashboard)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
