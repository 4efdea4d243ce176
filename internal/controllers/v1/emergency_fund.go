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
)

// EmergencyFundEditable represents all user configurable parameters
type EmergencyFundEditable struct {
	AccumulatedFunds decimal.NullDecimal `json:"accumulatedFunds" swaggertype:"string" example:"18750000"`       // Amount saved so far
	CustomTarget     decimal.NullDecimal `json:"customTarget" swaggertype:"string" example:"30000000"`           // Target amount
	MonthlyExpenses  decimal.NullDecimal `json:"monthlyExpenses" swaggertype:"string" example:"5000000"`         // Expenses per month
	JobStability     models.JobStability `json:"jobStability" example:"stable" enums:"stable,moderate,unstable"` // How stable the income is
	Dependents       *int                `json:"dependents" example:"2"`                                         // Number of dependents
	RecommendedRange string              `json:"recommendedRange" example:"3-6 months" default:"3-6 months"`     // Recommended number of months to cover
}

func (editable EmergencyFundEditable) model() models.EmergencyFund {
	return models.EmergencyFund{
		AccumulatedFunds: editable.AccumulatedFunds,
		CustomTarget:     editable.CustomTarget,
		MonthlyExpenses:  editable.MonthlyExpenses,
		JobStability:     editable.JobStability,
		Dependents:       editable.Dependents,
		RecommendedRange: editable.RecommendedRange,
	}
}

type EmergencyFund struct {
	models.DefaultModel
	EmergencyFundEditable
	FundingDeficit decimal.Decimal   `json:"fundingDeficit" example:"11250000"` // Target minus accumulated funds, at least zero
	Progress       calc.FundProgress `json:"progress"`                          // Progress towards the target
}

func newEmergencyFund(fund models.EmergencyFund) EmergencyFund {
	return EmergencyFund{
		DefaultModel: fund.DefaultModel,
		EmergencyFundEditable: EmergencyFundEditable{
			AccumulatedFunds: fund.AccumulatedFunds,
			CustomTarget:     fund.CustomTarget,
			MonthlyExpenses:  fund.MonthlyExpenses,
			JobStability:     fund.JobStability,
			Dependents:       fund.Dependents,
			RecommendedRange: fund.RecommendedRange,
		},
		FundingDeficit: calc.Value(fund.FundingDeficit),
		Progress:       calc.EmergencyFundProgress(fund.AccumulatedFunds, fund.CustomTarget, fund.MonthlyExpenses),
	}
}

// EmergencyFundResponse holds the emergency fund. Data is null when
// the fund has not been set up.
type EmergencyFundResponse struct {
	Data  *EmergencyFund `json:"data"`                                                          // Data for the emergency fund
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterEmergencyFundRoutes registers the routes for the emergency
// fund with the RouterGroup that is passed.
func (co Controller) RegisterEmergencyFundRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsEmergencyFund)
	r.GET("", co.GetEmergencyFund)
	r.PUT("", co.SetEmergencyFund)
}

type emergencyFund struct {
	Fund  models.EmergencyFund
	Found bool
}

func (co Controller) loadEmergencyFund(ctx context.Context) (emergencyFund, error) {
	return cache.Load(ctx, co.Cache, cache.EmergencyFund, func(context.Context) (emergencyFund, error) {
		fund, found, err := models.CurrentEmergencyFund(models.DB)
		return emergencyFund{fund, found}, err
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Emergency Fund
// @Success		204
// @Router			/v1/emergency-fund [options]
func (co Controller) OptionsEmergencyFund(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get emergency fund
// @Description	Returns the emergency fund with its progress. The data is null if the fund has not been set up yet.
// @Tags			Emergency Fund
// @Produce		json
// @Success		200	{object}	EmergencyFundResponse
// @Failure		500	{object}	EmergencyFundResponse
// @Router			/v1/emergency-fund [get]
func (co Controller) GetEmergencyFund(c *gin.Context) {
	fund, err := co.loadEmergencyFund(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EmergencyFundResponse{
			Error: &s,
		})
		return
	}

	if !fund.Found {
		c.JSON(http.StatusOK, EmergencyFundResponse{})
		return
	}

	data := newEmergencyFund(fund.Fund)
	c.JSON(http.StatusOK, EmergencyFundResponse{Data: &data})
}

// @Summary		Set up emergency fund
// @Description	Creates the emergency fund or replaces all of its values
// @Tags			Emergency Fund
// @Accept			json
// @Produce		json
// @Success		200				{object}	EmergencyFundResponse
// @Failure		400				{object}	EmergencyFundResponse
// @Failure		500				{object}	EmergencyFundResponse
// @Param			emergencyFund	body		EmergencyFundEditable	true	"Emergency fund"
// @Router			/v1/emergency-fund [put]
func (co Controller) SetEmergencyFund(c *gin.Context) {
	var data EmergencyFundEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EmergencyFundResponse{
			Error: &s,
		})
		return
	}

	fund, err := models.UpsertEmergencyFund(models.DB, data.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EmergencyFundResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityEmergencyFund)

	r := newEmergencyFund(fund)
	c.JSON(http.StatusOK, EmergencyFundResponse{Data: &r})
}
