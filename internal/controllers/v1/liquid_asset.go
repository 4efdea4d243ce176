package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// LiquidAsset is the balance of an account. Balances are only changed
// by recalculation.
type LiquidAsset struct {
	models.DefaultModel
	AccountID   *uuid.UUID         `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the account
	AccountName string             `json:"accountName" example:"BCA"`                                // Name of the account
	AccountType models.AccountType `json:"accountType" example:"Checking"`                           // Type of the account
	Balance     decimal.Decimal    `json:"balance" example:"17500000"`                               // Credits minus debits of the account
}

type LiquidAssetListResponse struct {
	Data    []LiquidAsset        `json:"data"`                                                          // List of liquid assets
	Error   *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Summary *calc.BalanceSummary `json:"summary"`                                                       // Assets and liabilities
}

// RegisterLiquidAssetRoutes registers the routes for liquid assets with
// the RouterGroup that is passed.
func (co Controller) RegisterLiquidAssetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsLiquidAssetList)
	r.GET("", co.GetLiquidAssets)
	r.OPTIONS("/recalculate", co.OptionsLiquidAssetRecalculate)
	r.POST("/recalculate", co.RecalculateLiquidAssets)
}

func (co Controller) loadLiquidAssets(ctx context.Context) ([]models.LiquidAssetRow, error) {
	return cache.Load(ctx, co.Cache, cache.LiquidAssets, func(context.Context) ([]models.LiquidAssetRow, error) {
		return models.LiquidAssets(models.DB)
	})
}

func newLiquidAssets(rows []models.LiquidAssetRow) ([]LiquidAsset, calc.BalanceSummary) {
	data := make([]LiquidAsset, 0, len(rows))
	balances := make([]decimal.Decimal, 0, len(rows))

	for _, row := range rows {
		data = append(data, LiquidAsset{
			DefaultModel: row.DefaultModel,
			AccountID:    row.AccountID,
			AccountName:  row.AccountName,
			AccountType:  row.AccountType,
			Balance:      row.Balance,
		})
		balances = append(balances, row.Balance)
	}

	return data, calc.BalanceTotals(balances)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liquid Assets
// @Success		204
// @Router			/v1/liquid-assets [options]
func (co Controller) OptionsLiquidAssetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liquid Assets
// @Success		204
// @Router			/v1/liquid-assets/recalculate [options]
func (co Controller) OptionsLiquidAssetRecalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get liquid assets
// @Description	Returns the balances of all accounts with the total assets and liabilities
// @Tags			Liquid Assets
// @Produce		json
// @Success		200	{object}	LiquidAssetListResponse
// @Failure		500	{object}	LiquidAssetListResponse
// @Router			/v1/liquid-assets [get]
func (co Controller) GetLiquidAssets(c *gin.Context) {
	rows, err := co.loadLiquidAssets(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiquidAssetListResponse{
			Error: &s,
		})
		return
	}

	data, summary := newLiquidAssets(rows)
	c.JSON(http.StatusOK, LiquidAssetListResponse{
		Data:    data,
		Summary: &summary,
	})
}

// @Summary		Recalculate liquid assets
// @Description	Sets the balance of every account to the sum of its credits minus the sum of its debits
// @Tags			Liquid Assets
// @Produce		json
// @Success		200	{object}	LiquidAssetListResponse
// @Failure		500	{object}	LiquidAssetListResponse
// @Router			/v1/liquid-assets/recalculate [post]
func (co Controller) RecalculateLiquidAssets(c *gin.Context) {
	_, err := models.RecalculateLiquidAssets(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiquidAssetListResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityLiquidAsset)

	rows, err := co.loadLiquidAssets(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiquidAssetListResponse{
			Error: &s,
		})
		return
	}

	data, summary := newLiquidAssets(rows)
	c.JSON(http.StatusOK, LiquidAssetListResponse{
		Data:    data,
		Summary: &summary,
	})
}
