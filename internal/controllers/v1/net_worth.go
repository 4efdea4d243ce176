package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

type NetWorth struct {
	models.DefaultModel
	CalculatedAt     time.Time        `json:"calculatedAt" example:"2024-03-31T18:00:00Z"` // When the snapshot was taken
	TotalAssets      decimal.Decimal  `json:"totalAssets" example:"67500000"`              // Liquid assets and investments
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities" example:"6000000"`          // Negative balances and debts
	NetWorth         decimal.Decimal  `json:"netWorth" example:"61500000"`                 // Assets minus liabilities
	Delta            *decimal.Decimal `json:"delta" example:"1500000"`                     // Change from the previous snapshot
	DeltaPercentage  *decimal.Decimal `json:"deltaPercentage" example:"2.5"`               // Change from the previous snapshot in percent
}

func newNetWorth(n models.NetWorth, delta *calc.Delta) NetWorth {
	r := NetWorth{
		DefaultModel:     n.DefaultModel,
		CalculatedAt:     n.CalculatedAt,
		TotalAssets:      n.TotalAssets,
		TotalLiabilities: n.TotalLiabilities,
		NetWorth:         n.NetWorth,
	}

	if delta != nil {
		r.Delta = &delta.Change
		r.DeltaPercentage = &delta.Percentage
	}

	return r
}

type NetWorthListResponse struct {
	Data    []NetWorth            `json:"data"`                                                          // Snapshots, newest first
	Error   *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Summary *calc.NetWorthSummary `json:"summary"`                                                       // Latest change
}

type NetWorthResponse struct {
	Data  *NetWorth `json:"data"`                                                          // Data for the snapshot
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterNetWorthRoutes registers the routes for net worth with
// the RouterGroup that is passed.
func (co Controller) RegisterNetWorthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsNetWorth)
	r.GET("", co.GetNetWorth)
	r.POST("", co.CreateNetWorth)
}

func (co Controller) loadNetWorth(ctx context.Context) ([]models.NetWorth, error) {
	return cache.Load(ctx, co.Cache, cache.NetWorth, func(context.Context) ([]models.NetWorth, error) {
		return models.NetWorthHistory(models.DB)
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Net Worth
// @Success		204
// @Router			/v1/net-worth [options]
func (co Controller) OptionsNetWorth(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get net worth history
// @Description	Returns all net worth snapshots, newest first, with the change to their predecessor
// @Tags			Net Worth
// @Produce		json
// @Success		200	{object}	NetWorthListResponse
// @Failure		500	{object}	NetWorthListResponse
// @Router			/v1/net-worth [get]
func (co Controller) GetNetWorth(c *gin.Context) {
	history, err := co.loadNetWorth(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NetWorthListResponse{
			Error: &s,
		})
		return
	}

	deltas := calc.NetWorthDeltas(history)
	data := make([]NetWorth, 0, len(history))
	for i, n := range history {
		data = append(data, newNetWorth(n, deltas[i]))
	}

	summary := calc.NetWorthTotals(history)
	c.JSON(http.StatusOK, NetWorthListResponse{
		Data:    data,
		Summary: &summary,
	})
}

// @Summary		Create net worth snapshot
// @Description	Computes the net worth from the current liquid assets, investments and debts and stores it
// @Tags			Net Worth
// @Produce		json
// @Success		201	{object}	NetWorthResponse
// @Failure		500	{object}	NetWorthResponse
// @Router			/v1/net-worth [post]
func (co Controller) CreateNetWorth(c *gin.Context) {
	snapshot, err := models.NewNetWorthSnapshot(models.DB, co.now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NetWorthResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityNetWorth)

	// The delta is relative to the snapshot before this one
	history, err := co.loadNetWorth(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NetWorthResponse{
			Error: &s,
		})
		return
	}

	var delta *calc.Delta
	deltas := calc.NetWorthDeltas(history)
	for i, n := range history {
		if n.ID == snapshot.ID {
			delta = deltas[i]
			break
		}
	}

	data := newNetWorth(snapshot, delta)
	c.JSON(http.StatusCreated, NetWorthResponse{Data: &data})
}
