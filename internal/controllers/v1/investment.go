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

// InvestmentEditable represents all user configurable parameters
type InvestmentEditable struct {
	Symbol       string              `json:"symbol" example:"BBCA"`                              // Ticker symbol
	Name         string              `json:"name" example:"Bank Central Asia"`                   // Name of the instrument
	Type         string              `json:"type" example:"Saham"`                               // Kind of instrument
	Platform     string              `json:"platform" example:"Bibit"`                           // Where the position is held
	Sector       string              `json:"sector" example:"Finance"`                           // Sector of the instrument
	Quantity     decimal.NullDecimal `json:"quantity" swaggertype:"string" example:"100"`        // Number of units
	BuyPrice     decimal.NullDecimal `json:"buyPrice" swaggertype:"string" example:"9000"`       // Average price per unit paid
	CurrentPrice decimal.NullDecimal `json:"currentPrice" swaggertype:"string" example:"9875"`   // Current price per unit
	Currency     string              `json:"currency" example:"IDR" minLength:"3" maxLength:"3"` // ISO 4217 code of the prices
}

func (editable InvestmentEditable) model() models.Investment {
	return models.Investment{
		Symbol:       editable.Symbol,
		Name:         editable.Name,
		Type:         editable.Type,
		Platform:     editable.Platform,
		Sector:       editable.Sector,
		Quantity:     editable.Quantity,
		BuyPrice:     editable.BuyPrice,
		CurrentPrice: editable.CurrentPrice,
		Currency:     editable.Currency,
	}
}

type Investment struct {
	models.DefaultModel
	InvestmentEditable
	CurrencySymbol string           `json:"currencySymbol" example:"Rp"` // Symbol for the currency
	Performance    calc.Performance `json:"performance"`                 // Market value and gain of the position
	Links          SelfLink         `json:"links"`
}

func (co Controller) newInvestment(c *gin.Context, i models.Investment) Investment {
	return Investment{
		DefaultModel: i.DefaultModel,
		InvestmentEditable: InvestmentEditable{
			Symbol:       i.Symbol,
			Name:         i.Name,
			Type:         i.Type,
			Platform:     i.Platform,
			Sector:       i.Sector,
			Quantity:     i.Quantity,
			BuyPrice:     i.BuyPrice,
			CurrentPrice: i.CurrentPrice,
			Currency:     i.Currency,
		},
		CurrencySymbol: calc.CurrencySymbol(i.Currency, co.Options.Language),
		Performance:    calc.InvestmentPerformance(i.Quantity, i.BuyPrice, i.CurrentPrice),
		Links:          selfLink(c, "investments", i.ID),
	}
}

type InvestmentListResponse struct {
	Data    []Investment           `json:"data"`                                                          // List of investments
	Error   *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Summary *calc.PortfolioSummary `json:"summary"`                                                       // Totals of the portfolio
}

type InvestmentCreateResponse struct {
	Data  []InvestmentResponse `json:"data"`                                                          // List of the created investments or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *InvestmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InvestmentResponse{Error: &s})
	return createStatus(err, currentStatus)
}

type InvestmentResponse struct {
	Data  *Investment `json:"data"`                                                          // Data for the investment
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func (co Controller) RegisterInvestmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsInvestmentList)
		r.GET("", co.GetInvestments)
		r.POST("", co.CreateInvestments)
	}

	// Investment with ID
	{
		r.OPTIONS("/:id", co.OptionsInvestmentDetail)
		r.GET("/:id", co.GetInvestment)
		r.PATCH("/:id", co.UpdateInvestment)
		r.DELETE("/:id", co.DeleteInvestment)
	}
}

func (co Controller) loadInvestments(ctx context.Context) ([]models.Investment, error) {
	return cache.Load(ctx, co.Cache, cache.Investments, func(context.Context) ([]models.Investment, error) {
		var investments []models.Investment
		err := models.DB.Order("symbol ASC").Order("name ASC").Find(&investments).Error
		return investments, err
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func (co Controller) OptionsInvestmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/investments/{id} [options]
func (co Controller) OptionsInvestmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Investment{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create investments
// @Description	Creates new investments
// @Tags			Investments
// @Produce		json
// @Success		201			{object}	InvestmentCreateResponse
// @Failure		400			{object}	InvestmentCreateResponse
// @Failure		500			{object}	InvestmentCreateResponse
// @Param			investments	body		[]InvestmentEditable	true	"Investments"
// @Router			/v1/investments [post]
func (co Controller) CreateInvestments(c *gin.Context) {
	var editables []InvestmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvestmentCreateResponse{}

	for _, editable := range editables {
		investment := editable.model()

		err = models.DB.Create(&investment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := co.newInvestment(c, investment)
		r.Data = append(r.Data, InvestmentResponse{Data: &data})
	}

	if len(r.Data) > 0 {
		co.Cache.Mutated(cache.EntityInvestment)
	}

	c.JSON(status, r)
}

// @Summary		Get investments
// @Description	Returns all investments with their performance and the portfolio totals
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentListResponse
// @Failure		500	{object}	InvestmentListResponse
// @Router			/v1/investments [get]
func (co Controller) GetInvestments(c *gin.Context) {
	investments, err := co.loadInvestments(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Investment, 0, len(investments))
	for _, investment := range investments {
		data = append(data, co.newInvestment(c, investment))
	}

	summary := calc.PortfolioTotals(investments)
	c.JSON(http.StatusOK, InvestmentListResponse{
		Data:    data,
		Summary: &summary,
	})
}

// @Summary		Get investment
// @Description	Returns a specific investment
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentResponse
// @Failure		400	{object}	InvestmentResponse
// @Failure		404	{object}	InvestmentResponse
// @Failure		500	{object}	InvestmentResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/investments/{id} [get]
func (co Controller) GetInvestment(c *gin.Context) {
	investment, err := findInvestment(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &s,
		})
		return
	}

	data := co.newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &data})
}

// @Summary		Update investment
// @Description	Updates an investment. Only values to be updated need to be specified.
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvestmentResponse
// @Failure		400			{object}	InvestmentResponse
// @Failure		404			{object}	InvestmentResponse
// @Failure		500			{object}	InvestmentResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			investment	body		InvestmentEditable	true	"Investment"
// @Router			/v1/investments/{id} [patch]
func (co Controller) UpdateInvestment(c *gin.Context) {
	investment, err := findInvestment(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvestmentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &s,
		})
		return
	}

	var data InvestmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&investment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityInvestment)

	r := co.newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &r})
}

// @Summary		Delete investment
// @Description	Deletes an investment
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/investments/{id} [delete]
func (co Controller) DeleteInvestment(c *gin.Context) {
	investment, err := findInvestment(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&investment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.Cache.Mutated(cache.EntityInvestment)
	c.JSON(http.StatusNoContent, nil)
}

func findInvestment(c *gin.Context) (models.Investment, error) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		return models.Investment{}, err
	}

	var investment models.Investment
	err = models.DB.First(&investment, id).Error
	if err != nil {
		return models.Investment{}, err
	}

	return investment, nil
}
