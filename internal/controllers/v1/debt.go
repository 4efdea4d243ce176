package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Name           string              `json:"name" example:"Kartu Kredit"`                                             // Name of the debt
	Balance        decimal.NullDecimal `json:"balance" swaggertype:"string" example:"12500000"`                         // Outstanding balance
	InterestRate   decimal.NullDecimal `json:"interestRate" swaggertype:"string" example:"21"`                          // Yearly interest rate in percent
	MinimumPayment decimal.NullDecimal `json:"minimumPayment" swaggertype:"string" example:"750000"`                    // Minimum monthly payment
	DueDate        types.Date          `json:"dueDate" swaggertype:"string" example:"2024-03-25"`                       // Next due date
	Strategy       models.DebtStrategy `json:"strategy" example:"avalanche" enums:"avalanche,snowball"`                 // Payoff strategy
	Notes          string              `json:"notes" example:"Limit 20 juta, bayar sebelum tanggal 25 setiap bulannya"` // Notes
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:           editable.Name,
		Balance:        editable.Balance,
		InterestRate:   editable.InterestRate,
		MinimumPayment: editable.MinimumPayment,
		DueDate:        editable.DueDate.Ptr(),
		Strategy:       editable.Strategy,
		Notes:          editable.Notes,
	}
}

type Debt struct {
	models.DefaultModel
	Name            string              `json:"name" example:"Kartu Kredit"`                                             // Name of the debt
	Balance         decimal.NullDecimal `json:"balance" swaggertype:"string" example:"12500000"`                         // Outstanding balance
	InterestRate    decimal.NullDecimal `json:"interestRate" swaggertype:"string" example:"21"`                          // Yearly interest rate in percent
	MinimumPayment  decimal.NullDecimal `json:"minimumPayment" swaggertype:"string" example:"750000"`                    // Minimum monthly payment
	DueDate         *types.Date         `json:"dueDate" swaggertype:"string" example:"2024-03-25"`                       // Next due date
	Strategy        models.DebtStrategy `json:"strategy" example:"avalanche"`                                            // Payoff strategy
	Notes           string              `json:"notes" example:"Limit 20 juta, bayar sebelum tanggal 25 setiap bulannya"` // Notes
	Due             *calc.Due           `json:"due"`                                                                     // Due status. Absent without due date
	MonthlyInterest decimal.Decimal     `json:"monthlyInterest" example:"218750"`                                        // Interest accruing per month
	PayoffMonths    int64               `json:"payoffMonths" example:"17"`                                               // Months until paid off with the minimum payment
	Links           SelfLink            `json:"links"`
}

func (co Controller) newDebt(c *gin.Context, d models.Debt) Debt {
	return Debt{
		DefaultModel:    d.DefaultModel,
		Name:            d.Name,
		Balance:         d.Balance,
		InterestRate:    d.InterestRate,
		MinimumPayment:  d.MinimumPayment,
		DueDate:         types.DatePtr(d.DueDate),
		Strategy:        d.Strategy,
		Notes:           d.Notes,
		Due:             calc.DebtDue(d.DueDate, co.now()),
		MonthlyInterest: calc.MonthlyInterest(d.Balance, d.InterestRate),
		PayoffMonths:    calc.PayoffMonths(d.Balance, d.MinimumPayment),
		Links:           selfLink(c, "debts", d.ID),
	}
}

type DebtListResponse struct {
	Data    []Debt            `json:"data"`                                                          // List of debts
	Error   *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Summary *calc.DebtSummary `json:"summary"`                                                       // Totals of all debts
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"`                                                          // List of the created debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DebtResponse{Error: &s})
	return createStatus(err, currentStatus)
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// DebtPayment is a payment towards a debt.
type DebtPayment struct {
	Amount decimal.Decimal `json:"amount" example:"750000"` // Amount paid
}

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func (co Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsDebtList)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", co.OptionsDebtDetail)
		r.GET("/:id", co.GetDebt)
		r.PATCH("/:id", co.UpdateDebt)
		r.DELETE("/:id", co.DeleteDebt)
		r.OPTIONS("/:id/payments", co.OptionsDebtPayments)
		r.POST("/:id/payments", co.CreateDebtPayment)
	}
}

// loadDebts returns all debts, the next due first.
func (co Controller) loadDebts(ctx context.Context) ([]models.Debt, error) {
	return cache.Load(ctx, co.Cache, cache.Debts, func(context.Context) ([]models.Debt, error) {
		var debts []models.Debt
		err := models.DB.Order("due_date IS NULL").Order("due_date ASC").Order("name ASC").Find(&debts).Error
		return debts, err
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func (co Controller) OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/debts/{id} [options]
func (co Controller) OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/debts/{id}/payments [options]
func (co Controller) OptionsDebtPayments(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsPost)
}

// @Summary		Create debts
// @Description	Creates new debts
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func (co Controller) CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, editable := range editables {
		debt := editable.model()

		err = models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := co.newDebt(c, debt)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	if len(r.Data) > 0 {
		co.Cache.Mutated(cache.EntityDebt)
	}

	c.JSON(status, r)
}

// @Summary		Get debts
// @Description	Returns all debts with their due status and totals
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
func (co Controller) GetDebts(c *gin.Context) {
	debts, err := co.loadDebts(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, co.newDebt(c, debt))
	}

	summary := calc.DebtTotals(debts)
	c.JSON(http.StatusOK, DebtListResponse{
		Data:    data,
		Summary: &summary,
	})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/debts/{id} [get]
func (co Controller) GetDebt(c *gin.Context) {
	debt, err := co.findDebt(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := co.newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Update debt
// @Description	Updates a debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func (co Controller) UpdateDebt(c *gin.Context) {
	debt, err := co.findDebt(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityDebt)

	// Reload to get the cleared due date right
	err = models.DB.First(&debt, debt.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	r := co.newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/debts/{id} [delete]
func (co Controller) DeleteDebt(c *gin.Context) {
	debt, err := co.findDebt(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.Cache.Mutated(cache.EntityDebt)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Pay debt
// @Description	Records a payment and reduces the balance of the debt by its amount
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		string		true	"ID formatted as string"
// @Param			payment	body		DebtPayment	true	"Payment"
// @Router			/v1/debts/{id}/payments [post]
func (co Controller) CreateDebtPayment(c *gin.Context) {
	debt, err := co.findDebt(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var payment DebtPayment
	err = httputil.BindData(c, &payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = debt.Pay(models.DB, payment.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityDebt)

	data := co.newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// findDebt returns the debt for the ID in the URI.
func (co Controller) findDebt(c *gin.Context) (models.Debt, error) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		return models.Debt{}, err
	}

	var debt models.Debt
	err = models.DB.First(&debt, id).Error
	if err != nil {
		return models.Debt{}, err
	}

	return debt, nil
}
