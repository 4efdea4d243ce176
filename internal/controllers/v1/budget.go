package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Year            int                 `json:"year" example:"2024"`                                                            // Year of the budget
	Month           string              `json:"month" example:"March"`                                                          // Month of the budget
	CategoryID      httputil.ID         `json:"categoryId" swaggertype:"string" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	ExpectedAmount  decimal.Decimal     `json:"expectedAmount" example:"2000000"`                                               // Amount expected to be spent
	AllocatedAmount decimal.NullDecimal `json:"allocatedAmount" swaggertype:"string" example:"2250000"`                         // Amount allocated so far
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Year:            editable.Year,
		Month:           editable.Month,
		CategoryID:      editable.CategoryID.Ptr(),
		ExpectedAmount:  editable.ExpectedAmount,
		AllocatedAmount: editable.AllocatedAmount,
	}
}

type Budget struct {
	models.DefaultModel
	Year            int                 `json:"year" example:"2024"`                                       // Year of the budget
	Month           string              `json:"month" example:"March"`                                     // Month of the budget
	CategoryID      *uuid.UUID          `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	CategoryName    string              `json:"categoryName" example:"Makan"`                              // Name of the category
	ExpectedAmount  decimal.Decimal     `json:"expectedAmount" example:"2000000"`                          // Amount expected to be spent
	AllocatedAmount decimal.NullDecimal `json:"allocatedAmount" swaggertype:"string" example:"2250000"`    // Amount allocated so far
	Utilization     calc.Utilization    `json:"utilization"`                                               // How much of the expected amount is allocated
	Links           SelfLink            `json:"links"`
}

func newBudget(c *gin.Context, row models.BudgetRow) Budget {
	return Budget{
		DefaultModel:    row.DefaultModel,
		Year:            row.Year,
		Month:           row.Month,
		CategoryID:      row.CategoryID,
		CategoryName:    row.CategoryName,
		ExpectedAmount:  row.ExpectedAmount,
		AllocatedAmount: row.AllocatedAmount,
		Utilization:     calc.BudgetUtilization(row.ExpectedAmount, row.AllocatedAmount),
		Links:           selfLink(c, "budgets", row.ID),
	}
}

type BudgetListResponse struct {
	Data    []Budget            `json:"data"`                                                          // List of budgets
	Error   *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Summary *calc.BudgetSummary `json:"summary"`                                                       // Totals of all budgets
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})
	return createStatus(err, currentStatus)
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

func (co Controller) loadBudgets(ctx context.Context) ([]models.BudgetRow, error) {
	return cache.Load(ctx, co.Cache, cache.Budgets, func(context.Context) ([]models.BudgetRow, error) {
		return models.Budgets(models.DB)
	})
}

// budgetRow returns the budget with the ID from the budget list.
func (co Controller) budgetRow(ctx context.Context, id uuid.UUID) (models.BudgetRow, error) {
	rows, err := co.loadBudgets(ctx)
	if err != nil {
		return models.BudgetRow{}, err
	}

	for _, row := range rows {
		if row.ID == id {
			return row, nil
		}
	}

	return models.BudgetRow{}, fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Budget{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create budgets
// @Description	Creates new budgets
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		co.Cache.Mutated(cache.EntityBudget)

		row, err := co.budgetRow(c.Request.Context(), budget.ID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, row)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns all budgets with their utilization and totals
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	rows, err := co.loadBudgets(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	budgets := make([]models.Budget, 0, len(rows))
	data := make([]Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, row.Budget)
		data = append(data, newBudget(c, row))
	}

	summary := calc.BudgetTotals(budgets)
	c.JSON(http.StatusOK, BudgetListResponse{
		Data:    data,
		Summary: &summary,
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	row, err := co.budgetRow(c.Request.Context(), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, row)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Updates a budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, id).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityBudget)

	row, err := co.budgetRow(c.Request.Context(), budget.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, row)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.Cache.Mutated(cache.EntityBudget)
	c.JSON(http.StatusNoContent, nil)
}
