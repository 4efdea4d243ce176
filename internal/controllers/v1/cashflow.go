package v1

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

// RegisterCashflowRoutes registers the routes for cashflows with
// the RouterGroup that is passed.
func (co Controller) RegisterCashflowRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCashflowList)
		r.GET("", co.GetCashflows)
		r.POST("", co.CreateCashflows)
	}

	// Cashflow with ID
	{
		r.OPTIONS("/:id", co.OptionsCashflowDetail)
		r.GET("/:id", co.GetCashflow)
		r.PATCH("/:id", co.UpdateCashflow)
		r.DELETE("/:id", co.DeleteCashflow)
	}
}

// loadCashflows returns all cashflows, newest first.
//
// Reads failing with a general error are retried.
func (co Controller) loadCashflows(ctx context.Context) ([]models.CashflowRow, error) {
	return cache.Load(ctx, co.Cache, cache.Cashflows, func(ctx context.Context) ([]models.CashflowRow, error) {
		return retry(ctx, co.Options.RetryAttempts, co.Options.RetryDelay, func() ([]models.CashflowRow, error) {
			return models.Cashflows(models.DB)
		})
	})
}

func newCashflow(c *gin.Context, row models.CashflowRow) Cashflow {
	return Cashflow{
		DefaultModel: row.DefaultModel,
		Date:         types.DateOf(row.Date),
		Month:        row.Month,
		Credit:       row.Credit,
		Debit:        row.Debit,
		Description:  row.Description,
		AccountID:    row.AccountID,
		CategoryID:   row.CategoryID,
		TypeID:       row.TypeID,
		AccountName:  row.AccountName,
		CategoryName: row.CategoryName,
		TypeName:     row.TypeName,
		Links:        selfLink(c, "cashflows", row.ID),
	}
}

// cashflowRow returns the cashflow with the ID from the cashflow list.
func (co Controller) cashflowRow(ctx context.Context, id uuid.UUID) (models.CashflowRow, error) {
	rows, err := co.loadCashflows(ctx)
	if err != nil {
		return models.CashflowRow{}, err
	}

	for _, row := range rows {
		if row.ID == id {
			return row, nil
		}
	}

	return models.CashflowRow{}, fmt.Errorf("%w cashflow matching your query", models.ErrResourceNotFound)
}

// createdCashflowRow returns the row of a cashflow that has just been
// created. If the list cannot be read, the row is built from the
// cashflow itself and has no display names.
func (co Controller) createdCashflowRow(ctx context.Context, cashflow models.Cashflow) models.CashflowRow {
	row, err := co.cashflowRow(ctx, cashflow.ID)
	if err != nil {
		log.Warn().Err(err).Str("id", cashflow.ID.String()).Msg("Reading created cashflow failed")
		return models.CashflowRow{Cashflow: cashflow}
	}

	return row
}

// searchCashflows returns the rows that contain the search text in their
// description, category name or account name, ignoring case.
func searchCashflows(rows []models.CashflowRow, search string) []models.CashflowRow {
	search = strings.TrimSpace(search)
	if search == "" {
		return rows
	}

	fold := cases.Fold()
	search = fold.String(search)

	var result []models.CashflowRow
	for _, row := range rows {
		for _, field := range []string{row.Description, row.CategoryName, row.AccountName} {
			if strings.Contains(fold.String(field), search) {
				result = append(result, row)
				break
			}
		}
	}

	return result
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cashflows
// @Success		204
// @Router			/v1/cashflows [options]
func (co Controller) OptionsCashflowList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cashflows
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/cashflows/{id} [options]
func (co Controller) OptionsCashflowDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Cashflow{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create cashflows
// @Description	Creates new cashflows from transaction forms
// @Tags			Cashflows
// @Produce		json
// @Success		201			{object}	CashflowCreateResponse
// @Failure		400			{object}	CashflowCreateResponse
// @Failure		404			{object}	CashflowCreateResponse
// @Failure		500			{object}	CashflowCreateResponse
// @Param			cashflows	body		[]CashflowCreate	true	"Transactions"
// @Router			/v1/cashflows [post]
func (co Controller) CreateCashflows(c *gin.Context) {
	var forms []CashflowCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &forms)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashflowCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CashflowCreateResponse{}

	for _, form := range forms {
		cashflow, err := form.model(co.Options.Language)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&cashflow).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		co.Cache.Mutated(cache.EntityCashflow)

		data := newCashflow(c, co.createdCashflowRow(c.Request.Context(), cashflow))
		r.Data = append(r.Data, CashflowResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get cashflows
// @Description	Returns a page of cashflows, newest first
// @Tags			Cashflows
// @Produce		json
// @Success		200		{object}	CashflowListResponse
// @Failure		400		{object}	CashflowListResponse
// @Failure		500		{object}	CashflowListResponse
// @Param			search	query		string	false	"Search for this text in description, category name and account name"
// @Param			page	query		int		false	"The page to return. Defaults to 1."
// @Router			/v1/cashflows [get]
func (co Controller) GetCashflows(c *gin.Context) {
	var filter CashflowQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CashflowListResponse{
			Error: &s,
		})
		return
	}

	if filter.Page < 1 {
		s := errPageInvalid.Error()
		c.JSON(http.StatusBadRequest, CashflowListResponse{
			Error: &s,
		})
		return
	}

	rows, err := co.loadCashflows(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowListResponse{
			Error: &s,
		})
		return
	}

	rows = searchCashflows(rows, filter.Search)

	cashflows := make([]models.Cashflow, 0, len(rows))
	for _, row := range rows {
		cashflows = append(cashflows, row.Cashflow)
	}
	totals := calc.CashflowTotals(cashflows)

	page := calc.Paginate(len(rows), filter.Page, co.pageSize())

	data := make([]Cashflow, 0, page.End-page.Start)
	for _, row := range rows[page.Start:page.End] {
		data = append(data, newCashflow(c, row))
	}

	c.JSON(http.StatusOK, CashflowListResponse{
		Data:   data,
		Totals: &totals,
		Pagination: &Pagination{
			Page:  page,
			Count: len(data),
			Total: len(rows),
		},
	})
}

// @Summary		Get cashflow
// @Description	Returns a specific cashflow
// @Tags			Cashflows
// @Produce		json
// @Success		200	{object}	CashflowResponse
// @Failure		400	{object}	CashflowResponse
// @Failure		404	{object}	CashflowResponse
// @Failure		500	{object}	CashflowResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/cashflows/{id} [get]
func (co Controller) GetCashflow(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	row, err := co.cashflowRow(c.Request.Context(), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	data := newCashflow(c, row)
	c.JSON(http.StatusOK, CashflowResponse{Data: &data})
}

// @Summary		Update cashflow
// @Description	Updates a cashflow. Only values to be updated need to be specified. When the date changes, the month is updated.
// @Tags			Cashflows
// @Accept			json
// @Produce		json
// @Success		200			{object}	CashflowResponse
// @Failure		400			{object}	CashflowResponse
// @Failure		404			{object}	CashflowResponse
// @Failure		500			{object}	CashflowResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			cashflow	body		CashflowEditable	true	"Cashflow"
// @Router			/v1/cashflows/{id} [patch]
func (co Controller) UpdateCashflow(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	var cashflow models.Cashflow
	err = models.DB.First(&cashflow, id).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CashflowEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	var data CashflowEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	// The month label follows the date
	for _, field := range updateFields {
		if field == "Date" {
			updateFields = append(updateFields, "Month")
			break
		}
	}

	err = models.DB.Model(&cashflow).Select("", updateFields...).Updates(data.model(co.Options.Language)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	co.Cache.Mutated(cache.EntityCashflow)

	row, err := co.cashflowRow(c.Request.Context(), cashflow.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashflowResponse{
			Error: &s,
		})
		return
	}

	r := newCashflow(c, row)
	c.JSON(http.StatusOK, CashflowResponse{Data: &r})
}

// @Summary		Delete cashflow
// @Description	Deletes a cashflow
// @Tags			Cashflows
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/cashflows/{id} [delete]
func (co Controller) DeleteCashflow(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var cashflow models.Cashflow
	err = models.DB.First(&cashflow, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&cashflow).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.Cache.Mutated(cache.EntityCashflow)
	c.JSON(http.StatusNoContent, nil)
}
