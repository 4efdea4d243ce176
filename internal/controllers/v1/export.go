package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

var backendVersion string

const cashflowSheet = "Cashflows"

var cashflowColumns = []any{"Date", "Month", "Description", "Account", "Category", "Type", "Credit", "Debit"}

type ExportResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported data
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
	Clacks       string                     `json:"clacks"`       // This will always have the value "GNU Terry Pratchett"
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", co.OptionsExport)
		r.GET("", co.GetExport)
		r.OPTIONS("/cashflows.xlsx", co.OptionsExport)
		r.GET("/cashflows.xlsx", co.GetCashflowSpreadsheet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
// @Router			/v1/export/cashflows.xlsx [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		Data:         resources,
		CreationTime: co.now(),
		Clacks:       "GNU Terry Pratchett",
	})
}

// @Summary		Export cashflows
// @Description	Exports all cashflows as spreadsheet, newest first
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/cashflows.xlsx [get]
func (co Controller) GetCashflowSpreadsheet(c *gin.Context) {
	rows, err := co.loadCashflows(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	f, err := cashflowSpreadsheet(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"cashflows_%s.xlsx\"", co.now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// cashflowSpreadsheet writes one row per cashflow below a header row.
func cashflowSpreadsheet(rows []models.CashflowRow) (*excelize.File, error) {
	f := excelize.NewFile()

	err := f.SetSheetName(f.GetSheetName(0), cashflowSheet)
	if err != nil {
		return nil, err
	}

	err = f.SetSheetRow(cashflowSheet, "A1", &cashflowColumns)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		values := []any{
			row.Date.Format(time.DateOnly),
			row.Month,
			row.Description,
			row.AccountName,
			row.CategoryName,
			row.TypeName,
			calc.Value(row.Credit).InexactFloat64(),
			calc.Value(row.Debit).InexactFloat64(),
		}

		err = f.SetSheetRow(cashflowSheet, cell, &values)
		if err != nil {
			return nil, err
		}
	}

	err = f.SetColWidth(cashflowSheet, "C", "C", 30)
	if err != nil {
		return nil, err
	}

	return f, nil
}
