package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts      string `json:"accounts" example:"https://example.com/api/v1/accounts"`            // URL of account list endpoint
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of budget list endpoint
	Cashflows     string `json:"cashflows" example:"https://example.com/api/v1/cashflows"`          // URL of cashflow list endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of category list endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`          // URL of the dashboard endpoint
	Debts         string `json:"debts" example:"https://example.com/api/v1/debts"`                  // URL of debt list endpoint
	EmergencyFund string `json:"emergencyFund" example:"https://example.com/api/v1/emergency-fund"` // URL of the emergency fund endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
	Investments   string `json:"investments" example:"https://example.com/api/v1/investments"`      // URL of investment list endpoint
	LiquidAssets  string `json:"liquidAssets" example:"https://example.com/api/v1/liquid-assets"`   // URL of liquid asset list endpoint
	NetWorth      string `json:"netWorth" example:"https://example.com/api/v1/net-worth"`           // URL of the net worth history endpoint
	Settings      string `json:"settings" example:"https://example.com/api/v1/settings"`            // URL of the settings endpoint
	Assistant     string `json:"assistant" example:"https://example.com/api/v1/assistant"`          // URL of the assistant endpoints
	Types         string `json:"types" example:"https://example.com/api/v1/types"`                  // URL of type list endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func (co Controller) GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:      url + "/v1/accounts",
			Budgets:       url + "/v1/budgets",
			Cashflows:     url + "/v1/cashflows",
			Categories:    url + "/v1/categories",
			Dashboard:     url + "/v1/dashboard",
			Debts:         url + "/v1/debts",
			EmergencyFund: url + "/v1/emergency-fund",
			Export:        url + "/v1/export",
			Investments:   url + "/v1/investments",
			LiquidAssets:  url + "/v1/liquid-assets",
			NetWorth:      url + "/v1/net-worth",
			Settings:      url + "/v1/settings",
			Assistant:     url + "/v1/assistant",
			Types:         url + "/v1/types",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all user data. Types and categories are kept.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		&models.Cashflow{},
		&models.Budget{},
		&models.LiquidAsset{},
		&models.Debt{},
		&models.Investment{},
		&models.NetWorth{},
		&models.EmergencyFund{},
		&models.Setting{},
		&models.Account{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(model).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	err = tx.Commit().Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.Cache.Mutated(cache.EntityAll)
	c.JSON(http.StatusNoContent, nil)
}
