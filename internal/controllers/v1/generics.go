package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// allow sets the allowed methods, e.g. httputil.OptionsGetPatchDelete.
func resourceOptionsDetail[R models.Account | models.Budget | models.Cashflow | models.Category | models.Debt | models.Investment | models.Type](c *gin.Context, resource R, allow func(*gin.Context)) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}

// createStatus returns the status for a create request after an error.
//
// The final status code is the highest HTTP status code number.
func createStatus(err error, currentStatus int) int {
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}
