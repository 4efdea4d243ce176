package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/models"
)

// Pagination describes the page of a list that is returned.
type Pagination struct {
	calc.Page
	Count int `json:"count" example:"10"` // The amount of records returned in this response
	Total int `json:"total" example:"47"` // The total number of records matching the query
}

type SelfLink struct {
	Self string `json:"self" example:"https://example.com/api/v1/debts/3b1ea324-d438-4419-882a-2fc91d71772f"` // The resource itself
}

// selfLink returns the link to a resource in the collection
func selfLink(c *gin.Context, collection string, id fmt.Stringer) SelfLink {
	url := c.GetString(string(models.DBContextURL))
	return SelfLink{Self: fmt.Sprintf("%s/v1/%s/%s", url, collection, id)}
}
