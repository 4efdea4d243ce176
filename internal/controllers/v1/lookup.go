package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// Types and categories are seeded at start and cannot be changed through the API.

type Type struct {
	models.DefaultModel
	Name  string   `json:"name" example:"Expense"` // Name of the type
	Links SelfLink `json:"links"`
}

func newType(c *gin.Context, model models.Type) Type {
	return Type{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Links:        selfLink(c, "types", model.ID),
	}
}

type TypeListResponse struct {
	Data  []Type  `json:"data"`                                                          // List of types
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TypeResponse struct {
	Data  *Type   `json:"data"`                                                          // Data for the type
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type Category struct {
	models.DefaultModel
	Name   string    `json:"name" example:"Makan"`                                  // Name of the category
	TypeID uuid.UUID `json:"typeId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the type the category belongs to
	Links  SelfLink  `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		TypeID:       model.TypeID,
		Links:        selfLink(c, "categories", model.ID),
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	TypeID httputil.ID `form:"type"` // By ID of the type
}

// RegisterTypeRoutes registers the routes for types with
// the RouterGroup that is passed.
func (co Controller) RegisterTypeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTypeList)
		r.GET("", co.GetTypes)
	}

	{
		r.OPTIONS("/:id", co.OptionsTypeDetail)
		r.GET("/:id", co.GetType)
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
	}

	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
	}
}

func (co Controller) loadTypes(ctx context.Context) ([]models.Type, error) {
	return cache.Load(ctx, co.Cache, cache.Types, func(context.Context) ([]models.Type, error) {
		var types []models.Type
		err := models.DB.Order("name ASC").Find(&types).Error
		return types, err
	})
}

func (co Controller) loadCategories(ctx context.Context) ([]models.Category, error) {
	return cache.Load(ctx, co.Cache, cache.Categories, func(context.Context) ([]models.Category, error) {
		var categories []models.Category
		err := models.DB.Order("name ASC").Find(&categories).Error
		return categories, err
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Types
// @Success		204
// @Router			/v1/types [options]
func (co Controller) OptionsTypeList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Types
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/types/{id} [options]
func (co Controller) OptionsTypeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Type{}, httputil.OptionsGet)
}

// @Summary		Get types
// @Description	Returns the list of cashflow types
// @Tags			Types
// @Produce		json
// @Success		200	{object}	TypeListResponse
// @Failure		500	{object}	TypeListResponse
// @Router			/v1/types [get]
func (co Controller) GetTypes(c *gin.Context) {
	types, err := co.loadTypes(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TypeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Type, 0, len(types))
	for _, t := range types {
		data = append(data, newType(c, t))
	}

	c.JSON(http.StatusOK, TypeListResponse{Data: data})
}

// @Summary		Get type
// @Description	Returns a specific type
// @Tags			Types
// @Produce		json
// @Success		200	{object}	TypeResponse
// @Failure		400	{object}	TypeResponse
// @Failure		404	{object}	TypeResponse
// @Failure		500	{object}	TypeResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/types/{id} [get]
func (co Controller) GetType(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TypeResponse{
			Error: &s,
		})
		return
	}

	var t models.Type
	err = models.DB.First(&t, id).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TypeResponse{
			Error: &s,
		})
		return
	}

	data := newType(c, t)
	c.JSON(http.StatusOK, TypeResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Category{}, httputil.OptionsGet)
}

// @Summary		Get categories
// @Description	Returns the list of categories
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			type	query		string	false	"Filter by type ID"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := co.loadCategories(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		if filter.TypeID.UUID != uuid.Nil && category.TypeID != filter.TypeID.UUID {
			continue
		}
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, err := httputil.BindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, id).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}
