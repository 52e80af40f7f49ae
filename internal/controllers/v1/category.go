package v1

import (
	"net/http"
	"slices"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for Categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Category{})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	category := editable.model()

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var categories []models.Category

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Category, 0)
	for _, category := range categories {
		apiResources = append(apiResources, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	deleteResource[models.Category](c)
}
