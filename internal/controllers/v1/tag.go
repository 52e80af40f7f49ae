package v1

import (
	"net/http"
	"slices"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTagRoutes registers the routes for Tags with
// the RouterGroup that is passed.
func RegisterTagRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTagList)
		r.GET("", GetTags)
		r.POST("", CreateTag)
	}

	// Tag with ID
	{
		r.OPTIONS("/:id", OptionsTagDetail)
		r.GET("/:id", GetTag)
		r.PATCH("/:id", UpdateTag)
		r.DELETE("/:id", DeleteTag)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Router			/v1/tags [options]
func OptionsTagList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [options]
func OptionsTagDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Tag{})
}

// @Summary		Create tag
// @Description	Creates a new tag
// @Tags			Tags
// @Accept			json
// @Produce		json
// @Success		201	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			tag	body		TagEditable	true	"Tag"
// @Router			/v1/tags [post]
func CreateTag(c *gin.Context) {
	var editable TagEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	tag := editable.model()

	err = models.DB.Create(&tag).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	data := newTag(tag)
	c.JSON(http.StatusCreated, TagResponse{Data: &data})
}

// @Summary		List tags
// @Description	Returns a list of tags
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagListResponse
// @Failure		500	{object}	TagListResponse
// @Router			/v1/tags [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first Tag returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Tags to return. Defaults to 50."
func GetTags(c *gin.Context) {
	var filter TagQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var tags []models.Tag

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

	err := q.Find(&tags).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Tag, 0)
	for _, tag := range tags {
		apiResources = append(apiResources, newTag(tag))
	}

	c.JSON(http.StatusOK, TagListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tag
// @Description	Returns a specific tag
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [get]
func GetTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	data := newTag(tag)
	c.JSON(http.StatusOK, TagResponse{Data: &data})
}

// @Summary		Update tag
// @Description	Update an existing tag. Only values to be updated need to be specified.
// @Tags			Tags
// @Accept			json
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tag	body		TagEditable	true	"Tag"
// @Router			/v1/tags/{id} [patch]
func UpdateTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TagEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var data TagEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&tag).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTag(tag)
	c.JSON(http.StatusOK, TagResponse{Data: &apiResource})
}

// @Summary		Delete tag
// @Description	Deletes a tag
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	deleteResource[models.Tag](c)
}
