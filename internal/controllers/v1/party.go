package v1

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPartyRoutes registers the routes for Parties with
// the RouterGroup that is passed.
func RegisterPartyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPartyList)
		r.GET("", GetParties)
		r.POST("", CreateParty)
	}

	// Party with ID
	{
		r.OPTIONS("/:id", OptionsPartyDetail)
		r.GET("/:id", GetParty)
		r.PATCH("/:id", UpdateParty)
		r.DELETE("/:id", DeleteParty)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parties
// @Success		204
// @Router			/v1/parties [options]
func OptionsPartyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parties/{id} [options]
func OptionsPartyDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Party{})
}

// @Summary		Create party
// @Description	Creates a new party
// @Tags			Parties
// @Accept			json
// @Produce		json
// @Success		201		{object}	PartyResponse
// @Failure		400		{object}	PartyResponse
// @Failure		500		{object}	PartyResponse
// @Param			party	body		PartyEditable	true	"Party"
// @Router			/v1/parties [post]
func CreateParty(c *gin.Context) {
	var editable PartyEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	party := editable.model()

	err = models.DB.Create(&party).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	data := newParty(party)
	c.JSON(http.StatusCreated, PartyResponse{Data: &data})
}

// @Summary		List parties
// @Description	Returns a list of parties
// @Tags			Parties
// @Produce		json
// @Success		200	{object}	PartyListResponse
// @Failure		500	{object}	PartyListResponse
// @Router			/v1/parties [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			document	query	string	false	"Filter by document"
// @Param			type		query	string	false	"Only parties with this relationship"
// @Param			search		query	string	false	"Search for this text in name and document"
// @Param			offset		query	uint	false	"The offset of the first Party returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Parties to return. Defaults to 50."
func GetParties(c *gin.Context) {
	var filter PartyQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var parties []models.Party

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("document LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&parties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyListResponse{
			Error: &e,
		})
		return
	}

	// The relationship filter cannot be expressed in SQL since the
	// kinds are stored as a JSON array
	apiResources := make([]Party, 0)
	for _, party := range parties {
		if filter.Type != "" && !slices.Contains(party.Types, models.PartyKind(filter.Type)) {
			continue
		}

		apiResources = append(apiResources, newParty(party))
	}

	c.JSON(http.StatusOK, PartyListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get party
// @Description	Returns a specific party
// @Tags			Parties
// @Produce		json
// @Success		200	{object}	PartyResponse
// @Failure		400	{object}	PartyResponse
// @Failure		404	{object}	PartyResponse
// @Failure		500	{object}	PartyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parties/{id} [get]
func GetParty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	var party models.Party
	err = models.DB.First(&party, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	data := newParty(party)
	c.JSON(http.StatusOK, PartyResponse{Data: &data})
}

// @Summary		Update party
// @Description	Update an existing party. Only values to be updated need to be specified.
// @Tags			Parties
// @Accept			json
// @Produce		json
// @Success		200		{object}	PartyResponse
// @Failure		400		{object}	PartyResponse
// @Failure		404		{object}	PartyResponse
// @Failure		500		{object}	PartyResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			party	body		PartyEditable	true	"Party"
// @Router			/v1/parties/{id} [patch]
func UpdateParty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	var party models.Party
	err = models.DB.First(&party, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PartyEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	var data PartyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&party).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartyResponse{
			Error: &e,
		})
		return
	}

	apiResource := newParty(party)
	c.JSON(http.StatusOK, PartyResponse{Data: &apiResource})
}

// @Summary		Delete party
// @Description	Deletes a party
// @Tags			Parties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parties/{id} [delete]
func DeleteParty(c *gin.Context) {
	deleteResource[models.Party](c)
}
