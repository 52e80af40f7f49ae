package v1

import (
	"net/http"
	"slices"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCashRegisterRoutes registers the routes for CashRegisters with
// the RouterGroup that is passed.
func RegisterCashRegisterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCashRegisterList)
		r.GET("", GetCashRegisters)
		r.POST("", CreateCashRegister)
	}

	// CashRegister with ID
	{
		r.OPTIONS("/:id", OptionsCashRegisterDetail)
		r.GET("/:id", GetCashRegister)
		r.PATCH("/:id", UpdateCashRegister)
		r.DELETE("/:id", DeleteCashRegister)
	}

	// Closing a register
	{
		r.OPTIONS("/:id/close", OptionsCashRegisterClose)
		r.POST("/:id/close", CloseCashRegister)
	}

	// Entries of a register
	{
		r.OPTIONS("/:id/entries", OptionsCashEntries)
		r.GET("/:id/entries", GetCashEntries)
		r.POST("/:id/entries", CreateCashEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashRegisters
// @Success		204
// @Router			/v1/cash-registers [options]
func OptionsCashRegisterList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashRegisters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id} [options]
func OptionsCashRegisterDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CashRegister{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashRegisters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id}/close [options]
func OptionsCashRegisterClose(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CashRegister{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create cash register
// @Description	Creates a new cash register
// @Tags			CashRegisters
// @Accept			json
// @Produce		json
// @Success		201			{object}	CashRegisterResponse
// @Failure		400			{object}	CashRegisterResponse
// @Failure		500			{object}	CashRegisterResponse
// @Param			register	body		CashRegisterEditable	true	"CashRegister"
// @Router			/v1/cash-registers [post]
func CreateCashRegister(c *gin.Context) {
	var editable CashRegisterEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	register := editable.model()

	err = models.DB.Create(&register).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	data := newCashRegister(register)
	c.JSON(http.StatusCreated, CashRegisterResponse{Data: &data})
}

// @Summary		List cash registers
// @Description	Returns a list of cash registers
// @Tags			CashRegisters
// @Produce		json
// @Success		200	{object}	CashRegisterListResponse
// @Failure		500	{object}	CashRegisterListResponse
// @Router			/v1/cash-registers [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			closed		query	bool	false	"Only closed (true) or only open (false) registers"
// @Param			offset		query	uint	false	"The offset of the first register returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of registers to return. Defaults to 50."
func GetCashRegisters(c *gin.Context) {
	var filter CashRegisterQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var registers []models.CashRegister

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	if slices.Contains(setFields, "Closed") {
		if filter.Closed {
			q = q.Where("closed_at IS NOT NULL")
		} else {
			q = q.Where("closed_at IS NULL")
		}
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&registers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]CashRegister, 0)
	for _, register := range registers {
		apiResources = append(apiResources, newCashRegister(register))
	}

	c.JSON(http.StatusOK, CashRegisterListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get cash register
// @Description	Returns a specific cash register
// @Tags			CashRegisters
// @Produce		json
// @Success		200	{object}	CashRegisterResponse
// @Failure		400	{object}	CashRegisterResponse
// @Failure		404	{object}	CashRegisterResponse
// @Failure		500	{object}	CashRegisterResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id} [get]
func GetCashRegister(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	var register models.CashRegister
	err = models.DB.First(&register, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	data := newCashRegister(register)
	c.JSON(http.StatusOK, CashRegisterResponse{Data: &data})
}

// @Summary		Update cash register
// @Description	Update an existing cash register. Only values to be updated need to be specified.
// @Tags			CashRegisters
// @Accept			json
// @Produce		json
// @Success		200			{object}	CashRegisterResponse
// @Failure		400			{object}	CashRegisterResponse
// @Failure		404			{object}	CashRegisterResponse
// @Failure		500			{object}	CashRegisterResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			register	body		CashRegisterEditable	true	"CashRegister"
// @Router			/v1/cash-registers/{id} [patch]
func UpdateCashRegister(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	var register models.CashRegister
	err = models.DB.First(&register, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CashRegisterEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	var data CashRegisterEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&register).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCashRegister(register)
	c.JSON(http.StatusOK, CashRegisterResponse{Data: &apiResource})
}

// @Summary		Delete cash register
// @Description	Deletes a cash register
// @Tags			CashRegisters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id} [delete]
func DeleteCashRegister(c *gin.Context) {
	deleteResource[models.CashRegister](c)
}

// @Summary		Close cash register
// @Description	Closes a cash register. Closing is irreversible, closed registers reject new entries.
// @Tags			CashRegisters
// @Produce		json
// @Success		200	{object}	CashRegisterResponse
// @Failure		400	{object}	CashRegisterResponse
// @Failure		404	{object}	CashRegisterResponse
// @Failure		409	{object}	CashRegisterResponse
// @Failure		500	{object}	CashRegisterResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id}/close [post]
func CloseCashRegister(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	var register models.CashRegister
	err = models.DB.First(&register, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	err = register.Close(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashRegisterResponse{
			Error: &e,
		})
		return
	}

	data := newCashRegister(register)
	c.JSON(http.StatusOK, CashRegisterResponse{Data: &data})
}
