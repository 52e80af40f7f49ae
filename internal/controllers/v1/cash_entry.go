package v1

import (
	"net/http"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashRegisters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-registers/{id}/entries [options]
func OptionsCashEntries(c *gin.Context) {
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

	httputil.OptionsGetPost(c)
}

// @Summary		List cash entries
// @Description	Returns the entries of a cash register, ordered by transaction date
// @Tags			CashRegisters
// @Produce		json
// @Success		200	{object}	CashEntryListResponse
// @Failure		400	{object}	CashEntryListResponse
// @Failure		404	{object}	CashEntryListResponse
// @Failure		500	{object}	CashEntryListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			type		query	string	false	"Filter by entry type"
// @Param			paymentType	query	string	false	"Filter by payment type"
// @Param			month		query	string	false	"Only entries with a transaction date in this month, in YYYY-MM format"
// @Router			/v1/cash-registers/{id}/entries [get]
func GetCashEntries(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryListResponse{
			Error: &e,
		})
		return
	}

	var filter CashEntryQueryFilter
	_ = c.Bind(&filter)

	var month types.Month
	if filter.Month != "" {
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, CashEntryListResponse{
				Error: &e,
			})
			return
		}
	}

	var register models.CashRegister
	err = models.DB.First(&register, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryListResponse{
			Error: &e,
		})
		return
	}

	entries, err := register.Entries(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]CashEntry, 0)
	for _, entry := range entries {
		if filter.Type != "" && string(entry.Type) != filter.Type {
			continue
		}

		if filter.PaymentType != "" && string(entry.PaymentType) != filter.PaymentType {
			continue
		}

		if !month.IsZero() && !month.Contains(entry.TransactionDate) {
			continue
		}

		apiResources = append(apiResources, newCashEntry(entry))
	}

	c.JSON(http.StatusOK, CashEntryListResponse{Data: apiResources})
}

// @Summary		Create cash entry
// @Description	Creates a new entry in a cash register. Closed registers reject new entries.
// @Tags			CashRegisters
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashEntryResponse
// @Failure		400		{object}	CashEntryResponse
// @Failure		404		{object}	CashEntryResponse
// @Failure		500		{object}	CashEntryResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		CashEntryEditable	true	"Entry"
// @Router			/v1/cash-registers/{id}/entries [post]
func CreateCashEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryResponse{
			Error: &e,
		})
		return
	}

	var editable CashEntryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryResponse{
			Error: &e,
		})
		return
	}

	entry := editable.model(uri.ID.UUID)

	err = models.DB.Create(&entry).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashEntryResponse{
			Error: &e,
		})
		return
	}

	data := newCashEntry(entry)
	c.JSON(http.StatusCreated, CashEntryResponse{Data: &data})
}
