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
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/entries [options]
func OptionsBudgetEntries(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		List budget entries
// @Description	Returns the entries of a budget, ordered by creation date
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetEntryListResponse
// @Failure		400	{object}	BudgetEntryListResponse
// @Failure		404	{object}	BudgetEntryListResponse
// @Failure		500	{object}	BudgetEntryListResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			type	query	string	false	"Filter by entry type"
// @Param			month	query	string	false	"Only entries with a value in this month, in YYYY-MM format"
// @Router			/v1/budgets/{id}/entries [get]
func GetBudgetEntries(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryListResponse{
			Error: &e,
		})
		return
	}

	var filter BudgetEntryQueryFilter
	_ = c.Bind(&filter)

	var month types.Month
	if filter.Month != "" {
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, BudgetEntryListResponse{
				Error: &e,
			})
			return
		}
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryListResponse{
			Error: &e,
		})
		return
	}

	entries, err := budget.Entries(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]BudgetEntry, 0)
	for _, entry := range entries {
		if filter.Type != "" && string(entry.Type) != filter.Type {
			continue
		}

		if !month.IsZero() && !entryHasMonth(entry, month) {
			continue
		}

		apiResources = append(apiResources, newBudgetEntry(entry))
	}

	c.JSON(http.StatusOK, BudgetEntryListResponse{Data: apiResources})
}

func entryHasMonth(entry models.BudgetEntry, month types.Month) bool {
	for _, value := range entry.Values {
		if value.Month.Equal(month) {
			return true
		}
	}

	return false
}

// @Summary		Create budget entry
// @Description	Creates a new entry in a budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetEntryResponse
// @Failure		400		{object}	BudgetEntryResponse
// @Failure		404		{object}	BudgetEntryResponse
// @Failure		500		{object}	BudgetEntryResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		BudgetEntryEditable	true	"Entry"
// @Router			/v1/budgets/{id}/entries [post]
func CreateBudgetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetEntryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{
			Error: &e,
		})
		return
	}

	entry := editable.model(uri.ID.UUID)

	err = models.DB.Create(&entry).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetEntry(entry)
	c.JSON(http.StatusCreated, BudgetEntryResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/cash-flow [options]
func OptionsBudgetCashFlow(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Budget cash flow
// @Description	Returns the monthly aggregation of all entry values of the budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	CashFlowResponse
// @Failure		400	{object}	CashFlowResponse
// @Failure		404	{object}	CashFlowResponse
// @Failure		500	{object}	CashFlowResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/cash-flow [get]
func GetBudgetCashFlow(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashFlowResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashFlowResponse{
			Error: &e,
		})
		return
	}

	entries, err := budget.Entries(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashFlowResponse{
			Error: &e,
		})
		return
	}

	rows := make([]CashFlowRow, 0)
	for _, month := range budget.Months() {
		row := CashFlowRow{Month: month}

		for _, entry := range entries {
			for _, value := range entry.Values {
				if !value.Month.Equal(month) {
					continue
				}

				if entry.Type == models.IncomeEntry {
					row.TotalIncomes = row.TotalIncomes.Add(value.Amount)
				} else {
					row.TotalExpenses = row.TotalExpenses.Add(value.Amount)
				}
			}
		}

		row.Balance = row.TotalIncomes.Sub(row.TotalExpenses)
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, CashFlowResponse{Data: rows})
}
