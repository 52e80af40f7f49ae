package v1

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBankAccountRoutes registers the routes for BankAccounts with
// the RouterGroup that is passed.
func RegisterBankAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankAccountList)
		r.GET("", GetBankAccounts)
		r.POST("", CreateBankAccount)
	}

	// BankAccount with ID
	{
		r.OPTIONS("/:id", OptionsBankAccountDetail)
		r.GET("/:id", GetBankAccount)
		r.PATCH("/:id", UpdateBankAccount)
		r.DELETE("/:id", DeleteBankAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankAccounts
// @Success		204
// @Router			/v1/bank-accounts [options]
func OptionsBankAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-accounts/{id} [options]
func OptionsBankAccountDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BankAccount{})
}

// @Summary		Create bank account
// @Description	Creates a new bank account
// @Tags			BankAccounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankAccountResponse
// @Failure		400		{object}	BankAccountResponse
// @Failure		500		{object}	BankAccountResponse
// @Param			account	body		BankAccountEditable	true	"BankAccount"
// @Router			/v1/bank-accounts [post]
func CreateBankAccount(c *gin.Context) {
	var editable BankAccountEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	account := editable.model()

	err = models.DB.Create(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	data := newBankAccount(account)
	c.JSON(http.StatusCreated, BankAccountResponse{Data: &data})
}

// @Summary		List bank accounts
// @Description	Returns a list of bank accounts
// @Tags			BankAccounts
// @Produce		json
// @Success		200	{object}	BankAccountListResponse
// @Failure		500	{object}	BankAccountListResponse
// @Router			/v1/bank-accounts [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			bank	query	string	false	"Filter by bank"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first account returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of accounts to return. Defaults to 50."
func GetBankAccounts(c *gin.Context) {
	var filter BankAccountQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var accounts []models.BankAccount

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]BankAccount, 0)
	for _, account := range accounts {
		apiResources = append(apiResources, newBankAccount(account))
	}

	c.JSON(http.StatusOK, BankAccountListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bank account
// @Description	Returns a specific bank account
// @Tags			BankAccounts
// @Produce		json
// @Success		200	{object}	BankAccountResponse
// @Failure		400	{object}	BankAccountResponse
// @Failure		404	{object}	BankAccountResponse
// @Failure		500	{object}	BankAccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-accounts/{id} [get]
func GetBankAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	var account models.BankAccount
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	data := newBankAccount(account)
	c.JSON(http.StatusOK, BankAccountResponse{Data: &data})
}

// @Summary		Update bank account
// @Description	Update an existing bank account. Only values to be updated need to be specified.
// @Tags			BankAccounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	BankAccountResponse
// @Failure		400		{object}	BankAccountResponse
// @Failure		404		{object}	BankAccountResponse
// @Failure		500		{object}	BankAccountResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		BankAccountEditable	true	"BankAccount"
// @Router			/v1/bank-accounts/{id} [patch]
func UpdateBankAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	var account models.BankAccount
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BankAccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	var data BankAccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankAccount(account)
	c.JSON(http.StatusOK, BankAccountResponse{Data: &apiResource})
}

// @Summary		Delete bank account
// @Description	Deletes a bank account
// @Tags			BankAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-accounts/{id} [delete]
func DeleteBankAccount(c *gin.Context) {
	deleteResource[models.BankAccount](c)
}
