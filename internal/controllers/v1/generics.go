package v1

import (
	"net/http"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Budget | models.CashRegister | models.BankAccount | models.Category | models.Tag | models.Party](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes the resource identified by the id URI parameter.
func deleteResource[R models.Budget | models.CashRegister | models.BankAccount | models.Category | models.Tag | models.Party](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var resource R
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
