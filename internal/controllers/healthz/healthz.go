// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/fluxo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Health
// @Description	Returns the health of the backend, determined by a database ping
// @Tags			General
// @Success		200
// @Failure		500
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
