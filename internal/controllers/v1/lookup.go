package v1

import (
	"errors"
	"net/http"

	"github.com/fluxo-app/backend/internal/brasilapi"
	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// LookupClient is the client used for address lookups. Tests replace it
// with a client pointing at a local server.
var LookupClient = brasilapi.New()

// RegisterLookupRoutes registers the routes for address lookups with
// the RouterGroup that is passed.
func RegisterLookupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/states", httputil.OptionsGet)
	r.GET("/states", GetStates)

	r.OPTIONS("/states/:uf/municipalities", httputil.OptionsGet)
	r.GET("/states/:uf/municipalities", GetMunicipalities)

	r.OPTIONS("/zip/:code", httputil.OptionsGet)
	r.GET("/zip/:code", GetZipCode)
}

type StateListResponse struct {
	Data  []brasilapi.State `json:"data"`  // List of states
	Error *string           `json:"error"` // The error, if any occurred
}

type MunicipalityListResponse struct {
	Data  []brasilapi.Municipality `json:"data"`  // List of municipalities
	Error *string                  `json:"error"` // The error, if any occurred
}

type AddressResponse struct {
	Data  *brasilapi.Address `json:"data"`  // The address for the zip code
	Error *string            `json:"error"` // The error, if any occurred
}

func lookupStatus(err error) int {
	if errors.Is(err, brasilapi.ErrZipCodeNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadGateway
}

// @Summary		List states
// @Description	Returns all Brazilian states
// @Tags			Lookup
// @Produce		json
// @Success		200	{object}	StateListResponse
// @Failure		502	{object}	StateListResponse
// @Router			/v1/lookup/states [get]
func GetStates(c *gin.Context) {
	states, err := LookupClient.States(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(lookupStatus(err), StateListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, StateListResponse{Data: states})
}

// @Summary		List municipalities
// @Description	Returns the municipalities of a state
// @Tags			Lookup
// @Produce		json
// @Success		200	{object}	MunicipalityListResponse
// @Failure		502	{object}	MunicipalityListResponse
// @Param			uf	path	string	true	"Two letter state code"
// @Router			/v1/lookup/states/{uf}/municipalities [get]
func GetMunicipalities(c *gin.Context) {
	municipalities, err := LookupClient.Municipalities(c.Request.Context(), c.Param("uf"))
	if err != nil {
		e := err.Error()
		c.JSON(lookupStatus(err), MunicipalityListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MunicipalityListResponse{Data: municipalities})
}

// @Summary		Look up zip code
// @Description	Returns the address for a zip code
// @Tags			Lookup
// @Produce		json
// @Success		200	{object}	AddressResponse
// @Failure		404	{object}	AddressResponse
// @Failure		502	{object}	AddressResponse
// @Param			code	path	string	true	"Zip code"
// @Router			/v1/lookup/zip/{code} [get]
func GetZipCode(c *gin.Context) {
	address, err := LookupClient.ZipCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		e := err.Error()
		c.JSON(lookupStatus(err), AddressResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AddressResponse{Data: &address})
}
