// Package healthz implements the unauthenticated liveness probe.
package healthz

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the fixed shape of the liveness payload.
type Response struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T19:28:44Z"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// @Summary		Liveness probe
// @Description	Returns a fixed status payload. Reachable without authentication.
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:    "ok",
		Timestamp: time.Now().In(time.UTC),
	})
}
