package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionAuthKey is the session key the auth middleware checks.
const sessionAuthKey = "authenticated"

type LoginRequest struct {
	Password string `json:"password" example:"hunter2"` // The shared agency password
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`  // Confirmation of the login, if it succeeded
	Error *string    `json:"error"` // The error, if any occurred
}

type LoginData struct {
	Authenticated bool `json:"authenticated" example:"true"`
}

// @Summary		Log in
// @Description	Checks the shared password and starts an authenticated session
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		401		{object}	LoginResponse
// @Param			login	body		LoginRequest	true	"Credentials"
// @Router			/v1/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{Error: &e})
		return
	}

	if request.Password != appConfig.App.Password {
		e := errPasswordIncorrect.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{Error: &e})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAuthKey, true)
	if err := session.Save(); err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &LoginData{Authenticated: true}})
}

// @Summary		Log out
// @Description	Ends the authenticated session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	LoginResponse
// @Router			/v1/logout [post]
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionAuthKey)
	if err := session.Save(); err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &LoginData{Authenticated: false}})
}

// Authenticated reports whether the session carries a successful login.
func Authenticated(c *gin.Context) bool {
	value := sessions.Default(c).Get(sessionAuthKey)
	authenticated, ok := value.(bool)
	return ok && authenticated
}
