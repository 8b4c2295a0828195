package v1

import (
	"net/http"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed. The callback is the only route that
// does not require a session.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup, callbackMiddleware ...gin.HandlerFunc) {
	r.OPTIONS("/callback", OptionsAuthCallback)
	r.POST("/callback", append(callbackMiddleware, co.AuthCallback)...)

	r.OPTIONS("/me", OptionsAuthMe)
	r.GET("/me", auth.Required(), GetAuthMe)

	r.OPTIONS("/logout", OptionsAuthLogout)
	r.POST("/logout", auth.Required(), Logout)
}

type User struct {
	models.User
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                                  // The authenticated user
	Error *string `json:"error" example:"you are not authenticated or your session has expired"` // The error, if any occurred
}

type AuthCallbackQuery struct {
	SessionID string `form:"session_id"` // Session ID of the completed login at the authentication provider
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/auth/callback [options]
func OptionsAuthCallback(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Complete login
// @Description	Exchanges the session ID of a completed login at the authentication provider for a session.
// @Description	New users are created with the default categories. The session token is set as cookie.
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	UserResponse
// @Failure		400			{object}	UserResponse
// @Failure		401			{object}	UserResponse
// @Failure		429			{object}	httputil.HTTPError
// @Failure		500			{object}	UserResponse
// @Failure		502			{object}	UserResponse
// @Param			session_id	query		string	true	"Session ID from the authentication provider"
// @Router			/auth/callback [post]
func (co Controller) AuthCallback(c *gin.Context) {
	var query AuthCallbackQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s})
		return
	}

	user, session, err := auth.Callback(c.Request.Context(), models.DB, co.Provider, query.SessionID, co.SessionTTL)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	auth.SetCookie(c, session.Token, co.SessionTTL)
	c.JSON(http.StatusOK, UserResponse{Data: &User{user}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/auth/me [options]
func OptionsAuthMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Current user
// @Description	Returns the user of the current session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/auth/me [get]
func GetAuthMe(c *gin.Context) {
	c.JSON(http.StatusOK, UserResponse{Data: &User{auth.CurrentUser(c)}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/auth/logout [options]
func OptionsAuthLogout(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Logout
// @Description	Ends the current session and clears the session cookie
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/auth/logout [post]
func Logout(c *gin.Context) {
	err := auth.Logout(models.DB, auth.Token(c))
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: err.Error()})
		return
	}

	auth.ClearCookie(c)
	c.Status(http.StatusNoContent)
}
