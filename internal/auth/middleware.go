package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// CookieName is the name of the cookie holding the session token.
	CookieName = "session_token"

	contextUser = "fg-user"
)

// Token returns the session token of the request. The cookie takes
// precedence over a bearer token in the Authorization header.
func Token(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return ""
}

// Required aborts requests without a valid session with 401 Unauthorized.
// For all other requests, the user is available with CurrentUser.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := Authenticate(models.DB, Token(c), time.Now())
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, ErrUnauthorized) {
				log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
				status = http.StatusInternalServerError
			}

			c.AbortWithStatusJSON(status, httputil.HTTPError{Error: err.Error()})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user of the request.
//
// It must only be called in handlers behind Required.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

// SetCurrentUser sets the authenticated user of the request.
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(contextUser, user)
}

// SetCookie sets the session cookie for the token.
func SetCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", true, true)
}

// ClearCookie removes the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, "", -1, "/", "", true, true)
}
