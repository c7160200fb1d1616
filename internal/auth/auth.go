// Package auth resolves the credentials of a request into the user
// making it.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
)

var (
	ErrUnauthenticated = errors.New("you need to sign in with valid credentials to access this resource")
	ErrPasswordEmpty   = errors.New("the password must not be empty")
)

type contextKey string

const currentUserKey contextKey = "twigs-current-user"

// Authenticate resolves HTTP basic authentication credentials into the
// current user. Requests without valid credentials are aborted with
// HTTP 401.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthenticated(c)
			return
		}

		var user models.User
		err := models.DB.WithContext(c).Where("username = ?", username).First(&user).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			unauthenticated(c)
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.HTTPError{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		if !CheckPassword(user.PasswordHash, password) {
			unauthenticated(c)
			return
		}

		c.Set(string(currentUserKey), user)
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="twigs"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{
		Error: ErrUnauthenticated.Error(),
	})
}

// CurrentUser returns the user that made the request.
//
// It returns ErrUnauthenticated when the request did not pass Authenticate.
func CurrentUser(c *gin.Context) (models.User, error) {
	value, ok := c.Get(string(currentUserKey))
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	user, ok := value.(models.User)
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}
