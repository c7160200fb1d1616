package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/auth"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.POST("", CreateUser)
	}

	// Signed in user. OPTIONS is not authenticated to allow CORS preflight requests.
	{
		r.OPTIONS("/me", OptionsUserMe)
		r.GET("/me", auth.Authenticate(), GetUserMe)
		r.PATCH("/me", auth.Authenticate(), UpdateUserMe)
		r.DELETE("/me", auth.Authenticate(), DeleteUserMe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v4/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v4/users/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Register user
// @Description	Creates a new user
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserCreate	true	"User"
// @Router			/v4/users [post]
func CreateUser(c *gin.Context) {
	var data UserCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	r := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &r})
}

// @Summary		Get profile
// @Description	Returns the signed in user
// @Tags			Users
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v4/users/me [get]
func GetUserMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	r := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

// @Summary		Update profile
// @Description	Changes the email address or the password of the signed in user. Changing the password requires the current password.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v4/users/me [patch]
func UpdateUserMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	bodyFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var updateFields []any
	update := models.User{Username: user.Username}

	if slices.Contains(bodyFields, any("Email")) {
		updateFields = append(updateFields, "Email")
		update.Email = data.Email
	}

	if slices.Contains(bodyFields, any("Password")) {
		if data.CurrentPassword == "" {
			s := errUserPasswordMissing.Error()
			c.JSON(http.StatusBadRequest, UserResponse{
				Error: &s,
			})
			return
		}

		if !auth.CheckPassword(user.PasswordHash, data.CurrentPassword) {
			s := errUserPasswordWrong.Error()
			c.JSON(http.StatusBadRequest, UserResponse{
				Error: &s,
			})
			return
		}

		update.PasswordHash, err = auth.HashPassword(data.Password)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &s,
			})
			return
		}
		updateFields = append(updateFields, "PasswordHash")
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&user).Select("", updateFields...).Updates(update).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &s,
			})
			return
		}
	}

	r := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

// @Summary		Delete account
// @Description	Permanently deletes the signed in user
// @Tags			Users
// @Security		BasicAuth
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v4/users/me [delete]
func DeleteUserMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The username must be available again after the account is deleted
	err = models.DB.Unscoped().Delete(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
