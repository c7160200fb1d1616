package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/models"
)

// UserCreate contains the data needed to register a user
type UserCreate struct {
	Username string `json:"username" example:"alex"`                         // Name used to sign in
	Email    string `json:"email" example:"alex@example.com"`                // Email address of the user
	Password string `json:"password" example:"correct horse battery staple"` // Password used to sign in
}

// UserEditable contains the profile settings the user can change
type UserEditable struct {
	Email           string `json:"email" example:"alex@example.com"`                // Email address of the user
	Password        string `json:"password" example:"correct horse battery staple"` // New password
	CurrentPassword string `json:"currentPassword" example:"hunter2"`               // The current password, needed to change the password
}

type UserLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v4/users/me"`           // The profile of the signed in user
	ChangeEmail    string `json:"changeEmail" example:"https://example.com/api/v4/users/me"`    // PATCH the email here
	ChangePassword string `json:"changePassword" example:"https://example.com/api/v4/users/me"` // PATCH the password here
	DeleteAccount  string `json:"deleteAccount" example:"https://example.com/api/v4/users/me"`  // DELETE here to delete the account
}

// User is the API v4 representation of a User.
type User struct {
	models.DefaultModel
	Username string    `json:"username" example:"alex"`          // Name used to sign in
	Email    string    `json:"email" example:"alex@example.com"` // Email address of the user
	Links    UserLinks `json:"links"`                            // Links for the user
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))
	me := fmt.Sprintf("%s/v4/users/me", url)

	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
		Links: UserLinks{
			Self:           me,
			ChangeEmail:    me,
			ChangePassword: me,
			DeleteAccount:  me,
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"this username is already taken"` // The error, if any occurred
	Data  *User   `json:"data"`                                           // Data for the user
}
