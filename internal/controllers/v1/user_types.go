package v1

import (
	"fmt"

	"github.com/finora/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type UserEditable struct {
	Name     string `json:"name" example:"Ada Lovelace"`                          // Display name
	Bio      string `json:"bio" example:"Saving for a trip to Japan"`             // Free text shown on the profile
	Currency string `json:"currency" example:"IDR"`                               // ISO 4217 code of the currency amounts are formatted in
	Avatar   string `json:"avatar" example:"https://example.com/avatars/ada.png"` // URL of the profile picture
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Bio:      editable.Bio,
		Currency: editable.Currency,
		Avatar:   editable.Avatar,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The user itself
}

// User is the API representation of a User. The password hash is never exposed.
type User struct {
	models.DefaultModel
	UserEditable
	Email       string    `json:"email" example:"ada@example.com"` // Email address used to sign in
	CountryCode string    `json:"countryCode" example:"ID"`        // ISO 3166-1 alpha-2 code of the country, if known
	Links       UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Bio:      model.Bio,
			Currency: model.Currency,
			Avatar:   model.Avatar,
		},
		Email:       model.Email,
		CountryCode: model.CountryCode,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/me", url),
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the currency is not supported"` // The error, if any occurred
	Data  *User   `json:"data"`                                          // The user data
}
