package v1

import (
	"net/http"
	"strings"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/currency"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", OptionsUser)
	r.GET("/me", GetUser)
	r.PATCH("/me", UpdateUser)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/users/me [get]
func GetUser(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Updates the profile of the authenticated user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/me [patch]
func UpdateUser(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var update UserEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("Currency")) {
		update.Currency = strings.ToUpper(strings.TrimSpace(update.Currency))
		if !currency.Valid(update.Currency) {
			e := errCurrencyInvalid.Error()
			c.JSON(http.StatusBadRequest, UserResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
