package v1

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/currency"
	"github.com/finora/backend/internal/geo"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// RegisterAuthRoutes registers the routes for signing up and signing in
// with the RouterGroup that is passed. g may be nil, then sign ups without
// a country code use the default currency.
func RegisterAuthRoutes(r *gin.RouterGroup, tokens auth.Issuer, g geo.Geocoder) {
	r.OPTIONS("/sign-up", OptionsSignUp)
	r.POST("/sign-up", SignUp(g))
	r.OPTIONS("/sign-in", OptionsSignIn)
	r.POST("/sign-in", SignIn(tokens))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/sign-up [options]
func OptionsSignUp(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/sign-in [options]
func OptionsSignIn(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Sign up
// @Description	Creates a new user. The currency is derived from the country code or, if none is given, from the coordinates.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		SignUpRequest	true	"User"
// @Router			/v1/auth/sign-up [post]
func SignUp(g geo.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request SignUpRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}

		email, err := normalizeEmail(request.Email)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}

		hash, err := auth.HashPassword(request.Password)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}

		country, err := countryOf(c, g, request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}

		user := models.User{
			Email:        email,
			PasswordHash: hash,
			Name:         request.Name,
			CountryCode:  country,
			Currency:     currency.ForCountry(country),
		}

		err = models.DB.Create(&user).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}

		data := newUser(c, user)
		c.JSON(http.StatusCreated, UserResponse{Data: &data})
	}
}

// @Summary		Sign in
// @Description	Returns a token for the user. Send it as Bearer token in the Authorization header.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		SignInRequest	true	"Credentials"
// @Router			/v1/auth/sign-in [post]
func SignIn(tokens auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request SignInRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SessionResponse{
				Error: &e,
			})
			return
		}

		var user models.User
		err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(request.Email))).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			err = auth.ErrInvalidCredentials
		}
		if err == nil {
			err = auth.ComparePassword(user.PasswordHash, request.Password)
		}
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SessionResponse{
				Error: &e,
			})
			return
		}

		token, expiresAt, err := tokens.Issue(user.ID)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("signing token failed")
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, SessionResponse{
				Error: &e,
			})
			return
		}

		c.JSON(http.StatusOK, SessionResponse{
			Data: &Session{
				Token:     token,
				ExpiresAt: expiresAt,
				User:      newUser(c, user),
			},
		})
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return "", errEmailInvalid
	}

	return email, nil
}

// countryOf returns the country code of the request. Without a code, the
// coordinates are reverse geocoded. Geocoding failures are logged and
// result in an empty code.
func countryOf(c *gin.Context, g geo.Geocoder, request SignUpRequest) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(request.CountryCode))
	if code != "" {
		if len(code) != 2 {
			return "", errCountryInvalid
		}

		if _, err := language.ParseRegion(code); err != nil {
			return "", errCountryInvalid
		}

		return code, nil
	}

	if request.Latitude == nil || request.Longitude == nil || g == nil {
		return "", nil
	}

	code, err := g.Country(c.Request.Context(), *request.Latitude, *request.Longitude)
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("reverse geocoding failed")
		return "", nil
	}

	return code, nil
}
