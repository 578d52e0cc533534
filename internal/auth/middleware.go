package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/finora/backend/internal/httperror"
	"github.com/finora/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const contextUserID = "user_id"

// Middleware rejects requests that do not carry a valid Bearer token for an
// existing user. The user ID is stored in the context, see UserID.
func Middleware(issuer Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrMissingToken))
			return
		}

		id, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		// Tokens outlive deleted users
		err = models.DB.First(&models.User{}, "id = ?", id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrInvalidToken))
			return
		} else if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("user lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Set(contextUserID, id)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(contextUserID)
	if !ok {
		return uuid.Nil
	}
	return id.(uuid.UUID)
}
