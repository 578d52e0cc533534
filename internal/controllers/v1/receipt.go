package v1

import (
	"io"
	"net/http"
	"time"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/receipt"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterReceiptRoutes registers the routes for scanning receipts with
// the RouterGroup that is passed. s may be nil, scanning then responds
// with 503 Service Unavailable.
func RegisterReceiptRoutes(r *gin.RouterGroup, s receipt.Scanner) {
	r.OPTIONS("", OptionsReceipts)
	r.POST("", ScanReceipt(s))
}

// ReceiptDraft is a transaction prefilled from a receipt. It is not stored.
type ReceiptDraft struct {
	TransactionEditable
	CategoryName string `json:"categoryName" example:"Food & Drinks"` // Name of the category
}

type ReceiptResponse struct {
	Error *string       `json:"error" example:"receipt scanning is not configured"` // The error, if any occurred
	Data  *ReceiptDraft `json:"data"`                                               // The draft transaction
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Router			/v1/receipts [options]
func OptionsReceipts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Scan receipt
// @Description	Reads date, total, category and description from the image of a receipt. The result can be submitted to the transactions endpoint.
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ReceiptResponse
// @Failure		400		{object}	ReceiptResponse
// @Failure		500		{object}	ReceiptResponse
// @Failure		502		{object}	ReceiptResponse
// @Failure		503		{object}	ReceiptResponse
// @Param			file	formData	file	true	"JPEG, PNG or WebP image, at most 5 MB"
// @Router			/v1/receipts [post]
func ScanReceipt(s receipt.Scanner) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s == nil {
			e := receipt.ErrUnavailable.Error()
			c.JSON(http.StatusServiceUnavailable, ReceiptResponse{
				Error: &e,
			})
			return
		}

		formFile, err := c.FormFile("file")
		if err != nil {
			e := errNoFilePost.Error()
			c.JSON(http.StatusBadRequest, ReceiptResponse{
				Error: &e,
			})
			return
		}

		f, err := formFile.Open()
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("opening uploaded receipt failed")
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, ReceiptResponse{
				Error: &e,
			})
			return
		}
		defer f.Close()

		// One byte more than allowed so that Check can detect oversized images
		image, err := io.ReadAll(io.LimitReader(f, receipt.MaxSize+1))
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, ReceiptResponse{
				Error: &e,
			})
			return
		}

		mimeType, err := receipt.Check(image)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ReceiptResponse{
				Error: &e,
			})
			return
		}

		var categories []models.Category
		err = models.DB.Where(&models.Category{Type: models.TypeExpense}).Order("name ASC").Find(&categories).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ReceiptResponse{
				Error: &e,
			})
			return
		}

		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}

		draft, err := s.Scan(c.Request.Context(), image, mimeType, names)
		if err != nil {
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("receipt scan failed")
			e := err.Error()
			c.JSON(status(err), ReceiptResponse{
				Error: &e,
			})
			return
		}

		category, err := receipt.ResolveCategory(models.DB, auth.UserID(c), draft)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ReceiptResponse{
				Error: &e,
			})
			return
		}

		date := draft.Date
		if date.IsZero() {
			date = time.Now().In(time.UTC)
		}

		c.JSON(http.StatusOK, ReceiptResponse{
			Data: &ReceiptDraft{
				TransactionEditable: TransactionEditable{
					CategoryID:  category.ID,
					Type:        models.TypeExpense,
					Amount:      draft.Amount,
					Date:        date,
					Description: draft.Description,
				},
				CategoryName: category.Name,
			},
		})
	}
}
