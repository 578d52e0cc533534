// Package receipt turns photos of receipts into draft expense transactions.
package receipt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/finora/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxSize is the largest image accepted, in bytes.
const MaxSize = 5 << 20

var (
	ErrUnavailable     = errors.New("receipt scanning is not configured on this server")
	ErrTooLarge        = errors.New("the image must not be larger than 5MB")
	ErrUnsupportedType = errors.New("the image must be a JPEG, PNG or WebP file")
	ErrEmpty           = errors.New("the image is empty")
	ErrNotRecognized   = errors.New("the image could not be recognized as a receipt")
	ErrScanFailed      = errors.New("receipt scan failed")
)

var mimeTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Draft is what could be read from a receipt.
type Draft struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Scanner reads receipts. categories are the names the scanner may choose from.
type Scanner interface {
	Scan(ctx context.Context, image []byte, mimeType string, categories []string) (Draft, error)
}

// Check validates the size and content of an image and returns its MIME type.
func Check(image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmpty
	}

	if len(image) > MaxSize {
		return "", ErrTooLarge
	}

	mimeType := http.DetectContentType(image)
	for _, t := range mimeTypes {
		if mimeType == t {
			return mimeType, nil
		}
	}

	return "", ErrUnsupportedType
}

// ResolveCategory finds the expense category for a draft of the user.
//
// The category named by the scanner is used if it exists. Otherwise the
// match rules of the user are applied to the description. If nothing
// matches, the "Other Expenses" category is used.
func ResolveCategory(db *gorm.DB, userID uuid.UUID, d Draft) (models.Category, error) {
	var category models.Category

	if name := strings.TrimSpace(d.Category); name != "" {
		err := db.Where("LOWER(name) = LOWER(?) AND type = ?", name, models.TypeExpense).First(&category).Error
		if err == nil {
			return category, nil
		} else if !errors.Is(err, models.ErrResourceNotFound) {
			return models.Category{}, err
		}
	}

	id, ok, err := models.MatchCategory(db, userID, d.Description)
	if err != nil {
		return models.Category{}, err
	}

	if ok {
		err = db.First(&category, "id = ?", id).Error
		if err != nil {
			return models.Category{}, err
		}

		if category.Type == models.TypeExpense {
			return category, nil
		}
	}

	var other models.Category
	err = db.Where(&models.Category{Name: models.OtherExpenses}).First(&other).Error
	return other, err
}
