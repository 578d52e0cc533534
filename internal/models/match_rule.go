package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to transactions whose description matches
// the glob in Match. Rules with a lower priority are evaluated first.
type MatchRule struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	User       User      `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"`
	Priority   uint
	Match      string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	return nil
}

// Matches reports whether the description matches the rule, ignoring case.
func (r MatchRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(strings.TrimSpace(description)))
}

// MatchCategory returns the category of the first rule of the user that
// matches the description. ok is false if no rule matches.
func MatchCategory(db *gorm.DB, userID uuid.UUID, description string) (categoryID uuid.UUID, ok bool, err error) {
	var rules []MatchRule
	err = db.Where(&MatchRule{UserID: userID}).Order("priority asc, created_at asc").Find(&rules).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return uuid.Nil, false, err
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			return rule.CategoryID, true, nil
		}
	}

	return uuid.Nil, false, nil
}
