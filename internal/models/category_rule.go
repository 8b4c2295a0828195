package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to new transactions whose description
// matches the pattern.
//
// Patterns are globs with "*" as the wildcard and match case-insensitively.
type CategoryRule struct {
	DefaultModel
	UserID     uuid.UUID `json:"user_id" gorm:"index" example:"0c2f5e3d-2a1b-4c8e-9f0a-3b4c5d6e7f80"`
	User       User      `json:"-"`
	Priority   uint      `json:"priority" example:"3"`
	Pattern    string    `json:"pattern" example:"*supermarket*"`
	CategoryID uuid.UUID `json:"category_id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Category   Category  `json:"-"`
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Pattern = strings.TrimSpace(r.Pattern)
	if r.Pattern == "" {
		return ErrCategoryRulePattern
	}

	return tx.Session(&gorm.Session{NewDB: true}).Scopes(Owned(r.UserID)).First(&Category{}, "id = ?", r.CategoryID).Error
}

// Matches reports whether the description matches the rule's pattern.
func (r CategoryRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Pattern), strings.ToLower(strings.TrimSpace(description)))
}

// MatchCategory returns the category of the first rule of the user that matches
// the description. Rules are checked by ascending priority, then by pattern.
// Rules pointing to deleted categories are skipped.
func MatchCategory(db *gorm.DB, userID uuid.UUID, description string) (uuid.UUID, bool, error) {
	var rules []CategoryRule
	err := db.
		Joins("JOIN categories ON categories.id = category_rules.category_id AND categories.deleted_at IS NULL").
		Where("category_rules.user_id = ?", userID).
		Order("category_rules.priority ASC, category_rules.pattern ASC").
		Find(&rules).Error
	if err != nil {
		return uuid.Nil, false, err
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			return rule.CategoryID, true, nil
		}
	}

	return uuid.Nil, false, nil
}
