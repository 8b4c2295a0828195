package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "💰"
)

// Category is a label grouping transactions of a user.
type Category struct {
	DefaultModel
	UserID    uuid.UUID `json:"user_id" gorm:"uniqueIndex:category_user_name,where:deleted_at IS NULL" example:"0c2f5e3d-2a1b-4c8e-9f0a-3b4c5d6e7f80"`
	User      User      `json:"-"`
	Name      string    `json:"name" gorm:"uniqueIndex:category_user_name,where:deleted_at IS NULL" example:"Alimentação"`
	Color     string    `json:"color" example:"#EF4444"`
	Icon      string    `json:"icon" example:"🍽️"`
	IsDefault bool      `json:"is_default" example:"true"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}

	return nil
}

// BeforeDelete prevents the deletion of default categories.
func (c *Category) BeforeDelete(_ *gorm.DB) error {
	if c.IsDefault {
		return ErrCategoryDefault
	}

	return nil
}

// DefaultCategories returns the categories every new user starts with.
func DefaultCategories(userID uuid.UUID) []Category {
	defaults := []struct {
		name, color, icon string
	}{
		{"Alimentação", "#EF4444", "🍽️"},
		{"Transporte", "#3B82F6", "🚗"},
		{"Moradia", "#8B5CF6", "🏠"},
		{"Saúde", "#10B981", "⚕️"},
		{"Educação", "#F59E0B", "📚"},
		{"Entretenimento", "#EC4899", "🎬"},
		{"Salário", "#22C55E", "💰"},
		{"Investimentos", "#6366F1", "📈"},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			UserID:    userID,
			Name:      d.name,
			Color:     d.color,
			Icon:      d.icon,
			IsDefault: true,
		})
	}

	return categories
}

// CategoryLookup returns all categories of a user keyed by their ID.
func CategoryLookup(db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]Category, error) {
	var categories []Category
	err := db.Scopes(Owned(userID)).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	lookup := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}

	return lookup, nil
}
