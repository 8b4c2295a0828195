package v1

import (
	"fmt"

	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryEditable struct {
	Name  string `json:"name" example:"Alimentação"` // Name of the category, unique per user
	Color string `json:"color" example:"#EF4444"`    // Display color. Defaults to #3B82F6
	Icon  string `json:"icon" example:"🍽️"`          // Display icon. Defaults to 💰
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Color:  editable.Color,
		Icon:   editable.Icon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/categories/3b1723af-2a81-4b8e-a6b3-4c3e1a2e1d9e"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/transactions?category=3b1723af-2a81-4b8e-a6b3-4c3e1a2e1d9e"` // Transactions of this category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	IsDefault bool          `json:"is_default" example:"true"` // Default categories are created for new users and cannot be deleted
	Links     CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Color: model.Color,
			Icon:  model.Icon,
		},
		IsDefault: model.IsDefault,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                     // Data for the category
	Error *string   `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}
