package v1

import (
	"fmt"

	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryRuleEditable struct {
	Priority   uint      `json:"priority" example:"3"`                                       // Rules with a lower priority are applied first
	Pattern    string    `json:"pattern" example:"*supermarket*"`                            // Glob pattern matched case-insensitively against the transaction description
	CategoryID uuid.UUID `json:"category_id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // The category assigned to matching transactions
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryRuleEditable) model(userID uuid.UUID) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		Priority:   editable.Priority,
		Pattern:    editable.Pattern,
		CategoryID: editable.CategoryID,
	}
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/category-rules/95018a69-758b-46c6-8bab-db70d9bd43bc"` // The category rule itself
}

// CategoryRule is the API representation of a CategoryRule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority:   model.Priority,
			Pattern:    model.Pattern,
			CategoryID: model.CategoryID,
		},
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/category-rules/%s", url, model.ID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data  []CategoryRule `json:"data"`                                                          // List of category rules
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the category rule
	Error *string       `json:"error" example:"there is no category rule matching your query"` // The error, if any occurred
}
