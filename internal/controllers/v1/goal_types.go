package v1

import (
	"fmt"
	"time"

	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name          string          `json:"name" example:"Emergency fund"`                         // Name of the goal
	TargetAmount  decimal.Decimal `json:"target_amount" example:"5000" swaggertype:"number"`     // The amount to save, must be positive
	CurrentAmount decimal.Decimal `json:"current_amount" example:"1250.75" swaggertype:"number"` // The amount saved so far
	Deadline      *time.Time      `json:"deadline" example:"2025-12-31T00:00:00Z"`               // Optional deadline for the goal
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:        userID,
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
	}
}

type GoalLinks struct {
	Self      string `json:"self" example:"https://example.com/api/goals/1e777d24-3f5b-4c43-8000-04f65f895578"`                  // The goal itself
	AddAmount string `json:"add_amount" example:"https://example.com/api/goals/1e777d24-3f5b-4c43-8000-04f65f895578/add-amount"` // Endpoint to add money to the goal
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Status models.GoalStatus `json:"status" example:"in_progress" enums:"in_progress,completed"` // Completed once the current amount reaches the target amount
	Links  GoalLinks         `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/goals/%s", url, model.ID)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
		Status: model.Status,
		Links: GoalLinks{
			Self:      self,
			AddAmount: self + "/add-amount",
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of goals
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                 // Data for the goal
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
}

type GoalAddAmountQuery struct {
	Amount string `form:"amount" example:"100.50"` // The amount to add to the goal
}
