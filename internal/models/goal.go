package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

// Goal is a savings target of a user.
type Goal struct {
	DefaultModel
	UserID        uuid.UUID       `json:"user_id" gorm:"index" example:"0c2f5e3d-2a1b-4c8e-9f0a-3b4c5d6e7f80"`
	User          User            `json:"-"`
	Name          string          `json:"name" example:"Emergency fund"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:DECIMAL(20,8)" example:"5000" swaggertype:"number"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:DECIMAL(20,8)" example:"1250.75" swaggertype:"number"`
	Deadline      *time.Time      `json:"deadline" example:"2025-12-31T00:00:00Z"`
	Status        GoalStatus      `json:"status" example:"in_progress"`
}

func (g *Goal) AfterFind(tx *gorm.DB) error {
	_ = g.DefaultModel.AfterFind(tx)

	if g.Deadline != nil {
		d := g.Deadline.In(time.UTC)
		g.Deadline = &d
	}

	return nil
}

// BeforeSave validates the goal and recomputes its status.
func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNegative
	}

	if g.Deadline != nil {
		d := g.Deadline.In(time.UTC)
		g.Deadline = &d
	}

	g.Status = g.status()
	return nil
}

func (g Goal) status() GoalStatus {
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		return GoalStatusCompleted
	}
	return GoalStatusInProgress
}

// AddAmount increments the saved amount of the goal and updates its status.
func (g *Goal) AddAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Status = g.status()
	return nil
}
