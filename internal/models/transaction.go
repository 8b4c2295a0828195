package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"user_id" gorm:"index" example:"0c2f5e3d-2a1b-4c8e-9f0a-3b4c5d6e7f80"`
	User        User            `json:"-"`
	Type        TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.5" swaggertype:"number"`
	CategoryID  uuid.UUID       `json:"category_id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Category    Category        `json:"-"`
	Description string          `json:"description" example:"Groceries"`
	Date        time.Time       `json:"date" gorm:"index" example:"2025-01-15T12:00:00Z"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Description = strings.TrimSpace(t.Description)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// BeforeCreate assigns a category from the user's category rules when none
// is set and verifies that the category belongs to the user.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.CategoryID == uuid.Nil {
		categoryID, ok, err := MatchCategory(tx.Session(&gorm.Session{NewDB: true}), t.UserID, t.Description)
		if err != nil {
			return err
		}

		if !ok {
			return ErrCategoryRequired
		}

		t.CategoryID = categoryID
	}

	return t.checkIntegrity(tx)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if t.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	return t.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced category exists and is owned
// by the same user as the transaction.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{NewDB: true}).Scopes(Owned(t.UserID)).First(&Category{}, "id = ?", t.CategoryID).Error
}

// InMonth scopes a transaction query to the half-open interval [start, end).
func InMonth(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("datetime(transactions.date) >= datetime(?) AND datetime(transactions.date) < datetime(?)", start.In(time.UTC), end.In(time.UTC))
	}
}
