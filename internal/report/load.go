package report

import (
	"time"

	"github.com/fguardian/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Load reads the transactions and categories of a user from the database
// and computes the report for the month.
func Load(db *gorm.DB, userID uuid.UUID, year int, month time.Month) (Monthly, error) {
	start, end := MonthRange(year, month)

	var transactions []models.Transaction
	err := db.
		Scopes(models.Owned(userID), models.InMonth(start, end)).
		Find(&transactions).Error
	if err != nil {
		return Monthly{}, err
	}

	categories, err := models.CategoryLookup(db, userID)
	if err != nil {
		return Monthly{}, err
	}

	return ComputeMonthly(transactions, categories, year, month), nil
}
