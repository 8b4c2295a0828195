// Package report aggregates transactions into monthly summaries.
package report

import (
	"sort"
	"time"

	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Placeholder values for expenses whose category cannot be resolved.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#9CA3AF"
)

var hundred = decimal.NewFromInt(100)

// Monthly is the summary of all transactions of a calendar month.
type Monthly struct {
	Year              int             `json:"year" example:"2025"`
	Month             int             `json:"month" example:"1"`
	TotalIncome       decimal.Decimal `json:"total_income" example:"100" swaggertype:"number"`
	TotalExpenses     decimal.Decimal `json:"total_expenses" example:"60" swaggertype:"number"`
	Balance           decimal.Decimal `json:"balance" example:"40" swaggertype:"number"` // TotalIncome - TotalExpenses, can be negative
	TransactionsCount int             `json:"transactions_count" example:"3"`
	TopCategories     []CategoryTotal `json:"top_categories"` // Expenses by category, largest first
}

// CategoryTotal is the sum of expenses of a single category.
type CategoryTotal struct {
	CategoryID   uuid.UUID       `json:"category_id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	CategoryName string          `json:"category" example:"Alimentação"`
	Color        string          `json:"color" example:"#EF4444"`
	Amount       decimal.Decimal `json:"amount" example:"60" swaggertype:"number"`
	Percentage   decimal.Decimal `json:"percentage" example:"100" swaggertype:"number"` // Share of the month's expenses, rounded to two decimals
}

// ComputeMonthly summarizes the transactions that fall into the given month.
//
// A transaction falls into the month when its date, read in the date's own
// location, is in that month. Transactions of other months are ignored.
// Expenses of categories missing from the lookup are reported with a placeholder
// name and color.
//
// ComputeMonthly does not modify its arguments.
func ComputeMonthly(transactions []models.Transaction, categories map[uuid.UUID]models.Category, year int, month time.Month) Monthly {
	r := Monthly{
		Year:          year,
		Month:         int(month),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TopCategories: make([]CategoryTotal, 0),
	}

	expenses := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range transactions {
		y, m, _ := t.Date.Date()
		if y != year || m != month {
			continue
		}

		r.TransactionsCount++

		switch t.Type {
		case models.TransactionTypeIncome:
			r.TotalIncome = r.TotalIncome.Add(t.Amount)
		case models.TransactionTypeExpense:
			r.TotalExpenses = r.TotalExpenses.Add(t.Amount)

			sum, ok := expenses[t.CategoryID]
			if !ok {
				sum = decimal.Zero
			}
			expenses[t.CategoryID] = sum.Add(t.Amount)
		}
	}

	r.Balance = r.TotalIncome.Sub(r.TotalExpenses)

	for id, amount := range expenses {
		total := CategoryTotal{
			CategoryID:   id,
			CategoryName: UncategorizedName,
			Color:        UncategorizedColor,
			Amount:       amount,
			Percentage:   percentage(amount, r.TotalExpenses),
		}

		if c, ok := categories[id]; ok {
			total.CategoryName = c.Name
			total.Color = c.Color
		}

		r.TopCategories = append(r.TopCategories, total)
	}

	sort.Slice(r.TopCategories, func(i, j int) bool {
		a, b := r.TopCategories[i], r.TopCategories[j]

		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c > 0
		}

		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}

		return a.CategoryID.String() < b.CategoryID.String()
	})

	return r
}

// percentage returns amount as a percentage of total, rounded to two decimals.
// It is zero when total is zero.
func percentage(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return amount.Mul(hundred).Div(total).Round(2)
}

// ValidMonth verifies that year and month describe a calendar month.
func ValidMonth(year, month int) error {
	_, err := types.ValidMonth(year, month)
	return err
}

// MonthRange returns the half-open interval [start, end) of the month in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	m := types.NewMonth(year, month)
	return m.Start(), m.End()
}
