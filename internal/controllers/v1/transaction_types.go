package v1

import (
	"fmt"
	"time"

	"github.com/fguardian/backend/internal/models"
	fg_uuid "github.com/fguardian/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" example:"42.5" minimum:"0" swaggertype:"number"`     // The amount of the transaction, must not be negative
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`              // Income or expense
	CategoryID  uuid.UUID              `json:"category_id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // The category. When creating a transaction without category, the first matching category rule is used.
	Description string                 `json:"description" example:"Groceries"`                            // A description of the transaction
	Date        time.Time              `json:"date" example:"2025-01-15T12:00:00Z"`                        // Date of the transaction. Defaults to the current time
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/categories/1e777d24-3f5b-4c43-8000-04f65f895578"` // The category of the transaction
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount:      model.Amount,
			Type:        model.Type,
			CategoryID:  model.CategoryID,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                        // Data for the transaction
	Error *string      `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}

// TransactionQueryFilter contains the fields that Transactions can be filtered with.
type TransactionQueryFilter struct {
	Type       models.TransactionType `form:"type"`                          // Income or expense
	CategoryID fg_uuid.UUID           `form:"category"`                      // ID of the category
	FromDate   time.Time              `form:"fromDate" filterField:"false"`  // From this date, inclusive
	UntilDate  time.Time              `form:"untilDate" filterField:"false"` // Until this date, exclusive
	Offset     uint                   `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 1000.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type:       f.Type,
		CategoryID: f.CategoryID.UUID,
	}
}
