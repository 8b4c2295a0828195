package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fguardian/backend/internal/controllers/v1"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.Type == "" {
		c.Type = models.TransactionTypeExpense
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "/transactions", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionResponse
	test.DecodeResponse(t, &r, &transaction)

	return transaction
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	food := suite.defaultCategory("Alimentação")

	_, john := suite.signIn("john-1")
	r := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/api/categories", v1.CategoryEditable{Name: "John's"}, john)
	var other v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &other)

	date := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
		err         error
	}{
		{"Expense", v1.TransactionEditable{Amount: decimal.NewFromFloat(42.5), CategoryID: food.ID, Description: "Groceries", Date: date}, http.StatusCreated, nil},
		{"Zero amount", v1.TransactionEditable{Amount: decimal.Zero, CategoryID: food.ID, Date: date}, http.StatusCreated, nil},
		{"Income", v1.TransactionEditable{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5000), CategoryID: food.ID, Date: date}, http.StatusCreated, nil},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromInt(-1), CategoryID: food.ID}, http.StatusBadRequest, models.ErrAmountNegative},
		{"Invalid type", v1.TransactionEditable{Type: "transfer", Amount: decimal.NewFromInt(1), CategoryID: food.ID}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"No category and no rule", v1.TransactionEditable{Amount: decimal.NewFromInt(1), Description: "Unknown"}, http.StatusBadRequest, models.ErrCategoryRequired},
		{"Category of other user", v1.TransactionEditable{Amount: decimal.NewFromInt(1), CategoryID: other.Data.ID}, http.StatusNotFound, models.ErrResourceNotFound},
		{"Category does not exist", v1.TransactionEditable{Amount: decimal.NewFromInt(1), CategoryID: uuid.New()}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := suite.createTestTransaction(t, tt.transaction, tt.status)

			if tt.err != nil {
				require.NotNil(t, transaction.Error)
				assert.Contains(t, *transaction.Error, tt.err.Error())
				return
			}

			assert.True(t, tt.transaction.Amount.Equal(transaction.Data.Amount), "Amount is %s", transaction.Data.Amount)
			assert.Equal(t, tt.transaction.CategoryID, transaction.Data.CategoryID)
			assert.True(t, tt.transaction.Date.Equal(transaction.Data.Date))
			assert.Equal(t, fmt.Sprintf("http://example.com/api/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
			assert.Equal(t, fmt.Sprintf("http://example.com/api/categories/%s", food.ID), transaction.Data.Links.Category)
		})
	}
}

// TestTransactionsCreateDefaultDate verifies that transactions without date
// are created at the current time.
func (suite *TestSuiteStandard) TestTransactionsCreateDefaultDate() {
	before := time.Now().Add(-time.Second)
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(10),
		CategoryID: suite.defaultCategory("Transporte").ID,
	})

	suite.Assert().True(transaction.Data.Date.After(before), "Date is %s", transaction.Data.Date)
	suite.Assert().Equal(time.UTC, transaction.Data.Date.Location())
}

// TestTransactionsCreateCategoryRule verifies that category rules assign
// the category when none is given.
func (suite *TestSuiteStandard) TestTransactionsCreateCategoryRule() {
	transport := suite.defaultCategory("Transporte")
	food := suite.defaultCategory("Alimentação")

	_ = suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 2, Pattern: "*uber*", CategoryID: transport.ID})
	_ = suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Pattern: "*uber eats*", CategoryID: food.ID})

	tests := []struct {
		description string
		category    uuid.UUID
	}{
		{"Uber to the airport", transport.ID},
		{"UBER EATS order", food.ID},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			transaction := suite.createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromInt(20), Description: tt.description})
			assert.Equal(t, tt.category, transaction.Data.CategoryID)
		})
	}

	// An explicit category wins over the rules
	health := suite.defaultCategory("Saúde")
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(20), Description: "Uber to the doctor", CategoryID: health.ID})
	suite.Assert().Equal(health.ID, transaction.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	food := suite.defaultCategory("Alimentação")
	salary := suite.defaultCategory("Salário")

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(100), CategoryID: food.ID, Description: "January", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(200), CategoryID: food.ID, Description: "February", Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(3000), CategoryID: salary.ID, Description: "Salary", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)})

	// Transactions of other users are never listed
	_, john := suite.signIn("john-1")
	var johnsFood models.Category
	suite.Require().Nil(models.DB.Where("name = ? AND user_id <> ?", "Alimentação", suite.user.ID).First(&johnsFood).Error)
	r := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/api/transactions", v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), CategoryID: johnsFood.ID}, john)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name         string
		query        string
		descriptions []string
		total        int64
	}{
		{"All, newest first", "", []string{"February", "Salary", "January"}, 3},
		{"Expenses", "type=expense", []string{"February", "January"}, 2},
		{"Income", "type=income", []string{"Salary"}, 1},
		{"By category", fmt.Sprintf("category=%s", salary.ID), []string{"Salary"}, 1},
		{"From date", "fromDate=2025-02-01T00:00:00Z", []string{"February", "Salary"}, 2},
		{"Until date", "untilDate=2025-02-01T00:00:00Z", []string{"January"}, 1},
		{"Limit", "limit=1", []string{"February"}, 3},
		{"Offset", "offset=1&limit=1", []string{"Salary"}, 3},
		{"No limit", "limit=-1", []string{"February", "Salary", "January"}, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0, len(response.Data))
			for _, transaction := range response.Data {
				descriptions = append(descriptions, transaction.Description)
			}

			assert.Equal(t, tt.descriptions, descriptions)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.descriptions), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidQuery() {
	for _, query := range []string{"type=transfer", "category=NotAUUID", "fromDate=yesterday", "limit=many"} {
		suite.T().Run(query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/transactions?"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(5), CategoryID: suite.defaultCategory("Moradia").ID})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Transaction", transaction.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing Transaction", transaction.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"PUT No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPut},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.method == http.MethodOptions {
				assert.Equal(t, "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	food := suite.defaultCategory("Alimentação")
	transport := suite.defaultCategory("Transporte")
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(5), CategoryID: food.ID, Description: "Lunch", Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)})
	path := fmt.Sprintf("/transactions/%s", transaction.Data.ID)

	replacement := v1.TransactionEditable{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(7.25),
		CategoryID:  transport.ID,
		Description: "Bus ticket",
		Date:        time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
	}

	r := suite.request(suite.T(), http.MethodPut, path, replacement)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(transaction.Data.ID, response.Data.ID)
	suite.Assert().True(decimal.NewFromFloat(7.25).Equal(response.Data.Amount))
	suite.Assert().Equal(transport.ID, response.Data.CategoryID)
	suite.Assert().Equal("Bus ticket", response.Data.Description)
	suite.Assert().True(replacement.Date.Equal(response.Data.Date))

	tests := []struct {
		name string
		body any
		err  error
	}{
		{"No category", v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1)}, models.ErrCategoryRequired},
		{"Negative amount", v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-1), CategoryID: food.ID}, models.ErrAmountNegative},
		{"Missing type", v1.TransactionEditable{Amount: decimal.NewFromInt(1), CategoryID: food.ID}, models.ErrTransactionTypeInvalid},
		{"Broken body", `{ "amount": "many" }`, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != nil {
				var response v1.TransactionResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, tt.err.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(5), CategoryID: suite.defaultCategory("Moradia").ID})
	path := fmt.Sprintf("/transactions/%s", transaction.Data.ID)

	r := suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
