package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fguardian/backend/internal/auth"
	v1 "github.com/fguardian/backend/internal/controllers/v1"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "/categories", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryResponse
	test.DecodeResponse(t, &r, &category)

	return category
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name     string
		category v1.CategoryEditable
		status   int
		color    string
		icon     string
	}{
		{"Defaults", v1.CategoryEditable{Name: "Pets"}, http.StatusCreated, models.DefaultCategoryColor, models.DefaultCategoryIcon},
		{"Explicit values", v1.CategoryEditable{Name: "Travel", Color: "#000000", Icon: "✈️"}, http.StatusCreated, "#000000", "✈️"},
		{"Name is trimmed", v1.CategoryEditable{Name: "  Gifts "}, http.StatusCreated, models.DefaultCategoryColor, models.DefaultCategoryIcon},
		{"Duplicate of default category", v1.CategoryEditable{Name: "Transporte"}, http.StatusBadRequest, "", ""},
		{"Empty name", v1.CategoryEditable{Name: "   "}, http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			c := suite.createTestCategory(t, tt.category, tt.status)

			if tt.status != http.StatusCreated {
				assert.NotNil(t, c.Error)
				return
			}

			assert.Nil(t, c.Error)
			assert.Equal(t, tt.color, c.Data.Color)
			assert.Equal(t, tt.icon, c.Data.Icon)
			assert.False(t, c.Data.IsDefault)
			assert.Equal(t, fmt.Sprintf("http://example.com/api/categories/%s", c.Data.ID), c.Data.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateBrokenBody() {
	r := suite.request(suite.T(), http.MethodPost, "/categories", `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPost, "/categories", `{ "name": "Unterminated`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Aaa first"})

	// Categories of other users are never listed
	_, john := suite.signIn("john-1")
	r := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/api/categories", v1.CategoryEditable{Name: "Hidden"}, john)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(suite.T(), http.MethodGet, "/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 9)
	suite.Assert().Equal("Aaa first", response.Data[0].Name)
	for _, c := range response.Data {
		suite.Assert().NotEqual("Hidden", c.Name)
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	_, john := suite.signIn("john-1")
	r := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/api/categories", v1.CategoryEditable{Name: "John's"}, john)
	var other v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &other)

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Category of other user", other.Data.ID.String(), http.StatusNotFound, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Category of other user", other.Data.ID.String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Category of other user", other.Data.ID.String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("/categories/%s", tt.id), `{}`)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", suite.createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "/categories/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Pets", Color: "#111111", Icon: "🐈"})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, c v1.Category)
	}{
		{
			"Only color",
			map[string]any{"color": "#222222"},
			http.StatusOK,
			func(t *testing.T, c v1.Category) {
				assert.Equal(t, "Pets", c.Name)
				assert.Equal(t, "#222222", c.Color)
				assert.Equal(t, "🐈", c.Icon)
			},
		},
		{
			"Rename",
			map[string]any{"name": "Animals"},
			http.StatusOK,
			func(t *testing.T, c v1.Category) {
				assert.Equal(t, "Animals", c.Name)
				assert.Equal(t, "#222222", c.Color)
			},
		},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Name of other category", map[string]any{"name": "Moradia"}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"Not JSON", `name=Animals`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, fmt.Sprintf("/categories/%s", c.Data.ID), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	r := suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("/categories/%s", c.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, fmt.Sprintf("/categories/%s", c.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesRecreateAfterDelete() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Lazer"})

	r := suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("/categories/%s", c.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	recreated := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Lazer"})
	suite.Assert().NotEqual(c.Data.ID, recreated.Data.ID)

	// Renaming another category to the name of the deleted one works as well
	other := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Viagens"})
	r = suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("/categories/%s", other.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodPatch, fmt.Sprintf("/categories/%s", recreated.Data.ID), map[string]any{"name": "Viagens"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Viagens"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteDefault() {
	food := suite.defaultCategory("Alimentação")

	r := suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("/categories/%s", food.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), models.ErrCategoryDefault.Error())

	r = suite.request(suite.T(), http.MethodGet, fmt.Sprintf("/categories/%s", food.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed after authentication.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	user := suite.user

	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetCurrentUser(c, user)
	})
	r.GET("/categories", v1.GetCategories)
	r.POST("/categories", suite.co.CreateCategory)

	suite.CloseDB()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/categories", strings.NewReader(`{"name": "Closed"}`))
		r.ServeHTTP(recorder, req)

		suite.Assert().Equal(http.StatusInternalServerError, recorder.Code, method)
		suite.Assert().Contains(recorder.Body.String(), models.ErrGeneral.Error())
	}
}
