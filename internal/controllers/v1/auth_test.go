package v1_test

import (
	"net/http"
	"testing"

	"github.com/fguardian/backend/internal/auth"
	v1 "github.com/fguardian/backend/internal/controllers/v1"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAuthCallback() {
	tests := []struct {
		name      string
		sessionID string
		status    int
	}{
		{"No session ID", "", http.StatusBadRequest},
		{"Rejected by provider", "unknown", http.StatusUnauthorized},
		{"Provider outage", "outage", http.StatusBadGateway},
		{"New user", "john-1", http.StatusOK},
		{"Existing user", "jane-1", http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := "http://example.com/api/auth/callback"
			if tt.sessionID != "" {
				path += "?session_id=" + tt.sessionID
			}

			r := test.Request(t, suite.co, http.MethodPost, path, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.UserResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				assert.Empty(t, r.Result().Cookies())
				return
			}

			assert.Equal(t, provider[tt.sessionID].Email, response.Data.Email)

			cookies := r.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, auth.CookieName, cookies[0].Name)
			assert.Equal(t, provider[tt.sessionID].SessionToken, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
			assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
		})
	}
}

// TestAuthCallbackDefaultCategories verifies that new users get the
// default categories exactly once.
func (suite *TestSuiteStandard) TestAuthCallbackDefaultCategories() {
	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/api/auth/callback?session_id=john-1", nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	r := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/api/categories", nil, map[string]string{"Authorization": "Bearer token-john"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 8)

	for _, category := range response.Data {
		suite.Assert().True(category.IsDefault, category.Name)
	}
}

func (suite *TestSuiteStandard) TestAuthMe() {
	r := suite.request(suite.T(), http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(suite.user.ID, response.Data.ID)
	suite.Assert().Equal("jane@example.com", response.Data.Email)
	suite.Assert().Equal("Jane", response.Data.Name)
	suite.Assert().Equal("https://example.com/jane.png", response.Data.Picture)
}

func (suite *TestSuiteStandard) TestAuthMeCookie() {
	r := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/api/auth/me", nil, map[string]string{"Cookie": auth.CookieName + "=token-jane"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	for _, path := range []string{
		"/auth/me",
		"/categories",
		"/transactions",
		"/goals",
		"/category-rules",
		"/reports/monthly/2025/1",
	} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, "http://example.com/api"+path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			r = test.Request(t, suite.co, http.MethodGet, "http://example.com/api"+path, nil, map[string]string{"Authorization": "Bearer not-a-session"})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthLogout() {
	r := suite.request(suite.T(), http.MethodPost, "/auth/logout", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	cookies := r.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Assert().Equal(auth.CookieName, cookies[0].Name)
	suite.Assert().Equal("", cookies[0].Value)
	suite.Assert().True(cookies[0].MaxAge < 0)

	// The session is gone
	r = suite.request(suite.T(), http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Session{}).Where("token = ?", "token-jane").Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestAuthDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrGeneral.Error())
}
