package auth_test

import (
	"context"
	"time"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/models"
)

var provider = fakeProvider{
	"jane-1": {Email: "Jane@example.com", Name: "Jane", SessionToken: "token-1"},
	"jane-2": {Email: "jane@example.com", Name: "Jane", SessionToken: "token-2"},
	"jane-3": {Email: "jane@example.com", Name: "Jane", SessionToken: "token-1"},
}

func (suite *TestSuiteStandard) TestCallbackCreatesUser() {
	user, session, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", auth.DefaultSessionTTL)
	suite.Require().Nil(err)

	suite.Assert().Equal("jane@example.com", user.Email)
	suite.Assert().Equal("token-1", session.Token)
	suite.Assert().Equal(user.ID, session.UserID)
	suite.Assert().WithinDuration(time.Now().Add(auth.DefaultSessionTTL), session.ExpiresAt, time.Minute)

	var categories []models.Category
	suite.Require().Nil(models.DB.Scopes(models.Owned(user.ID)).Find(&categories).Error)
	suite.Assert().Len(categories, 8)
	for _, c := range categories {
		suite.Assert().True(c.IsDefault)
	}
}

func (suite *TestSuiteStandard) TestCallbackExistingUser() {
	first, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", auth.DefaultSessionTTL)
	suite.Require().Nil(err)

	second, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-2", auth.DefaultSessionTTL)
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, second.ID)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Scopes(models.Owned(first.ID)).Count(&count).Error)
	suite.Assert().Equal(int64(8), count, "Default categories must only be created once")

	// Both sessions are valid
	for _, token := range []string{"token-1", "token-2"} {
		user, err := auth.Authenticate(models.DB, token, time.Now())
		suite.Assert().Nil(err)
		suite.Assert().Equal(first.ID, user.ID)
	}
}

func (suite *TestSuiteStandard) TestCallbackReusedToken() {
	_, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", auth.DefaultSessionTTL)
	suite.Require().Nil(err)

	_, _, err = auth.Callback(context.Background(), models.DB, provider, "jane-3", auth.DefaultSessionTTL)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCallbackErrors() {
	_, _, err := auth.Callback(context.Background(), models.DB, provider, " ", auth.DefaultSessionTTL)
	suite.Assert().ErrorIs(err, auth.ErrSessionIDMissing)

	_, _, err = auth.Callback(context.Background(), models.DB, provider, "unknown", auth.DefaultSessionTTL)
	suite.Assert().ErrorIs(err, auth.ErrUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticate() {
	_, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", time.Hour)
	suite.Require().Nil(err)

	tests := []struct {
		name  string
		token string
		now   time.Time
		err   error
	}{
		{"Valid", "token-1", time.Now(), nil},
		{"Expired", "token-1", time.Now().Add(2 * time.Hour), auth.ErrUnauthorized},
		{"Unknown", "token-unknown", time.Now(), auth.ErrUnauthorized},
		{"Empty", "", time.Now(), auth.ErrUnauthorized},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := auth.Authenticate(models.DB, tt.token, tt.now)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	_, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", time.Hour)
	suite.Require().Nil(err)

	suite.Require().Nil(auth.Logout(models.DB, "token-1"))

	_, err = auth.Authenticate(models.DB, "token-1", time.Now())
	suite.Assert().ErrorIs(err, auth.ErrUnauthorized)
}

func (suite *TestSuiteStandard) TestDeleteExpired() {
	_, _, err := auth.Callback(context.Background(), models.DB, provider, "jane-1", time.Hour)
	suite.Require().Nil(err)
	_, _, err = auth.Callback(context.Background(), models.DB, provider, "jane-2", 3*time.Hour)
	suite.Require().Nil(err)

	deleted, err := auth.DeleteExpired(models.DB, time.Now().Add(2*time.Hour))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), deleted)

	_, err = auth.Authenticate(models.DB, "token-2", time.Now())
	suite.Assert().Nil(err)
}
