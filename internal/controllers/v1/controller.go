package v1

import (
	"time"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/cache"
)

// Controller holds the collaborators of the API handlers.
type Controller struct {
	Reports    *cache.Reports
	Provider   auth.Provider
	SessionTTL time.Duration
}

// NewController returns a Controller with an empty report cache.
func NewController(provider auth.Provider, sessionTTL, reportTTL time.Duration) Controller {
	if sessionTTL == 0 {
		sessionTTL = auth.DefaultSessionTTL
	}

	return Controller{
		Reports:    cache.NewReports(reportTTL),
		Provider:   provider,
		SessionTTL: sessionTTL,
	}
}
