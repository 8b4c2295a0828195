package v1

import (
	"net/http"
	"time"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type ReportResponse struct {
	Data  *report.Monthly `json:"data"`                                               // The monthly report
	Error *string         `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly/:year/:month", OptionsMonthlyReport)
	r.GET("/monthly/:year/:month", co.GetMonthlyReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Param			year	path	int	true	"Year"
// @Param			month	path	int	true	"Month, 1 to 12"
// @Router			/reports/monthly/{year}/{month} [options]
func OptionsMonthlyReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly report
// @Description	Returns income, expenses, balance and the spending per category of the current user for one month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	ReportResponse
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month, 1 to 12"
// @Router			/reports/monthly/{year}/{month} [get]
func (co Controller) GetMonthlyReport(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &s})
		return
	}

	if err := report.ValidMonth(uri.Year, uri.Month); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &s})
		return
	}

	userID := auth.CurrentUser(c).ID
	month := time.Month(uri.Month)

	monthly, err := co.Reports.GetOrCompute(userID, uri.Year, month, func() (report.Monthly, error) {
		return report.Load(models.DB, userID, uri.Year, month)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &monthly})
}
