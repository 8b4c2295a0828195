package v1

import (
	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getOwned binds the resource ID from the URI and loads the resource with
// this ID if it belongs to the current user.
//
// Resources of other users are reported as not found.
func getOwned[R models.Category | models.Transaction | models.Goal | models.CategoryRule](c *gin.Context, resource *R) error {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return err
	}

	return models.DB.Scopes(models.Owned(auth.CurrentUser(c).ID)).First(resource, "id = ?", uri.ID.UUID).Error
}

// optionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func optionsDetail[R models.Category | models.Transaction | models.Goal | models.CategoryRule](c *gin.Context, resource R, allow gin.HandlerFunc) {
	err := getOwned(c, &resource)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}
