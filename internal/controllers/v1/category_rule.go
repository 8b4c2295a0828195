package v1

import (
	"net/http"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRule)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Router			/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	optionsDetail(c, models.CategoryRule{}, httputil.OptionsGetDelete)
}

// @Summary		Create category rule
// @Description	Creates a new category rule
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/category-rules [post]
func CreateCategoryRule(c *gin.Context) {
	var editable CategoryRuleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &s})
		return
	}

	rule := editable.model(auth.CurrentUser(c).ID)
	err = models.DB.Create(&rule).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &s})
		return
	}

	data := newCategoryRule(c, rule)
	c.JSON(http.StatusCreated, CategoryRuleResponse{Data: &data})
}

// @Summary		Get category rules
// @Description	Returns all category rules of the current user in the order they are applied
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/category-rules [get]
func GetCategoryRules(c *gin.Context) {
	var rules []models.CategoryRule
	err := models.DB.
		Scopes(models.Owned(auth.CurrentUser(c).ID)).
		Order("priority ASC, pattern ASC").
		Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{Error: &s})
		return
	}

	data := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{Data: data})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	var rule models.CategoryRule
	err := getOwned(c, &rule)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &s})
		return
	}

	data := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	var rule models.CategoryRule
	err := getOwned(c, &rule)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
