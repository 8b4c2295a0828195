package v1

import (
	"net/http"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
		r.OPTIONS("/:id/add-amount", OptionsGoalAddAmount)
		r.PUT("/:id/add-amount", AddGoalAmount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	optionsDetail(c, models.Goal{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/goals/{id}/add-amount [options]
func OptionsGoalAddAmount(c *gin.Context) {
	optionsDetail(c, models.Goal{}, httputil.OptionsPut)
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals [post]
func CreateGoal(c *gin.Context) {
	var editable GoalEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal := editable.model(auth.CurrentUser(c).ID)
	err = models.DB.Create(&goal).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &data})
}

// @Summary		Get goals
// @Description	Returns all goals of the current user
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/goals [get]
func GetGoals(c *gin.Context) {
	var goals []models.Goal
	err := models.DB.
		Scopes(models.Owned(auth.CurrentUser(c).ID)).
		Order("created_at ASC, name ASC").
		Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &s})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var goal models.Goal
	err := getOwned(c, &goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Updates a goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	var goal models.Goal
	err := getOwned(c, &goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	if slices.Contains(updateFields, "Name") {
		goal.Name = data.Name
	}

	if slices.Contains(updateFields, "TargetAmount") {
		goal.TargetAmount = data.TargetAmount
	}

	if slices.Contains(updateFields, "CurrentAmount") {
		goal.CurrentAmount = data.CurrentAmount
	}

	if slices.Contains(updateFields, "Deadline") {
		goal.Deadline = data.Deadline
	}

	err = models.DB.Save(&goal).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Add amount to goal
// @Description	Adds money to the current amount of a goal. The goal is completed once the target amount is reached.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			amount	query		number	true	"The amount to add"
// @Router			/goals/{id}/add-amount [put]
func AddGoalAmount(c *gin.Context) {
	var goal models.Goal
	err := getOwned(c, &goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var query GoalAddAmountQuery
	if err := c.BindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		s := errAmountParameter.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	err = goal.AddAmount(amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	err = models.DB.Save(&goal).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	var goal models.Goal
	err := getOwned(c, &goal)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
