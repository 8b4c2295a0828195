package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. All of them are caused by the request data and
// are returned to the client as is.
var (
	ErrAmountNegative         = errors.New("amounts must not be negative")
	ErrTransactionTypeInvalid = errors.New(`the transaction type must be "income" or "expense"`)
	ErrCategoryRequired       = errors.New("a category_id is required when no category rule matches the description")
	ErrCategoryNameEmpty      = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique  = errors.New("the category name must be unique")
	ErrCategoryDefault        = errors.New("default categories cannot be deleted")
	ErrGoalNameEmpty          = errors.New("the goal name must not be empty")
	ErrGoalTargetNotPositive  = errors.New("goal target amounts must be larger than zero")
	ErrUserEmailEmpty         = errors.New("the user email must not be empty")
	ErrUserEmailNotUnique     = errors.New("a user with this email already exists")
	ErrSessionTokenNotUnique  = errors.New("the session token is already in use")
	ErrCategoryRulePattern    = errors.New("the category rule pattern must not be empty")
)
