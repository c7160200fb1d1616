package models

import (
	"errors"
)

var (
	ErrGeneral                   = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound          = errors.New("there is no")
	ErrReferencedResourceMissing = errors.New("a resource ID you specified does not identify an existing resource")
	ErrAmountNegative            = errors.New("amounts must not be negative")
	ErrCurrencyInvalid           = errors.New("the currency must be an ISO 4217 currency code")
	ErrBudgetNameEmpty           = errors.New("the name of a budget must not be empty")
	ErrUsernameNotUnique         = errors.New("this username is already taken")
	ErrUsernameEmpty             = errors.New("the username must not be empty")
	ErrCategoryBudgetMismatch    = errors.New("the category must belong to the same budget as the transaction")
	ErrCategoryKindMismatch      = errors.New("income transactions need an income category, expenses need an expense category")
	ErrCategoryInUse             = errors.New("the budget or the expense setting of a category with transactions cannot be changed")
)
