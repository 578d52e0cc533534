package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailNotUnique          = errors.New("a user with this email address already exists")
	ErrCategoryNameNotUnique   = errors.New("the category name must be unique")
	ErrMonthlyBalanceNotUnique = errors.New("a monthly balance for this user, category and month already exists")

	ErrTransactionTypeInvalid       = errors.New("the transaction type must be 'income' or 'expense'")
	ErrTransactionTypeMismatch      = errors.New("the transaction type must match the type of its category")
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrMatchRuleEmpty               = errors.New("the match rule must not be empty")
)
