package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReferenceInvalid = errors.New("a resource ID you specified does not identify an existing resource")
)

var (
	ErrAccountTypeInvalid        = errors.New("the account type must be one of Checking, Savings, Credit or Investment")
	ErrAccountNameEmpty          = errors.New("the account name must not be empty")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique for the type")
	ErrBudgetMonthEmpty          = errors.New("the budget month must be set")
	ErrBudgetYearInvalid         = errors.New("the budget year must be a positive number")
	ErrCashflowDateEmpty         = errors.New("the cashflow date must be set")
	ErrCashflowCreditAndDebit    = errors.New("a cashflow can either be a credit or a debit, not both")
	ErrDebtStrategyInvalid       = errors.New("the debt strategy must be empty, avalanche or snowball")
	ErrDebtPaymentNotPositive    = errors.New("the payment amount must be greater than zero")
	ErrDebtPaymentExceedsBalance = errors.New("the payment amount must not exceed the current balance")
	ErrInvestmentCurrency        = errors.New("the currency must be an ISO 4217 code with three letters")
	ErrJobStabilityInvalid       = errors.New("the job stability must be empty, stable, moderate or unstable")
	ErrDependentsNegative        = errors.New("the number of dependents must not be negative")
	ErrSettingKeyNotUnique       = errors.New("a setting with this key already exists")
	ErrSettingKeyEmpty           = errors.New("the setting key must not be empty")
)
