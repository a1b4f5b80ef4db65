package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAlreadyExists    = errors.New("there already is")
)

// Uniqueness violations. These are returned by the pre-write checks and
// by the create/update callbacks when a concurrent write slips past them.
var (
	ErrProfileEmailNotUnique = fmt.Errorf("%w a profile with this email", ErrAlreadyExists)
	ErrStateNameNotUnique    = fmt.Errorf("%w a state with this name", ErrAlreadyExists)
	ErrTypeNameNotUnique     = fmt.Errorf("%w a type with this name", ErrAlreadyExists)
	ErrCategoryNameNotUnique = fmt.Errorf("%w a category with this name", ErrAlreadyExists)
	ErrPhaseNameNotUnique    = fmt.Errorf("%w a phase with this name", ErrAlreadyExists)
	ErrAccountNameNotUnique  = fmt.Errorf("%w an account with this name", ErrAlreadyExists)
	ErrBudgetNameNotUnique   = fmt.Errorf("%w a budget with this name", ErrAlreadyExists)
)

// Transfer errors.
var (
	ErrAmountNotPositive   = errors.New("the amount must be positive")
	ErrSameAccount         = errors.New("the sender and recipient accounts must be different")
	ErrBalanceInsufficient = errors.New("the sender account balance is insufficient for this transfer")
)
