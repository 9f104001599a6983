package domain

import "errors"

// Business-rule violations surfaced by entity validation
var (
	ErrCustomerContentMustBePrivate = errors.New("customer content must be private")
	ErrIndexRequiresAdmin           = errors.New("only admins can create Index content")
	ErrTimeYearTooFarFuture         = errors.New("time reference cannot be more than 2 years in the future")
	ErrTimeYearTooFarPast           = errors.New("time reference cannot be more than 5 years in the past")
)
