package prop

import "errors"

// Causes carried by assertion violations raised in this package.
var (
	ErrAlreadyBound = errors.New("property has already been bound")
	ErrNilOwner     = errors.New("owner must not be nil")
	ErrUnbound      = errors.New("property has not been bound to an owner")
	ErrNilAlias     = errors.New("property target must not be nil")
	ErrNilHandle    = errors.New("shared handle is nil")
	ErrNilFunc      = errors.New("property accessor function is nil")
	ErrCarrierSpent = errors.New("assignment has already been deposited")
)
