package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrEmailTaken          = errors.New("email already registered")
	ErrAccountBlocked      = errors.New("account blocked")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidCostSchedule = errors.New("invalid cost schedule")
	ErrUnknownFeature      = errors.New("unknown feature")
	ErrUnsupportedPlan     = errors.New("unsupported plan")
	ErrProviderFailure     = errors.New("provider failure")
)

// InsufficientCreditsError reports a consume attempt that neither pool could
// cover. It carries the pre-consumption balances so callers can render an
// upgrade prompt with the exact shortfall.
type InsufficientCreditsError struct {
	Daily   int
	Monthly int
	Needed  int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: daily=%d, monthly=%d, needed=%d", e.Daily, e.Monthly, e.Needed)
}

// Unwrap makes the typed error match errors.Is(err, ErrInsufficientCredits).
func (e *InsufficientCreditsError) Unwrap() error {
	return ErrInsufficientCredits
}
