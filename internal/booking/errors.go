package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPricingConfigured is returned when no pricing rule covers the
	// requested slot. Allocation must abort rather than price at zero.
	ErrNoPricingConfigured = errors.New("no pricing rule configured for requested slot")

	// ErrAlreadyCheckedIn is returned on repeat check-in attempts.
	ErrAlreadyCheckedIn = errors.New("already checked in")

	// ErrNotFound is returned when an entity does not exist for the tenant.
	// Cross-tenant lookups surface identically.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a bad input field, mapped to HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// CourtCountMismatchError reports a request for fewer courts than the
// player/court ratio demands. Raised before any availability reads.
type CourtCountMismatchError struct {
	Requested int64
	Required  int64
}

func (e CourtCountMismatchError) Error() string {
	return fmt.Sprintf("requested %d courts but %d are required for the player count", e.Requested, e.Required)
}

// InsufficientAvailabilityError reports that the club cannot cover the
// required court count for the requested slot.
type InsufficientAvailabilityError struct {
	Required  int64
	Available int64
}

func (e InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("only %d courts available, %d required", e.Available, e.Required)
}

// CourtsUnavailableError names courts that conflicted with existing bookings.
type CourtsUnavailableError struct {
	Courts []string
}

func (e CourtsUnavailableError) Error() string {
	return fmt.Sprintf("courts unavailable: %s", strings.Join(e.Courts, ", "))
}
