// Package booking implements the court booking core: pricing resolution,
// conflict detection, court selection, group reservation allocation, and
// check-in with payment reconciliation.
package booking

// Booking and group lifecycle statuses.
const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// Payment settlement statuses.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentCancelled  = "cancelled"
)

// Payment methods.
const (
	MethodCash     = "CASH"
	MethodTerminal = "TERMINAL"
	MethodSPEI     = "SPEI"
	MethodOnline   = "ONLINE"
)

// Payment types for new reservations.
const (
	PaymentTypeOnsite = "onsite"
	PaymentTypeOnline = "online"
)

// Ledger entry types.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// MaxAdvanceBookingDays bounds how far ahead a reservation may be placed.
const MaxAdvanceBookingDays = 90

// ValidPaymentMethod reports whether method is a known settlement method.
func ValidPaymentMethod(method string) bool {
	switch method {
	case MethodCash, MethodTerminal, MethodSPEI, MethodOnline:
		return true
	}
	return false
}
