package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a status change does not follow the
// forward chain or attempts to leave a terminal state. Use errors.Is to
// detect it regardless of wrapping.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves either state.
// Every non-terminal state advances to exactly one successor, and may
// always escape to Cancelled instead.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every submitted order,
	// waiting for the restaurant to confirm it.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup or about to go
	// out for delivery.
	Ready

	// Completed indicates the order was handed over or delivered.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// Reachable from any non-terminal state; final once entered.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error for anything that is not a valid status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%q is not a valid status", s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid status", s)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the single successor of the status along the forward chain.
//
// The second return value is false when no successor exists: terminal
// states (Completed, Cancelled) and invalid values have no "next".
// Callers must check it before offering the advance action; invoking
// "next" on a terminal state is a no-op by contract, not an error.
//
// Example:
//
//	if next, ok := current.Next(); ok {
//	    // offer the "advance to next" action
//	}
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Confirmed, true
	case Confirmed:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Completed, true
	default:
		return Unknown, false
	}
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsHistorical reports whether an order in this status belongs to the
// history view rather than the active dashboard. The historical set
// coincides with the terminal set: completed and cancelled orders.
func (s Status) IsHistorical() bool {
	return s.IsTerminal()
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancelling a completed or already
// cancelled order is rejected with ErrIllegalTransition.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: cannot cancel a %s order", ErrIllegalTransition, s)
	}
	return Cancelled, nil
}

// CanTransitionTo reports whether moving from this status to target is
// legal: target must be the single next status in the forward chain, or
// Cancelled while this status is non-terminal. Anything else, including
// skipping ahead, moving backward, or leaving a terminal state, yields
// ErrIllegalTransition.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Cancelled {
		if s.IsTerminal() {
			return fmt.Errorf("%w: cannot cancel a %s order", ErrIllegalTransition, s)
		}
		return nil
	}

	if next, ok := s.Next(); ok && next == target {
		return nil
	}
	return fmt.Errorf("%w: %s cannot move to %s", ErrIllegalTransition, s, target)
}
