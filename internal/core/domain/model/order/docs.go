// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is assembled client-side from cart contents and submitted once;
// after that only its status moves, driven by the operator console through
// the forward chain pending -> confirmed -> preparing -> ready -> completed,
// with cancellation available from any non-terminal state. The aggregate
// enforces the transition graph itself, so no caller can force an illegal
// status through the persistence layer.
package order
