// Package rider implements the Rider aggregate and its assignment-eligibility
// state machine (pending -> active | rejected, active -> suspended).
//
// Key business rules:
//   - Riders register as pending
//   - Unreachable transitions fail with ErrInvalidTransition
//   - Only active riders are available, and only in their own district
package rider
