// Package kernel provides the value objects shared by every aggregate of the
// courier domain.
//
// The package includes:
//   - UUID: identifiers for parcels, payments, tracking events and riders
//   - Email, District, Money: validated value objects built through constructors
//   - MonotonicClock: strictly increasing server timestamps for the tracking log
//   - EventRecorder / DomainEvent: facts collected by aggregates and published
//     after commit
//
// Value objects embed a guard.ConstructorGuard, so a zero value fails Validate.
package kernel
