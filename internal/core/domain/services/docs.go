// Package services provides domain services for rules spanning more than one
// aggregate of the courier domain.
//
// The package includes:
//   - ParcelDispatcher: matches an active rider with a paid parcel in the same district
package services
