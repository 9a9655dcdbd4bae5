// Package parcel implements the Parcel aggregate: intake details, the one-way
// Unpaid -> Paid payment status and rider assignment.
//
// Key business rules:
//   - Parcels are created Unpaid with a derived tracking code
//   - Payment status only moves Unpaid -> Paid; the flip itself happens as a
//     conditional update in the store so that concurrent confirmations race safely
//   - Riders can only be attached to paid parcels
package parcel
