package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPaymentsQueryHandler reads the payment ledger with a direct SQL query.
// The ledger is insert-only, so the read model is built from rows without
// restoring aggregates.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle returns payments ordered by paid_at descending, ties broken by id.
func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			parcel_id,
			email,
			amount,
			payment_method,
			transaction_id,
			paid_at,
			paid_at_string
		FROM payments`
	var args []any
	if email := query.Email(); email != nil {
		sql += `
		WHERE email = ?`
		args = append(args, email.String())
	}
	sql += `
		ORDER BY paid_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("list payments", err)
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var view PaymentView
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&view.Email,
			&view.Amount,
			&view.PaymentMethod,
			&view.TransactionID,
			&view.PaidAt,
			&view.PaidAtString,
		)
		if err != nil {
			return nil, errs.NewPersistenceError("scan payment", err)
		}

		paymentID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		view.ID = paymentID

		parcelUUID, idErr := kernel.UUIDFromGoogle(parcelID)
		if idErr != nil {
			return nil, idErr
		}
		view.ParcelID = parcelUUID
		view.PaidAt = view.PaidAt.UTC()

		payments = append(payments, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("list payments", err)
	}

	return payments, nil
}
