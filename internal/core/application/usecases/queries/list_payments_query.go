package queries

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery lists payment records newest first. When email is set
// only that payer's payments are returned.
//
// Example:
//
//	query, err := NewListPaymentsQuery("alice@example.com")
//	if err != nil {
//	    return err
//	}
//	payments, err := handler.Handle(ctx, query)
type ListPaymentsQuery struct {
	email *kernel.Email

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(email string) (ListPaymentsQuery, error) {
	query := ListPaymentsQuery{guard: guard.NewConstructorGuard()}

	if email = strings.TrimSpace(email); email != "" {
		addr, err := kernel.NewEmail(email)
		if err != nil {
			return ListPaymentsQuery{}, err
		}
		query.email = &addr
	}

	return query, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) Email() *kernel.Email { return q.email }
