package queries

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

type GetUserRoleQuery struct {
	email kernel.Email

	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	addr, err := kernel.NewEmail(email)
	if err != nil {
		return GetUserRoleQuery{}, err
	}
	return GetUserRoleQuery{email: addr, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

func (q GetUserRoleQuery) Email() kernel.Email { return q.email }

// GetUserRoleQueryHandler resolves the role of an email address; addresses
// never seen before are plain users.
type GetUserRoleQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetUserRoleQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{uowFactory: uowFactory}
}

func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	return h.uowFactory.Create().UserRepository().GetRole(ctx, query.Email())
}
