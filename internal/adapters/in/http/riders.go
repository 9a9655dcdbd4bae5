package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterRider handles POST /riders. New riders wait for approval.
func (s *Server) RegisterRider(ctx echo.Context) error {
	if _, err := s.authenticate(ctx); err != nil {
		return err
	}

	var body servers.RegisterRiderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRiderCommand(riderID, body.Name, string(body.Email), body.Phone, body.District)
	if err != nil {
		return err
	}

	if err = s.commands.RegisterRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.InsertedID{InsertedId: riderID.Bytes()})
}

// ListPendingRiders handles GET /riders/pending.
func (s *Server) ListPendingRiders(ctx echo.Context) error {
	if _, err := s.authenticate(ctx); err != nil {
		return err
	}
	return s.listRiders(ctx, rider.Pending)
}

// ListActiveRiders handles GET /riders/active.
func (s *Server) ListActiveRiders(ctx echo.Context) error {
	return s.listRiders(ctx, rider.Active)
}

func (s *Server) listRiders(ctx echo.Context, status rider.Status) error {
	query, err := queries.NewListRidersQuery(status)
	if err != nil {
		return err
	}

	views, err := s.queries.ListRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRiders(views))
}

// ListAvailableRiders handles GET /riders/available.
func (s *Server) ListAvailableRiders(ctx echo.Context, params servers.ListAvailableRidersParams) error {
	query, err := queries.NewListAvailableRidersQuery(params.District)
	if err != nil {
		return err
	}

	views, err := s.queries.ListAvailableRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRiders(views))
}

// SetRiderStatus handles PATCH /riders/{id}/status.
func (s *Server) SetRiderStatus(ctx echo.Context, id servers.ID) error {
	var body servers.SetRiderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	riderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetRiderStatusCommand(riderID, body.Status)
	if err != nil {
		return err
	}

	if err = s.commands.SetRiderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.RiderStatusChange{Status: cmd.Status().String()})
}

// GetUserRole handles GET /users/{email}/role.
func (s *Server) GetUserRole(ctx echo.Context, email string) error {
	query, err := queries.NewGetUserRoleQuery(email)
	if err != nil {
		return err
	}

	role, err := s.queries.GetUserRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.UserRole{Role: role})
}

func toRiders(views []queries.RiderView) []servers.Rider {
	response := make([]servers.Rider, 0, len(views))
	for _, v := range views {
		response = append(response, servers.Rider{
			Id:        v.ID.Bytes(),
			Name:      v.Name,
			Email:     v.Email,
			Phone:     v.Phone,
			District:  v.District,
			Status:    servers.RiderStatus(v.Status),
			CreatedAt: v.CreatedAt,
		})
	}
	return response
}
