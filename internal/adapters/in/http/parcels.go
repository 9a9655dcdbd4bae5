package http

import (
	"net/http"
	"strings"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/generated/servers"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const riderAssignedMessage = "rider assigned"

// ListParcels handles GET /parcels. Anonymous callers may filter by any
// email. Authenticated non-admin callers only see their own parcels.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	email := ""
	if params.Email != nil {
		email = strings.TrimSpace(*params.Email)
	}

	claims, ok, err := s.authenticateOptional(ctx)
	if err != nil {
		return err
	}
	if ok && !claims.IsAdmin() {
		switch {
		case email == "":
			email = claims.Subject
		case !strings.EqualFold(email, claims.Subject):
			return errs.NewForbiddenError("parcels of another user")
		}
	}

	query, err := queries.NewListParcelsQuery(email)
	if err != nil {
		return err
	}

	views, err := s.queries.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Parcel, 0, len(views))
	for _, v := range views {
		response = append(response, toParcel(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		string(body.CreatedBy),
		body.District,
		decimal.NewFromFloat(body.Cost),
		parcel.Contents{
			Title:           body.Title,
			ReceiverName:    body.ReceiverName,
			ReceiverAddress: body.ReceiverAddress,
		},
	)
	if err != nil {
		return err
	}

	created, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedParcel{
		InsertedId:   created.ID.Bytes(),
		TrackingCode: created.TrackingCode,
	})
}

// GetParcel handles GET /parcels/{id}.
func (s *Server) GetParcel(ctx echo.Context, id servers.ID) error {
	parcelID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return err
	}

	view, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toParcel(view))
}

// DeleteParcel handles DELETE /parcels/{id}. An unknown id deletes nothing
// and still answers 200.
func (s *Server) DeleteParcel(ctx echo.Context, id servers.ID) error {
	parcelID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return err
	}

	deleted, err := s.commands.DeleteParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.DeletedParcel{DeletedCount: deleted})
}

// AssignRider handles PATCH /parcels/{id}/assign. The caller, when
// authenticated, is recorded on the tracking event.
func (s *Server) AssignRider(ctx echo.Context, id servers.ID) error {
	var body servers.AssignRiderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	claims, _, err := s.authenticateOptional(ctx)
	if err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}
	riderID, err := kernel.UUIDFromGoogle(body.RiderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID, claims.Subject)
	if err != nil {
		return err
	}

	if err = s.commands.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: riderAssignedMessage})
}

func toParcel(v queries.ParcelView) servers.Parcel {
	p := servers.Parcel{
		Id:              v.ID.Bytes(),
		TrackingCode:    v.TrackingCode,
		CreatedBy:       v.CreatedBy,
		Title:           v.Title,
		ReceiverName:    v.ReceiverName,
		ReceiverAddress: v.ReceiverAddress,
		District:        v.District,
		Cost:            v.Cost.InexactFloat64(),
		PaymentStatus:   servers.ParcelPaymentStatus(v.PaymentStatus),
		CreatedAt:       v.CreatedAt,
	}
	if v.RiderID != nil {
		riderID := v.RiderID.Bytes()
		p.RiderId = &riderID
	}
	return p
}
