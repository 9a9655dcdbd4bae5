package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// AppendTrackingEvent handles POST /tracking. With an Idempotency-Key that
// was seen before, the earlier event id is returned with 200.
func (s *Server) AppendTrackingEvent(ctx echo.Context, params servers.AppendTrackingEventParams) error {
	var body servers.AppendTrackingEventJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromGoogle(body.ParcelId)
	if err != nil {
		return err
	}

	entry := tracking.Entry{
		TrackingCode: body.TrackingId,
		Status:       body.Status,
		Message:      body.Message,
	}
	if body.UpdatedBy != nil {
		entry.UpdatedBy = *body.UpdatedBy
	}
	if params.IdempotencyKey != nil {
		entry.IdempotencyKey = *params.IdempotencyKey
	}

	cmd, err := commands.NewAppendTrackingEventCommand(parcelID, entry)
	if err != nil {
		return err
	}

	appended, err := s.commands.AppendTrackingEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if !appended.Created {
		status = http.StatusOK
	}
	return ctx.JSON(status, servers.InsertedID{InsertedId: appended.EventID.Bytes()})
}

// GetTrackingHistory handles GET /parcels/{id}/tracking.
func (s *Server) GetTrackingHistory(ctx echo.Context, id servers.ID) error {
	parcelID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTrackingHistoryQuery(parcelID)
	if err != nil {
		return err
	}

	views, err := s.queries.GetTrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.TrackingEvent, 0, len(views))
	for _, v := range views {
		response = append(response, servers.TrackingEvent{
			Id:         v.ID.Bytes(),
			TrackingId: v.TrackingCode,
			ParcelId:   v.ParcelID.Bytes(),
			Status:     v.Status,
			Message:    v.Message,
			UpdatedBy:  v.UpdatedBy,
			Timestamp:  v.RecordedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}
