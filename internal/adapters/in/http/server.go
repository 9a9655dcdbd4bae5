package http

import (
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/ports"
	"courier/internal/generated/servers"
)

// Commands groups the write use cases served over HTTP.
type Commands struct {
	CreateParcel        commands.CreateParcelCommandHandler
	DeleteParcel        commands.DeleteParcelCommandHandler
	AssignRider         commands.AssignRiderCommandHandler
	CreatePaymentIntent commands.CreatePaymentIntentCommandHandler
	RecordPayment       commands.RecordPaymentCommandHandler
	AppendTrackingEvent commands.AppendTrackingEventCommandHandler
	RegisterRider       commands.RegisterRiderCommandHandler
	SetRiderStatus      commands.SetRiderStatusCommandHandler
}

// Queries groups the read use cases served over HTTP.
type Queries struct {
	GetParcel           queries.GetParcelQueryHandler
	ListParcels         queries.ListParcelsQueryHandler
	ListPayments        queries.ListPaymentsQueryHandler
	GetTrackingHistory  queries.GetTrackingHistoryQueryHandler
	ListRiders          queries.ListRidersQueryHandler
	ListAvailableRiders queries.ListAvailableRidersQueryHandler
	GetUserRole         queries.GetUserRoleQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Handlers
// return use case errors unchanged; ErrorHandler turns them into responses.
type Server struct {
	commands Commands
	queries  Queries
	auth     ports.AuthGate
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries, auth ports.AuthGate) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
		auth:     auth,
	}
}
