package server

// Server groups the handlers of every resource the page talks to.
type Server struct {
	LookupServer
	EventServer
	ContactServer
}

func NewServer(
	lookupServer LookupServer,
	eventServer EventServer,
	contactServer ContactServer,
) Server {
	return Server{
		LookupServer:  lookupServer,
		EventServer:   eventServer,
		ContactServer: contactServer,
	}
}
