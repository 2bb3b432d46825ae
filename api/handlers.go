package api

import (
	"github.com/ndnb/architecture-web-gateway/upstream"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(up upstream.Upstream) *routeHandlers {
	return &routeHandlers{
		catalogHandler: newCatalogHandler(up.ProjectsAPI(), up.Gateway()),
		teamHandler:    newTeamHandler(up.TeamAPI(), up.Gateway()),
		clientsHandler: newClientsHandler(up.OurClientsAPI(), up.Gateway()),
	}
}
