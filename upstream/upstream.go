package upstream

// Upstream bundles the typed API clients behind a shared Gateway instance.
type Upstream struct {
	gateway       *Gateway
	projectsAPI   *ProjectsAPI
	teamAPI       *TeamAPI
	ourClientsAPI *OurClientsAPI
}

// New initializes an Upstream with each API client using a shared Gateway
func New(gateway *Gateway) Upstream {
	return Upstream{
		gateway:       gateway,
		projectsAPI:   NewProjectsAPI(gateway),
		teamAPI:       NewTeamAPI(gateway),
		ourClientsAPI: NewOurClientsAPI(gateway),
	}
}

// Accessor methods for each API client

func (u Upstream) Gateway() *Gateway {
	return u.gateway
}

func (u Upstream) ProjectsAPI() *ProjectsAPI {
	return u.projectsAPI
}

func (u Upstream) TeamAPI() *TeamAPI {
	return u.teamAPI
}

func (u Upstream) OurClientsAPI() *OurClientsAPI {
	return u.ourClientsAPI
}
