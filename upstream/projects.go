package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProjectsAPI wraps the upstream project endpoints.
type ProjectsAPI struct {
	gateway *Gateway
	logger  zerolog.Logger
}

func NewProjectsAPI(gateway *Gateway) *ProjectsAPI {
	logger := log.With().Str("component", "projectsAPI").Logger()
	return &ProjectsAPI{gateway: gateway, logger: logger}
}

// ActiveProjectTypes returns the project categories the API considers
// publishable, in API order.
func (a *ProjectsAPI) ActiveProjectTypes(ctx context.Context) ([]models.ProjectType, error) {
	data, err := a.gateway.Get(ctx, "/projects/active-project-types/")
	if err != nil {
		return nil, err
	}

	var types []models.ProjectType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("decoding project types: %w", err)
	}
	return types, nil
}

// ClientsByType returns the client records (each carrying its project) for a
// project type. A zero-length result is valid and returned as-is.
func (a *ProjectsAPI) ClientsByType(ctx context.Context, typeID int64) ([]models.Client, error) {
	data, err := a.gateway.Get(ctx, fmt.Sprintf("/projects/get-clients/%d", typeID))
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("decoding clients for type %d: %w", typeID, err)
	}
	return clients, nil
}

// ProjectByClient fetches a project through the client indirection. The
// envelope here nests one level deeper than the other endpoints:
// {"data": {"client": {...}}}.
func (a *ProjectsAPI) ProjectByClient(ctx context.Context, clientID int64) (*models.Client, error) {
	data, err := a.gateway.Get(ctx, fmt.Sprintf("/projects/get-project/%d", clientID))
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Client *models.Client `json:"client"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding client %d: %w", clientID, err)
	}
	return wrapper.Client, nil
}

// ProjectByID fetches a project directly, without the client indirection.
func (a *ProjectsAPI) ProjectByID(ctx context.Context, projectID int64) (*models.Project, error) {
	data, err := a.gateway.Get(ctx, fmt.Sprintf("/projects/get-project-by-id/%d", projectID))
	if err != nil {
		return nil, err
	}

	var project models.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("decoding project %d: %w", projectID, err)
	}
	return &project, nil
}

// LatestProjects returns the raw pool the home page "recent projects" section
// is built from. Filtering and ordering happen in the catalog layer.
func (a *ProjectsAPI) LatestProjects(ctx context.Context, opts ...RequestOption) ([]models.Project, error) {
	data, err := a.gateway.Get(ctx, "/projects/get-latest-projects", opts...)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decoding latest projects: %w", err)
	}
	return projects, nil
}
