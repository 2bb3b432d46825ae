package catalog

import (
	"context"
	"sync"

	"github.com/ndnb/architecture-web-gateway/idcodec"
	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ListState tracks the project list lifecycle. The list re-enters
// ListLoading on every category change.
type ListState int

const (
	ListEmpty ListState = iota
	ListLoading
	ListPopulated
	ListError
)

// ProjectSummary is one display-ready list row. Token is the obfuscated
// client id the detail route expects.
type ProjectSummary struct {
	ID           int64  `json:"id"`
	ProjectName  string `json:"projectName"`
	Location     string `json:"location"`
	ClientName   string `json:"clientName"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Token        string `json:"token"`
}

// ClientSource provides the client records for a project type.
// *upstream.ProjectsAPI satisfies it.
type ClientSource interface {
	ClientsByType(ctx context.Context, typeID int64) ([]models.Client, error)
}

// userSafeListError is the only failure text the list ever surfaces; the
// underlying cause goes to the log.
const userSafeListError = "Projects could not be loaded. Please try again."

// ProjectListController loads the rows for the selected category. Because a
// user can switch categories faster than a response returns, every fetch is
// tagged with a generation; a late result whose generation is no longer
// current is discarded, so the displayed list always reflects the last
// selection regardless of network completion order.
type ProjectListController struct {
	source ClientSource
	assets AssetResolver
	logger zerolog.Logger

	mu          sync.Mutex
	state       ListState
	rows        []ProjectSummary
	errMessage  string
	currentType int64
	generation  uint64
}

func NewProjectListController(source ClientSource, assets AssetResolver) *ProjectListController {
	logger := log.With().Str("component", "projectList").Logger()
	return &ProjectListController{source: source, assets: assets, logger: logger}
}

// OnCategoryChange fetches the rows for typeID and applies them unless a
// newer selection has superseded this one by the time the response arrives.
// It is the intended subscriber for CategoryCatalog selection changes.
func (c *ProjectListController) OnCategoryChange(ctx context.Context, typeID int64) {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.currentType = typeID
	c.state = ListLoading
	c.rows = nil
	c.errMessage = ""
	c.mu.Unlock()

	clients, err := c.source.ClientsByType(ctx, typeID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.logger.Debug().
			Int64("typeID", typeID).
			Msg("discarding stale project list response")
		return
	}

	if err != nil {
		c.logger.Error().Err(err).Int64("typeID", typeID).Msg("loading project list failed")
		c.state = ListError
		c.errMessage = userSafeListError
		return
	}

	c.rows = SummarizeClients(clients, c.assets, c.logger)
	c.state = ListPopulated
}

// State returns the current lifecycle state.
func (c *ProjectListController) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Rows returns a copy of the current rows. A zero-length result under
// ListPopulated means "no projects in this category", which is a valid
// terminal state distinct from ListError.
func (c *ProjectListController) Rows() []ProjectSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ProjectSummary, len(c.rows))
	copy(out, c.rows)
	return out
}

// ErrorMessage returns the user-safe failure text, empty unless the state is
// ListError.
func (c *ProjectListController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMessage
}

// SummarizeClients derives a ProjectSummary per client record. Records with
// missing media get the placeholder thumbnail rather than being skipped;
// records whose project is absent entirely are skipped with a warning, since
// there is nothing to link to.
func SummarizeClients(clients []models.Client, assets AssetResolver, logger zerolog.Logger) []ProjectSummary {
	rows := make([]ProjectSummary, 0, len(clients))
	for _, client := range clients {
		if client.Project == nil {
			logger.Warn().Int64("clientID", client.ID).Msg("skipping client record with no project")
			continue
		}

		location := client.Address
		if location == "" {
			location = client.Project.Location
		}

		rows = append(rows, ProjectSummary{
			ID:           client.ID,
			ProjectName:  client.Project.Name,
			Location:     location,
			ClientName:   client.FullName,
			ThumbnailURL: featureImageURL(client.Project.Media, assets),
			Token:        idcodec.Encode(client.ID),
		})
	}
	return rows
}
