package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndnb/architecture-web-gateway/errs"
	"github.com/ndnb/architecture-web-gateway/idcodec"
	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mode selects which upstream endpoint serves a detail request. The system
// exposes two endpoints for what is conceptually one view: the project-list
// flow encodes client ids (ModeClient), while home-page cards link projects
// directly (ModeDirect).
type Mode string

const (
	ModeClient Mode = "client"
	ModeDirect Mode = "direct"
)

// GalleryImage is one entry of a project's image gallery.
type GalleryImage struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// DetailViewModel is the single normalized shape both detail endpoints are
// reduced to. Presentation code never branches on Mode again after
// resolution.
type DetailViewModel struct {
	ProjectID       int64          `json:"projectId"`
	ProjectName     string         `json:"projectName"`
	ClientName      string         `json:"clientName,omitempty"`
	Location        string         `json:"location"`
	SiteArea        string         `json:"siteArea"`
	Description     string         `json:"description"`
	FeatureImageURL string         `json:"featureImageUrl"`
	Gallery         []GalleryImage `json:"gallery"`
	Videos          []VideoLink    `json:"videos"`
}

// DetailSource provides the two detail endpoints. *upstream.ProjectsAPI
// satisfies it.
type DetailSource interface {
	ProjectByClient(ctx context.Context, clientID int64) (*models.Client, error)
	ProjectByID(ctx context.Context, projectID int64) (*models.Project, error)
}

// ProjectDetailResolver turns an opaque URL token into a DetailViewModel.
type ProjectDetailResolver struct {
	source DetailSource
	assets AssetResolver
	logger zerolog.Logger
}

func NewProjectDetailResolver(source DetailSource, assets AssetResolver) *ProjectDetailResolver {
	logger := log.With().Str("component", "projectDetail").Logger()
	return &ProjectDetailResolver{source: source, assets: assets, logger: logger}
}

// Resolve decodes the token and fetches the detail record through the
// mode-appropriate endpoint. A malformed token yields errs.ErrNotFound with
// no network call, as does a 404-class or empty upstream response; any other
// upstream failure is returned classified for the caller to surface as an
// error state.
func (r *ProjectDetailResolver) Resolve(ctx context.Context, token string, mode Mode) (*DetailViewModel, error) {
	id, err := idcodec.Decode(token)
	if err != nil {
		r.logger.Warn().Str("token", token).Msg("unresolvable detail token")
		return nil, errs.ErrNotFound
	}

	var (
		project    *models.Project
		clientName string
		address    string
	)

	switch mode {
	case ModeClient:
		client, err := r.source.ProjectByClient(ctx, id)
		if err != nil {
			return nil, r.classify(err, id)
		}
		if client == nil || client.Project == nil {
			return nil, errs.ErrNotFound
		}
		project = client.Project
		clientName = client.FullName
		address = client.Address
	case ModeDirect:
		project, err = r.source.ProjectByID(ctx, id)
		if err != nil {
			return nil, r.classify(err, id)
		}
		if project == nil {
			return nil, errs.ErrNotFound
		}
	default:
		return nil, fmt.Errorf("unknown detail mode %q", mode)
	}

	return r.viewModel(project, clientName, address), nil
}

func (r *ProjectDetailResolver) classify(err error, id int64) error {
	if errors.Is(err, errs.ErrEmptyBody) || errs.IsUpstreamNotFound(err) {
		return errs.ErrNotFound
	}
	r.logger.Error().Err(err).Int64("id", id).Msg("loading project detail failed")
	return err
}

// viewModel normalizes a project, regardless of which envelope served it,
// into the display shape. Missing media degrades to the placeholder image,
// never an error.
func (r *ProjectDetailResolver) viewModel(project *models.Project, clientName, address string) *DetailViewModel {
	location := project.Location
	if location == "" {
		location = address
	}

	gallery := make([]GalleryImage, 0, len(project.Media))
	for _, m := range project.Media {
		gallery = append(gallery, GalleryImage{ID: m.ID, URL: r.assets.AssetURL(m.Filepath)})
	}

	return &DetailViewModel{
		ProjectID:       project.ID,
		ProjectName:     project.Name,
		ClientName:      clientName,
		Location:        location,
		SiteArea:        project.SiteArea,
		Description:     project.Description,
		FeatureImageURL: featureImageURL(project.Media, r.assets),
		Gallery:         gallery,
		Videos:          VideoLinks(project.Videos),
	}
}
