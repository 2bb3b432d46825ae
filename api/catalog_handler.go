package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ndnb/architecture-web-gateway/catalog"
	"github.com/ndnb/architecture-web-gateway/errs"
	"github.com/ndnb/architecture-web-gateway/upstream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Route-to-mode mapping for the two detail entry points.
const (
	ModeDirectRoute = catalog.ModeDirect
	ModeClientRoute = catalog.ModeClient
)

type catalogHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *upstream.ProjectsAPI
	resolver  *catalog.ProjectDetailResolver
	assets    catalog.AssetResolver
}

func newCatalogHandler(projects *upstream.ProjectsAPI, assets catalog.AssetResolver) catalogHandler {
	logger := log.With().Str("handlerName", "catalogHandler").Logger()

	return catalogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		resolver:  catalog.NewProjectDetailResolver(projects, assets),
		assets:    assets,
	}
}

// projectTypesResponse carries the active categories plus the default
// selection (the first category in API order).
type projectTypesResponse struct {
	Categories []catalog.Category `json:"categories"`
	Selected   int64              `json:"selected,omitempty"`
}

// getProjectTypes returns the active project categories
// @Summary Get project types
// @Description Retrieves the active project categories with the default selection
// @Tags Catalog
// @Produce json
// @Success 200 {object} projectTypesResponse "Active categories"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /project-types [get]
func (h catalogHandler) getProjectTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A fresh catalog per request mirrors the per-view lifecycle: the
		// snapshot is fetched, served, and discarded.
		categories := catalog.NewCategoryCatalog(h.projects)
		if err := categories.Load(r.Context()); err != nil {
			h.responder.WriteError(w, errs.NewBadGatewayError("project types unavailable", err))
			return
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: projectTypesResponse{
			Categories: categories.Categories(),
			Selected:   categories.Selected(),
		}})
	}
}

// getProjectsByType returns the project list rows for a category
// @Summary Get projects by type
// @Description Retrieves display-ready project rows for a project type; an empty list is a valid result
// @Tags Catalog
// @Produce json
// @Param typeID path int true "Project type ID"
// @Success 200 {array} catalog.ProjectSummary "Project rows"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid typeID"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /projects/type/{typeID} [get]
func (h catalogHandler) getProjectsByType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typeIDStr := chi.URLParam(r, "typeID")
		typeID, err := strconv.ParseInt(typeIDStr, 10, 64)
		if err != nil || typeID <= 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid typeID"))
			return
		}

		list := catalog.NewProjectListController(h.projects, h.assets)
		list.OnCategoryChange(r.Context(), typeID)

		if list.State() == catalog.ListError {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusBadGateway, list.ErrorMessage()))
			return
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: list.Rows()})
	}
}

// getProjectDetail resolves an obfuscated token into a project detail view
// @Summary Get project detail
// @Description Resolves a URL token to a normalized project detail view model
// @Tags Catalog
// @Produce json
// @Param token path string true "Obfuscated entity id"
// @Success 200 {object} catalog.DetailViewModel "Project detail"
// @Failure 404 {object} ErrorResponse "Not Found - unknown or malformed token"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /projects/{token} [get]
func (h catalogHandler) getProjectDetail(mode catalog.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		detail, err := h.resolver.Resolve(r.Context(), token, mode)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, errs.NewBadGatewayError("project detail unavailable", err))
			return
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: detail})
	}
}

// getLatestProjects returns the home-page recent project cards
// @Summary Get latest projects
// @Description Retrieves the newest published projects as home-page cards
// @Tags Catalog
// @Produce json
// @Success 200 {array} catalog.RecentProject "Recent project cards"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /projects/latest [get]
func (h catalogHandler) getLatestProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts []upstream.RequestOption
		if cookie, err := r.Cookie("authToken"); err == nil {
			opts = append(opts, upstream.WithCredentials(cookie.Value))
		}

		projects, err := h.projects.LatestProjects(r.Context(), opts...)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadGatewayError("latest projects unavailable", err))
			return
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: catalog.BuildRecentProjects(projects, h.assets)})
	}
}
