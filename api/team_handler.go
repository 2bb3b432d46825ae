package api

import (
	"net/http"
	"sort"

	"github.com/ndnb/architecture-web-gateway/catalog"
	"github.com/ndnb/architecture-web-gateway/errs"
	"github.com/ndnb/architecture-web-gateway/upstream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	team      *upstream.TeamAPI
	assets    catalog.AssetResolver
}

func newTeamHandler(team *upstream.TeamAPI, assets catalog.AssetResolver) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		team:      team,
		assets:    assets,
	}
}

// teamMemberView is a staff profile with the photo path resolved.
type teamMemberView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Email          string `json:"email,omitempty"`
	ContactNo      string `json:"contact_no,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// getFeaturedMembers returns the about-page team list
// @Summary Get featured team members
// @Description Retrieves featured staff profiles ordered for display
// @Tags Team
// @Produce json
// @Success 200 {array} teamMemberView "Featured team members"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /team-members/featured [get]
func (h teamHandler) getFeaturedMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.team.Featured(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadGatewayError("team members unavailable", err))
			return
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Order < members[j].Order
		})

		views := make([]teamMemberView, 0, len(members))
		for _, m := range members {
			view := teamMemberView{
				ID:             m.ID,
				Name:           m.Name,
				Designation:    m.Designation,
				Email:          m.Email,
				ContactNo:      m.ContactNo,
				AdditionalInfo: m.AdditionalInfo,
			}
			if m.Filepath != nil {
				view.PhotoURL = h.assets.AssetURL(*m.Filepath)
			}
			views = append(views, view)
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: views})
	}
}
