package api

import (
	"net/http"

	"github.com/ndnb/architecture-web-gateway/catalog"
	"github.com/ndnb/architecture-web-gateway/errs"
	"github.com/ndnb/architecture-web-gateway/upstream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type clientsHandler struct {
	responder  Responder
	logger     zerolog.Logger
	ourClients *upstream.OurClientsAPI
	assets     catalog.AssetResolver
}

func newClientsHandler(ourClients *upstream.OurClientsAPI, assets catalog.AssetResolver) clientsHandler {
	logger := log.With().Str("handlerName", "clientsHandler").Logger()

	return clientsHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		ourClients: ourClients,
		assets:     assets,
	}
}

// trustedClientView is a client-logo entry with the logo path resolved.
type trustedClientView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Link    string `json:"link"`
	LogoURL string `json:"logoUrl"`
}

// getFeaturedClients returns the home-page trusted-client logos
// @Summary Get trusted clients
// @Description Retrieves the client logos for the home-page marquee; records without a logo are dropped
// @Tags Clients
// @Produce json
// @Success 200 {array} trustedClientView "Trusted client logos"
// @Failure 502 {object} ErrorResponse "Bad Gateway - upstream API unavailable"
// @Router /our-clients/feature [get]
func (h clientsHandler) getFeaturedClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := h.ourClients.Featured(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadGatewayError("trusted clients unavailable", err))
			return
		}

		views := make([]trustedClientView, 0, len(clients))
		for _, c := range clients {
			if c.Filepath == nil || *c.Filepath == "" {
				continue
			}
			views = append(views, trustedClientView{
				ID:      c.ID,
				Name:    c.Name,
				Link:    c.Link,
				LogoURL: h.assets.AssetURL(*c.Filepath),
			})
		}

		h.responder.WriteJSON(w, dataEnvelope{Data: views})
	}
}
