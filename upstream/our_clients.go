package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// OurClientsAPI wraps the upstream trusted-client endpoints.
type OurClientsAPI struct {
	gateway *Gateway
	logger  zerolog.Logger
}

func NewOurClientsAPI(gateway *Gateway) *OurClientsAPI {
	logger := log.With().Str("component", "ourClientsAPI").Logger()
	return &OurClientsAPI{gateway: gateway, logger: logger}
}

// Featured returns the client logos shown in the home-page marquee,
// including records whose logo is missing; callers filter those out.
func (a *OurClientsAPI) Featured(ctx context.Context) ([]models.TrustedClient, error) {
	data, err := a.gateway.Get(ctx, "/our-clients/feature")
	if err != nil {
		return nil, err
	}

	var clients []models.TrustedClient
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("decoding trusted clients: %w", err)
	}
	return clients, nil
}
