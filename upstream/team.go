package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TeamAPI wraps the upstream team-member endpoints used by the public site.
type TeamAPI struct {
	gateway *Gateway
	logger  zerolog.Logger
}

func NewTeamAPI(gateway *Gateway) *TeamAPI {
	logger := log.With().Str("component", "teamAPI").Logger()
	return &TeamAPI{gateway: gateway, logger: logger}
}

// Featured returns the staff profiles shown on the about page.
func (a *TeamAPI) Featured(ctx context.Context) ([]models.TeamMember, error) {
	data, err := a.gateway.Get(ctx, "/team-members/featured")
	if err != nil {
		return nil, err
	}

	var members []models.TeamMember
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decoding team members: %w", err)
	}
	return members, nil
}
